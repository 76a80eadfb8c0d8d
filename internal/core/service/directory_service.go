package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// DirectoryService implements ports.AdminService over an AdminRepository.
type DirectoryService struct {
	repo ports.AdminRepository
	log  zerolog.Logger
	cost int

	// dummy is compared against when the username is unknown, so a miss
	// costs as much as a wrong password.
	dummyOnce sync.Once
	dummy     []byte
}

var _ ports.AdminService = (*DirectoryService)(nil)

func NewDirectoryService(repo ports.AdminRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, log: log, cost: bcrypt.DefaultCost}
}

// Authenticate returns the active admin whose password matches. Unknown users,
// disabled accounts and wrong passwords are indistinguishable to the caller.
func (s *DirectoryService) Authenticate(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return admin, nil
}

func (s *DirectoryService) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummy, _ = bcrypt.GenerateFromPassword([]byte("storefront-unknown-admin"), s.cost)
	})
	return s.dummy
}

func (s *DirectoryService) Settings(ctx context.Context) (*domain.Admin, error) {
	admin, err := s.repo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return admin, nil
}

// UpdateSettings edits the first admin record. A blank NewPassword keeps the
// current one.
func (s *DirectoryService) UpdateSettings(ctx context.Context, in ports.SettingsInput) (*domain.Admin, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.ErrIncompleteAdmin
	}
	if in.NewPassword != "" && in.NewPassword != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	admin, err := s.repo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	fullName := strings.TrimSpace(in.FullName)
	changes := ports.AdminChanges{Username: &username, FullName: &fullName}
	if in.NewPassword != "" {
		hash, err := s.hash(in.NewPassword)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, admin.ID, changes)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	s.log.Info().Str("admin_id", updated.ID).Msg("settings updated")
	return updated, nil
}

func (s *DirectoryService) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (s *DirectoryService) CreateAdmin(ctx context.Context, in ports.CreateAdminInput) (*domain.Admin, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrIncompleteAdmin
	}
	role := in.Role
	if role == "" {
		role = domain.RoleEditor
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	s.log.Info().Str("admin_id", created.ID).Str("role", role).Msg("admin created")
	return created, nil
}

// UpdateAdmin edits an account; empty fields are left untouched.
func (s *DirectoryService) UpdateAdmin(ctx context.Context, id string, in ports.UpdateAdminInput) (*domain.Admin, error) {
	var changes ports.AdminChanges
	if u := strings.TrimSpace(in.Username); u != "" {
		changes.Username = &u
	}
	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return nil, domain.ErrInvalidRole
		}
		role := in.Role
		changes.Role = &role
	}
	if in.Password != "" {
		hash, err := s.hash(in.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}
	return updated, nil
}

func (s *DirectoryService) SetActive(ctx context.Context, id string, active bool) (*domain.Admin, error) {
	updated, err := s.repo.Update(ctx, id, ports.AdminChanges{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("set active: %w", err)
	}
	s.log.Info().Str("admin_id", id).Bool("active", active).Msg("admin activation changed")
	return updated, nil
}

// EnsureBootstrapAdmin creates an admin-role account when the directory is
// empty. It reports whether an account was created.
func (s *DirectoryService) EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.CreateAdmin(ctx, ports.CreateAdminInput{
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
	}); err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}
	return true, nil
}

func (s *DirectoryService) hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domain.ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}
