// Package session owns the admin authentication state: whether an operator is
// signed in and as whom, how that belief survives a reload, and what a route
// gate should do with it.
//
// A Manager starts in StateUnknown. Hydrate resolves it from storage; Login and
// Logout move it between the two resolved states:
//
//	Unknown --Hydrate--> Unauthenticated | Authenticated
//	Unauthenticated --Login--> Authenticated --Logout--> Unauthenticated
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

var (
	ErrMissingCredentials   = errors.New("please enter both username and password")
	ErrAlreadyAuthenticated = errors.New("already signed in")
	// ErrLoginSuperseded is returned when a logout landed while the
	// credential check was still in flight.
	ErrLoginSuperseded = errors.New("login superseded by logout")
)

// Manager is the single source of truth for one client's admin session.
// It is safe for concurrent use.
type Manager struct {
	dir      ports.Directory
	store    Storage
	key      string
	log      zerolog.Logger
	observer Observer

	mu       sync.RWMutex
	state    State
	identity *domain.Identity
	// generation advances on every logout; a login only commits if the
	// generation it started under is still current.
	generation uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithKey overrides the storage key (DefaultKey).
func WithKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

func WithObserver(o Observer) Option {
	return func(m *Manager) {
		if o != nil {
			m.observer = o
		}
	}
}

// New returns a Manager in StateUnknown. Call Hydrate before consulting it.
func New(dir ports.Directory, store Storage, opts ...Option) *Manager {
	m := &Manager{
		dir:      dir,
		store:    store,
		key:      DefaultKey,
		log:      zerolog.Nop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Hydrate restores the session from storage. A missing blob leaves the session
// signed out; an unreadable or malformed one is deleted first. It never fails.
func (m *Manager) Hydrate(ctx context.Context) {
	raw, err := m.store.Get(ctx, m.key)
	if errors.Is(err, ErrBlobNotFound) {
		m.resolve(nil)
		m.observer.Hydrated(HydrateAbsent)
		return
	}

	var id *domain.Identity
	if err == nil {
		id, err = decodeIdentity(raw)
	}
	if err != nil {
		m.log.Warn().Err(err).Str("key", m.key).Msg("discarding unreadable session blob")
		if delErr := m.store.Delete(ctx, m.key); delErr != nil {
			m.log.Warn().Err(delErr).Str("key", m.key).Msg("failed to delete session blob")
		}
		m.resolve(nil)
		m.observer.Hydrated(HydrateCorrupt)
		return
	}

	m.resolve(id)
	m.observer.Hydrated(HydrateRestored)
}

func (m *Manager) resolve(id *domain.Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.identity = id
	if id == nil {
		m.state = StateUnauthenticated
	} else {
		m.state = StateAuthenticated
	}
}

// Login checks the credentials against the directory and, on a match, signs
// the session in and persists the identity. On any failure the session is left
// as it was and nothing is written. domain.ErrInvalidCredentials covers both an
// unknown user and a wrong password; other errors carry the directory's message.
func (m *Manager) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	id, err := m.login(ctx, username, password)
	m.observer.LoginFinished(err)
	if err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// login returns the identity it committed, read under the same lock.
func (m *Manager) login(ctx context.Context, username, password string) (domain.Identity, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return domain.Identity{}, ErrMissingCredentials
	}

	m.mu.RLock()
	state, gen := m.state, m.generation
	m.mu.RUnlock()
	if state == StateAuthenticated {
		return domain.Identity{}, ErrAlreadyAuthenticated
	}

	admin, err := m.dir.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			m.log.Debug().Str("username", username).Msg("login rejected")
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		m.log.Error().Err(err).Str("username", username).Msg("directory unavailable")
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}
	if admin == nil || !admin.IsActive {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	// The caller went away while the directory was answering.
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}

	id := admin.Identity()
	blob, err := encodeIdentity(id)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("login: encode session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen {
		m.log.Info().Str("username", username).Msg("dropping login that finished after logout")
		return domain.Identity{}, ErrLoginSuperseded
	}
	if err := m.store.Set(ctx, m.key, blob); err != nil {
		return domain.Identity{}, fmt.Errorf("login: persist session: %w", err)
	}

	m.state = StateAuthenticated
	m.identity = &id
	m.log.Info().Str("username", id.Username).Str("role", id.Role).Msg("admin signed in")
	return id, nil
}

// Logout signs the session out and deletes the persisted blob. It always
// succeeds and is idempotent; a storage failure is only logged.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	if m.identity != nil {
		m.log.Info().Str("username", m.identity.Username).Msg("admin signed out")
	}
	m.state = StateUnauthenticated
	m.identity = nil

	if err := m.store.Delete(ctx, m.key); err != nil {
		m.log.Warn().Err(err).Str("key", m.key).Msg("failed to delete session blob")
	}
	m.observer.LoggedOut()
}

// IsAuthenticated reports whether an admin is signed in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateAuthenticated
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Identity returns a copy of the signed-in identity.
func (m *Manager) Identity() (domain.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return domain.Identity{}, false
	}
	return *m.identity, true
}
