package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/radheonline/storefront/internal/api/metrics"
	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

// EnquiryDedup abstracts the duplicate-submission guard (Redis).
type EnquiryDedup interface {
	Claim(ctx context.Context, phone, service string) (bool, error)
	Release(ctx context.Context, phone, service string) error
}

type contactService struct {
	repo  ports.ContactRepository
	dedup EnquiryDedup
	log   zerolog.Logger
}

// NewContactService returns a ContactService implementation. dedup may be nil.
func NewContactService(repo ports.ContactRepository, dedup EnquiryDedup, log zerolog.Logger) ports.ContactService {
	return &contactService{repo: repo, dedup: dedup, log: log}
}

// Submit validates and stores a public enquiry. Nothing is written unless the
// phone number is a bare 10-digit number.
func (s *contactService) Submit(ctx context.Context, in ports.EnquiryInput) (*ports.EnquiryResult, error) {
	phone := strings.TrimSpace(in.PhoneNumber)
	if !domain.ValidPhone(phone) {
		return nil, domain.ErrInvalidPhone
	}
	if !domain.ValidService(in.Service) {
		return nil, domain.ErrInvalidService
	}

	claimed := false
	if s.dedup != nil {
		first, err := s.dedup.Claim(ctx, phone, in.Service)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("service", in.Service).Msg("dedup check failed, storing anyway")
		case !first:
			metrics.EnquiriesDedupTotal.WithLabelValues("hit").Inc()
			s.log.Debug().Str("service", in.Service).Msg("duplicate enquiry skipped")
			return &ports.EnquiryResult{Duplicate: true}, nil
		default:
			claimed = true
			metrics.EnquiriesDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	created, err := s.repo.Create(ctx, &domain.Contact{
		FullName:    strings.TrimSpace(in.FullName),
		PhoneNumber: phone,
		Service:     in.Service,
		Message:     strings.TrimSpace(in.Message),
		Status:      domain.ContactPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		if claimed {
			if relErr := s.dedup.Release(ctx, phone, in.Service); relErr != nil {
				s.log.Warn().Err(relErr).Msg("failed to release dedup key")
			}
		}
		return nil, fmt.Errorf("submit enquiry: %w", err)
	}

	metrics.EnquiriesSubmittedTotal.WithLabelValues(in.Service).Inc()
	s.log.Info().Str("contact_id", created.ID).Str("service", created.Service).Msg("enquiry received")
	return &ports.EnquiryResult{Contact: created}, nil
}

// List filters by status in the store and by search term in memory.
func (s *contactService) List(ctx context.Context, f ports.EnquiryFilter) ([]*domain.Contact, error) {
	var status domain.ContactStatus
	if f.Status != "" && f.Status != "all" {
		status = domain.ContactStatus(f.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	contacts, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}

	term := strings.TrimSpace(f.Search)
	if term == "" {
		return contacts, nil
	}
	out := contacts[:0]
	for _, c := range contacts {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *contactService) SetStatus(ctx context.Context, id string, status string) (*domain.Contact, error) {
	st := domain.ContactStatus(status)
	if !st.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	c, err := s.repo.SetStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}
	return c, nil
}

func (s *contactService) SetContacted(ctx context.Context, id string, contacted bool) (*domain.Contact, error) {
	c, err := s.repo.SetContacted(ctx, id, contacted)
	if err != nil {
		return nil, fmt.Errorf("set contacted: %w", err)
	}
	return c, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}
	return nil
}
