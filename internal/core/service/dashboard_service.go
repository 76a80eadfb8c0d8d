package service

import (
	"context"
	"fmt"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

const dashboardRecent = 4

type dashboardService struct {
	updates  ports.UpdateRepository
	contacts ports.ContactRepository
}

// NewDashboardService returns a DashboardService implementation.
func NewDashboardService(updates ports.UpdateRepository, contacts ports.ContactRepository) ports.DashboardService {
	return &dashboardService{updates: updates, contacts: contacts}
}

func (s *dashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	posts, err := s.updates.List(ctx, ports.UpdateFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	contacts, err := s.contacts.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	stats := &ports.DashboardStats{
		TotalPosts:      len(posts),
		TotalEnquiries:  len(contacts),
		RecentPosts:     head(posts, dashboardRecent),
		RecentEnquiries: head(contacts, dashboardRecent),
	}
	for _, p := range posts {
		if p.IsPublished {
			stats.ActiveUpdates++
		}
	}
	for _, c := range contacts {
		if c.Status == domain.ContactPending {
			stats.PendingContacts++
		}
	}
	return stats, nil
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
