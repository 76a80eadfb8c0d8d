package ports

import (
	"context"

	"github.com/radheonline/storefront/internal/core/domain"
)

// EnquiryInput is the public contact form.
type EnquiryInput struct {
	FullName    string
	PhoneNumber string
	Service     string
	Message     string
}

// EnquiryResult reports the outcome of a submission.
type EnquiryResult struct {
	Contact *domain.Contact
	// Duplicate is true when the same phone and service were already submitted
	// inside the dedup window; Contact is nil in that case.
	Duplicate bool
}

// EnquiryFilter drives the admin listing. Status "" or "all" lists everything.
type EnquiryFilter struct {
	Status string
	Search string
}

// ContactService defines use cases for enquiries.
type ContactService interface {
	Submit(ctx context.Context, in EnquiryInput) (*EnquiryResult, error)
	List(ctx context.Context, filter EnquiryFilter) ([]*domain.Contact, error)
	SetStatus(ctx context.Context, id string, status string) (*domain.Contact, error)
	SetContacted(ctx context.Context, id string, contacted bool) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// DashboardStats summarises the admin landing page.
type DashboardStats struct {
	TotalPosts      int
	TotalEnquiries  int
	ActiveUpdates   int
	PendingContacts int
	RecentPosts     []*domain.Update
	RecentEnquiries []*domain.Contact
}

// DashboardService computes DashboardStats.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
