package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

func validEnquiry() ports.EnquiryInput {
	return ports.EnquiryInput{
		FullName:    "Asha Patel",
		PhoneNumber: "9876543210",
		Service:     "PAN Card",
		Message:     "Need a correction",
	}
}

func TestContactService_Submit(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, newStubDedup(), zerolog.Nop())

	res, err := svc.Submit(context.Background(), validEnquiry())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.Duplicate || res.Contact == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Contact.Status != domain.ContactPending || res.Contact.Contacted {
		t.Fatalf("new enquiry must be pending: %+v", res.Contact)
	}
}

func TestContactService_Submit_InvalidPhoneWritesNothing(t *testing.T) {
	for _, phone := range []string{"", "12345", "98765432101", "98765-4321", "abcdefghij"} {
		t.Run(phone, func(t *testing.T) {
			repo := &stubContactRepo{}
			dedup := newStubDedup()
			svc := NewContactService(repo, dedup, zerolog.Nop())

			in := validEnquiry()
			in.PhoneNumber = phone
			if _, err := svc.Submit(context.Background(), in); !errors.Is(err, domain.ErrInvalidPhone) {
				t.Fatalf("expected ErrInvalidPhone, got %v", err)
			}
			if repo.creates != 0 || len(dedup.seen) != 0 {
				t.Fatal("invalid phone must not touch the store or the dedup guard")
			}
		})
	}
}

func TestContactService_Submit_UnknownService(t *testing.T) {
	svc := NewContactService(&stubContactRepo{}, nil, zerolog.Nop())

	in := validEnquiry()
	in.Service = "Passport"
	if _, err := svc.Submit(context.Background(), in); !errors.Is(err, domain.ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService, got %v", err)
	}
}

func TestContactService_Submit_Duplicate(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, newStubDedup(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Submit(ctx, validEnquiry()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	res, err := svc.Submit(ctx, validEnquiry())
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if !res.Duplicate || res.Contact != nil {
		t.Fatalf("expected duplicate, got %+v", res)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one write, got %d", repo.creates)
	}
}

func TestContactService_Submit_DedupFailureStillStores(t *testing.T) {
	repo := &stubContactRepo{}
	dedup := newStubDedup()
	dedup.err = errStore
	svc := NewContactService(repo, dedup, zerolog.Nop())

	res, err := svc.Submit(context.Background(), validEnquiry())
	if err != nil || res.Contact == nil {
		t.Fatalf("expected stored enquiry, got %+v %v", res, err)
	}
}

func TestContactService_Submit_StoreFailureReleasesClaim(t *testing.T) {
	repo := &stubContactRepo{err: errStore}
	dedup := newStubDedup()
	svc := NewContactService(repo, dedup, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validEnquiry()); !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(dedup.released) != 1 {
		t.Fatalf("expected claim to be released, got %v", dedup.released)
	}
}

func TestContactService_List(t *testing.T) {
	repo := &stubContactRepo{contacts: []*domain.Contact{
		{ID: "c3", FullName: "Ravi Kumar", PhoneNumber: "9000000003", Status: domain.ContactPending},
		{ID: "c2", FullName: "Asha Patel", PhoneNumber: "9876543210", Status: domain.ContactContacted},
		{ID: "c1", FullName: "Meena Shah", PhoneNumber: "9123456789", Status: domain.ContactPending},
	}}
	svc := NewContactService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name   string
		filter ports.EnquiryFilter
		want   []string
	}{
		{"all", ports.EnquiryFilter{Status: "all"}, []string{"c3", "c2", "c1"}},
		{"empty status", ports.EnquiryFilter{}, []string{"c3", "c2", "c1"}},
		{"pending", ports.EnquiryFilter{Status: "pending"}, []string{"c3", "c1"}},
		{"name search", ports.EnquiryFilter{Search: "asha"}, []string{"c2"}},
		{"phone search", ports.EnquiryFilter{Search: "3456"}, []string{"c1"}},
		{"status and search", ports.EnquiryFilter{Status: "pending", Search: "ravi"}, []string{"c3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %d results", tc.want, len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}

	if _, err := svc.List(ctx, ports.EnquiryFilter{Status: "archived"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestContactService_StatusAndDelete(t *testing.T) {
	repo := &stubContactRepo{contacts: []*domain.Contact{{ID: "c1", Status: domain.ContactPending}}}
	svc := NewContactService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.SetStatus(ctx, "c1", "contacted")
	if err != nil || c.Status != domain.ContactContacted {
		t.Fatalf("SetStatus: %+v %v", c, err)
	}
	if _, err := svc.SetStatus(ctx, "c1", "closed"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	c, err = svc.SetContacted(ctx, "c1", true)
	if err != nil || !c.Contacted {
		t.Fatalf("SetContacted: %+v %v", c, err)
	}
	if err := svc.Delete(ctx, "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "c1"); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDashboardService_Stats(t *testing.T) {
	updates := newStubUpdateRepo(
		&domain.Update{ID: "a", PublishDate: "2024-01-01", IsPublished: true},
		&domain.Update{ID: "b", PublishDate: "2024-01-02", IsPublished: false},
		&domain.Update{ID: "c", PublishDate: "2024-01-03", IsPublished: true},
		&domain.Update{ID: "d", PublishDate: "2024-01-04", IsPublished: true},
		&domain.Update{ID: "e", PublishDate: "2024-01-05", IsPublished: true},
	)
	contacts := &stubContactRepo{contacts: []*domain.Contact{
		{ID: "c2", Status: domain.ContactPending},
		{ID: "c1", Status: domain.ContactContacted},
	}}
	svc := NewDashboardService(updates, contacts)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalPosts != 5 || stats.ActiveUpdates != 4 {
		t.Errorf("unexpected post counts: %+v", stats)
	}
	if stats.TotalEnquiries != 2 || stats.PendingContacts != 1 {
		t.Errorf("unexpected enquiry counts: %+v", stats)
	}
	if len(stats.RecentPosts) != 4 || stats.RecentPosts[0].ID != "e" {
		t.Errorf("unexpected recent posts: %+v", stats.RecentPosts)
	}
	if len(stats.RecentEnquiries) != 2 {
		t.Errorf("unexpected recent enquiries: %+v", stats.RecentEnquiries)
	}

	contacts.err = errStore
	if _, err := svc.Stats(context.Background()); !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}
