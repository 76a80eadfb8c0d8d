package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

var errStore = errors.New("store unavailable")

// ── admins ───────────────────────────────────────────────────────────────────

type stubAdminRepo struct {
	mu     sync.Mutex
	admins []*domain.Admin
	err    error
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	c := *a
	return &c
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.admins {
		if a.Username == username {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.ID == id {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) First(_ context.Context) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if len(r.admins) == 0 {
		return nil, domain.ErrAdminNotFound
	}
	return cloneAdmin(r.admins[0]), nil
}

func (r *stubAdminRepo) List(_ context.Context) ([]*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, cloneAdmin(a))
	}
	return out, r.err
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.admins)), r.err
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.admins {
		if a.Username == admin.Username {
			return nil, domain.ErrAdminExists
		}
	}
	c := cloneAdmin(admin)
	c.ID = fmt.Sprintf("admin-%d", len(r.admins)+1)
	r.admins = append(r.admins, c)
	return cloneAdmin(c), nil
}

func (r *stubAdminRepo) Update(_ context.Context, id string, ch ports.AdminChanges) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.admins {
		if a.ID != id {
			continue
		}
		if ch.Username != nil {
			a.Username = *ch.Username
		}
		if ch.FullName != nil {
			a.FullName = *ch.FullName
		}
		if ch.PasswordHash != nil {
			a.PasswordHash = *ch.PasswordHash
		}
		if ch.Role != nil {
			a.Role = *ch.Role
		}
		if ch.IsActive != nil {
			a.IsActive = *ch.IsActive
		}
		return cloneAdmin(a), nil
	}
	return nil, domain.ErrAdminNotFound
}

// ── updates ──────────────────────────────────────────────────────────────────

type stubUpdateRepo struct {
	mu      sync.Mutex
	updates map[string]*domain.Update
	seq     int
	err     error
}

func newStubUpdateRepo(seed ...*domain.Update) *stubUpdateRepo {
	r := &stubUpdateRepo{updates: make(map[string]*domain.Update)}
	for _, u := range seed {
		c := *u
		r.updates[u.ID] = &c
	}
	return r
}

func (r *stubUpdateRepo) Create(_ context.Context, u *domain.Update) (*domain.Update, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.seq++
	c := *u
	c.ID = fmt.Sprintf("u%d", r.seq)
	r.updates[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubUpdateRepo) FindByID(_ context.Context, id string) (*domain.Update, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.updates[id]
	if !ok {
		return nil, domain.ErrUpdateNotFound
	}
	c := *u
	return &c, nil
}

func (r *stubUpdateRepo) List(_ context.Context, f ports.UpdateFilter) ([]*domain.Update, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Update
	for _, u := range r.updates {
		if (f.PublishedOnly || f.SliderOnly) && !u.IsPublished {
			continue
		}
		if f.SliderOnly && !u.IsSliderFeatured {
			continue
		}
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishDate > out[j].PublishDate })
	return out, nil
}

func (r *stubUpdateRepo) Replace(_ context.Context, u *domain.Update) (*domain.Update, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.updates[u.ID]; !ok {
		return nil, domain.ErrUpdateNotFound
	}
	c := *u
	r.updates[u.ID] = &c
	out := c
	return &out, nil
}

func (r *stubUpdateRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.updates[id]; !ok {
		return domain.ErrUpdateNotFound
	}
	delete(r.updates, id)
	return nil
}

// ── contacts ─────────────────────────────────────────────────────────────────

type stubContactRepo struct {
	mu       sync.Mutex
	contacts []*domain.Contact
	creates  int
	err      error
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.err != nil {
		return nil, r.err
	}
	cp := *c
	cp.ID = fmt.Sprintf("c%d", len(r.contacts)+1)
	// newest first
	r.contacts = append([]*domain.Contact{&cp}, r.contacts...)
	out := cp
	return &out, nil
}

func (r *stubContactRepo) List(_ context.Context, status domain.ContactStatus) ([]*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Contact
	for _, c := range r.contacts {
		if status != "" && c.Status != status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubContactRepo) find(id string) *domain.Contact {
	for _, c := range r.contacts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *stubContactRepo) SetStatus(_ context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return nil, domain.ErrContactNotFound
	}
	c.Status = status
	cp := *c
	return &cp, nil
}

func (r *stubContactRepo) SetContacted(_ context.Context, id string, contacted bool) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return nil, domain.ErrContactNotFound
	}
	c.Contacted = contacted
	cp := *c
	return &cp, nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return domain.ErrContactNotFound
}

// ── dedup ────────────────────────────────────────────────────────────────────

type stubDedup struct {
	seen     map[string]bool
	err      error
	released []string
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) Claim(_ context.Context, phone, service string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	k := phone + ":" + service
	if d.seen[k] {
		return false, nil
	}
	d.seen[k] = true
	return true, nil
}

func (d *stubDedup) Release(_ context.Context, phone, service string) error {
	k := phone + ":" + service
	delete(d.seen, k)
	d.released = append(d.released, k)
	return nil
}
