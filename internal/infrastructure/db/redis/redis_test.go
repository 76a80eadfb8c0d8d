package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/radheonline/storefront/internal/core/session"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return mr, rdb
}

func TestConnect(t *testing.T) {
	mr, _ := newTestClient(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()
}

func TestConnect_Unreachable(t *testing.T) {
	mr, _ := newTestClient(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}

func TestSessionStorage_RoundTrip(t *testing.T) {
	mr, rdb := newTestClient(t)
	ctx := context.Background()
	s := NewSessionStorage(rdb, "sid-1", time.Hour)

	if _, err := s.Get(ctx, session.DefaultKey); !errors.Is(err, session.ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound, got %v", err)
	}
	if err := s.Set(ctx, session.DefaultKey, `{"username":"admin"}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := s.Get(ctx, session.DefaultKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"username":"admin"}` {
		t.Errorf("unexpected blob %q", got)
	}

	const fullKey = "storefront:session:sid-1:adminAuth"
	if !mr.Exists(fullKey) {
		t.Fatalf("expected key %s", fullKey)
	}
	if ttl := mr.TTL(fullKey); ttl != time.Hour {
		t.Errorf("expected 1h ttl, got %v", ttl)
	}

	if err := s.Delete(ctx, session.DefaultKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, session.DefaultKey); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if mr.Exists(fullKey) {
		t.Error("expected key to be gone")
	}
}

func TestSessionStorage_ScopedBySID(t *testing.T) {
	_, rdb := newTestClient(t)
	ctx := context.Background()

	a := NewSessionStorage(rdb, "browser-a", 0)
	b := NewSessionStorage(rdb, "browser-b", 0)

	if err := a.Set(ctx, session.DefaultKey, "a"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := b.Get(ctx, session.DefaultKey); !errors.Is(err, session.ErrBlobNotFound) {
		t.Fatalf("expected other browser to see nothing, got %v", err)
	}
}

func TestSessionStorage_Expiry(t *testing.T) {
	mr, rdb := newTestClient(t)
	ctx := context.Background()
	s := NewSessionStorage(rdb, "sid", time.Minute)

	if err := s.Set(ctx, session.DefaultKey, "x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := s.Get(ctx, session.DefaultKey); !errors.Is(err, session.ErrBlobNotFound) {
		t.Fatalf("expected expired blob to be gone, got %v", err)
	}
}

func TestSessionStorage_Unavailable(t *testing.T) {
	mr, rdb := newTestClient(t)
	s := NewSessionStorage(rdb, "sid", 0)
	mr.Close()

	_, err := s.Get(context.Background(), session.DefaultKey)
	if err == nil || errors.Is(err, session.ErrBlobNotFound) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestEnquiryDedup(t *testing.T) {
	mr, rdb := newTestClient(t)
	ctx := context.Background()
	d := NewEnquiryDedup(rdb, time.Hour)

	first, err := d.Claim(ctx, "9876543210", "PAN Card")
	if err != nil || !first {
		t.Fatalf("first claim: ok=%v err=%v", first, err)
	}
	again, err := d.Claim(ctx, "9876543210", "PAN Card")
	if err != nil || again {
		t.Fatalf("second claim should be a duplicate: ok=%v err=%v", again, err)
	}
	other, err := d.Claim(ctx, "9876543210", "Voter ID")
	if err != nil || !other {
		t.Fatalf("different service should not collide: ok=%v err=%v", other, err)
	}

	mr.FastForward(2 * time.Hour)
	expired, err := d.Claim(ctx, "9876543210", "PAN Card")
	if err != nil || !expired {
		t.Fatalf("claim after window: ok=%v err=%v", expired, err)
	}

	if err := d.Release(ctx, "9876543210", "PAN Card"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if mr.Exists("dedup:enquiry:9876543210:PAN Card") {
		t.Error("expected released key to be gone")
	}
}
