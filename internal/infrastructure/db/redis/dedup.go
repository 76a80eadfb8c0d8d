package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// EnquiryDedup suppresses repeated contact-form submissions backed by Redis.
// Key format: dedup:enquiry:<phone>:<service>
type EnquiryDedup struct {
	client *redis.Client
	window time.Duration
}

// NewEnquiryDedup creates an EnquiryDedup that remembers a submission for window.
func NewEnquiryDedup(client *redis.Client, window time.Duration) *EnquiryDedup {
	return &EnquiryDedup{client: client, window: window}
}

// Claim records the submission and reports whether it is the first one
// inside the window. A false result means the enquiry is a duplicate.
func (d *EnquiryDedup) Claim(ctx context.Context, phone, service string) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(phone, service), "1", d.window).Result()
	if err != nil {
		return false, fmt.Errorf("dedup claim: %w", err)
	}
	return ok, nil
}

// Release forgets a claim, used when the enquiry could not be stored.
func (d *EnquiryDedup) Release(ctx context.Context, phone, service string) error {
	if err := d.client.Del(ctx, d.key(phone, service)).Err(); err != nil {
		return fmt.Errorf("dedup release: %w", err)
	}
	return nil
}

func (d *EnquiryDedup) key(phone, service string) string {
	return fmt.Sprintf("dedup:enquiry:%s:%s", phone, service)
}
