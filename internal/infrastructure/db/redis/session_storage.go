package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radheonline/storefront/internal/core/session"
)

// SessionKeyPrefix namespaces session blobs.
// Key format: storefront:session:<sid>:<storage key>
const SessionKeyPrefix = "storefront:session:"

// SessionStorage is a session.Storage scoped to one browser id. Every write
// refreshes the TTL, so an idle session expires on its own.
type SessionStorage struct {
	client *redis.Client
	sid    string
	ttl    time.Duration
}

var _ session.Storage = (*SessionStorage)(nil)

// NewSessionStorage returns storage for the browser identified by sid.
// A ttl of zero keeps blobs until they are deleted.
func NewSessionStorage(client *redis.Client, sid string, ttl time.Duration) *SessionStorage {
	return &SessionStorage{client: client, sid: sid, ttl: ttl}
}

func (s *SessionStorage) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", session.ErrBlobNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session get: %w", err)
	}
	return v, nil
}

func (s *SessionStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStorage) key(key string) string {
	return SessionKeyPrefix + s.sid + ":" + key
}
