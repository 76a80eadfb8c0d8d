package session

import (
	"context"
	"errors"
	"sync"
)

// DefaultKey is the storage key the identity blob is persisted under.
const DefaultKey = "adminAuth"

var (
	// ErrBlobNotFound is returned by Storage.Get when the key is absent.
	ErrBlobNotFound = errors.New("session blob not found")
	// ErrBlobCorrupt is returned by Storage.Get when the stored value cannot be trusted.
	ErrBlobCorrupt = errors.New("session blob corrupt")
)

// Storage persists the identity blob across reloads. Implementations are scoped
// to a single client, so keys never collide between browsers.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage is a process-local Storage.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string]string)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.blobs[key]
	if !ok {
		return "", ErrBlobNotFound
	}
	return v, nil
}

func (s *MemoryStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = value
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
