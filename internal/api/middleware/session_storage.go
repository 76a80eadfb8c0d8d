package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/radheonline/storefront/internal/core/session"
	redisstore "github.com/radheonline/storefront/internal/infrastructure/db/redis"
)

// browserID returns the id stored in the cookie named name, issuing a new one
// when it is missing or not a uuid. issued reports whether a cookie was set.
func browserID(c echo.Context, name string, ttl time.Duration) (id string, issued bool) {
	if ck, err := c.Cookie(name); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			return id.String(), false
		}
	}

	id = uuid.NewString()
	setBrowserCookie(c, name, id, ttl)
	return id, true
}

func setBrowserCookie(c echo.Context, name, id string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

// browserStorage renews the browser id cookie on every write, so the cookie
// lives as long as the blob it points to.
type browserStorage struct {
	session.Storage
	c      echo.Context
	name   string
	id     string
	ttl    time.Duration
	issued bool
}

func (s *browserStorage) Set(ctx context.Context, key, value string) error {
	if err := s.Storage.Set(ctx, key, value); err != nil {
		return err
	}
	if !s.issued {
		setBrowserCookie(s.c, s.name, s.id, s.ttl)
		s.issued = true
	}
	return nil
}

// RedisStorage keeps blobs in Redis under a per-browser id carried in the
// cookieName cookie.
func RedisStorage(client *redis.Client, cookieName string, ttl time.Duration) StorageFactory {
	return func(c echo.Context) (session.Storage, error) {
		id, issued := browserID(c, cookieName, ttl)
		return &browserStorage{
			Storage: redisstore.NewSessionStorage(client, id, ttl),
			c:       c,
			name:    cookieName,
			id:      id,
			ttl:     ttl,
			issued:  issued,
		}, nil
	}
}

// memoryBrowser is the in-process storage of one browser. The backing store
// is created on the first write, so anonymous requests allocate nothing.
type memoryBrowser struct {
	stores *sync.Map
	id     string
}

func (b memoryBrowser) load() (*session.MemoryStorage, bool) {
	s, ok := b.stores.Load(b.id)
	if !ok {
		return nil, false
	}
	return s.(*session.MemoryStorage), true
}

func (b memoryBrowser) Get(ctx context.Context, key string) (string, error) {
	s, ok := b.load()
	if !ok {
		return "", session.ErrBlobNotFound
	}
	return s.Get(ctx, key)
}

func (b memoryBrowser) Set(ctx context.Context, key, value string) error {
	s, ok := b.load()
	if !ok {
		v, _ := b.stores.LoadOrStore(b.id, session.NewMemoryStorage())
		s = v.(*session.MemoryStorage)
	}
	return s.Set(ctx, key, value)
}

func (b memoryBrowser) Delete(ctx context.Context, key string) error {
	if s, ok := b.load(); ok {
		return s.Delete(ctx, key)
	}
	return nil
}

// MemoryStorage keeps blobs in process memory under a per-browser id. It
// does not survive a restart and is not shared between replicas, so config
// only allows it in development.
func MemoryStorage(cookieName string, ttl time.Duration) StorageFactory {
	stores := new(sync.Map)
	return func(c echo.Context) (session.Storage, error) {
		id, issued := browserID(c, cookieName, ttl)
		return &browserStorage{
			Storage: memoryBrowser{stores: stores, id: id},
			c:       c,
			name:    cookieName,
			id:      id,
			ttl:     ttl,
			issued:  issued,
		}, nil
	}
}
