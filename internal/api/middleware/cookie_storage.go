package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/core/session"
)

const blobClaim = "blob"

// CookieStorage keeps the blob in the browser itself, as an HS256-signed JWT
// in a cookie named after the storage key. A cookie whose signature does not
// verify reads as session.ErrBlobCorrupt.
type CookieStorage struct {
	c      echo.Context
	secret []byte
	ttl    time.Duration
	// pending holds writes made during this request; "" marks a delete.
	pending map[string]string
}

var _ session.Storage = (*CookieStorage)(nil)

// NewCookieStorage returns storage backed by the cookies of the request in c.
func NewCookieStorage(c echo.Context, secret []byte, ttl time.Duration) *CookieStorage {
	return &CookieStorage{c: c, secret: secret, ttl: ttl, pending: make(map[string]string)}
}

// SignedCookieStorage is the StorageFactory for CookieStorage.
func SignedCookieStorage(secret string, ttl time.Duration) StorageFactory {
	key := []byte(secret)
	return func(c echo.Context) (session.Storage, error) {
		return NewCookieStorage(c, key, ttl), nil
	}
}

func (s *CookieStorage) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.pending[key]; ok {
		if v == "" {
			return "", session.ErrBlobNotFound
		}
		return v, nil
	}

	ck, err := s.c.Cookie(key)
	if err != nil || ck.Value == "" {
		return "", session.ErrBlobNotFound
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(ck.Value, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", session.ErrBlobNotFound
	case err != nil:
		return "", fmt.Errorf("%w: %v", session.ErrBlobCorrupt, err)
	}

	blob, ok := claims[blobClaim].(string)
	if !ok {
		return "", session.ErrBlobCorrupt
	}
	return blob, nil
}

func (s *CookieStorage) Set(_ context.Context, key, value string) error {
	now := time.Now()
	claims := jwt.MapClaims{
		blobClaim: value,
		"iat":     now.Unix(),
	}
	if s.ttl > 0 {
		claims["exp"] = now.Add(s.ttl).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	s.c.SetCookie(s.cookie(key, signed, int(s.ttl.Seconds())))
	s.pending[key] = value
	return nil
}

func (s *CookieStorage) Delete(_ context.Context, key string) error {
	s.c.SetCookie(s.cookie(key, "", -1))
	s.pending[key] = ""
	return nil
}

func (s *CookieStorage) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	}
}
