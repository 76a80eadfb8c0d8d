package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Session.Backend != BackendRedis || cfg.Session.StorageKey != "adminAuth" {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Session.TTL != 720*time.Hour || cfg.Session.LoginPath != "/admin/login" {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Enquiry.DedupWindow != time.Hour {
		t.Fatalf("unexpected dedup window: %s", cfg.Enquiry.DedupWindow)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env by default")
	}
}

func TestLoadWith_CookieBackendNeedsSecret(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "cookie",
		"SESSION_SECRET":  "short",
	}))
	if err == nil || !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Fatalf("expected secret error, got %v", err)
	}

	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "cookie",
		"SESSION_SECRET":  strings.Repeat("k", 32),
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.Backend != BackendCookie {
		t.Fatalf("expected cookie backend, got %s", cfg.Session.Backend)
	}
}

func TestLoadWith_UnknownBackend(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "localstorage",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadWith_BootstrapPair(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ADMIN_BOOTSTRAP_USERNAME": "admin",
	}))
	if err == nil {
		t.Fatalf("expected error when only username is set")
	}
}

func TestLoadWith_MemoryBackendDevelopmentOnly(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "memory",
	})); err != nil {
		t.Fatalf("memory backend should load in development: %v", err)
	}

	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "memory",
		"ENV":             "production",
	}))
	if err == nil || !strings.Contains(err.Error(), "SESSION_BACKEND") {
		t.Fatalf("expected memory backend to be rejected outside development, got %v", err)
	}
}
