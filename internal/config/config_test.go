package config

import (
	"testing"
	"time"
)

func TestLoadRequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when DB_URL is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/churn")
	t.Setenv("ADDR", "")
	t.Setenv("MODEL_PATH", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("default addr: got %q", cfg.Addr)
	}
	if cfg.ModelPath != "" {
		t.Fatalf("model path should default to embedded, got %q", cfg.ModelPath)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("default timeout: got %v", cfg.RequestTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@db:5432/churn")
	t.Setenv("ADDR", ":9090")
	t.Setenv("MODEL_PATH", "/models/churn.json")
	t.Setenv("REQUEST_TIMEOUT", "2500ms")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9090" || cfg.ModelPath != "/models/churn.json" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.RequestTimeout != 2500*time.Millisecond {
		t.Fatalf("timeout: got %v", cfg.RequestTimeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@db:5432/churn")

	for _, bad := range []string{"soon", "-1s", "0"} {
		t.Setenv("REQUEST_TIMEOUT", bad)
		if _, err := Load(); err == nil {
			t.Errorf("REQUEST_TIMEOUT=%q should be rejected", bad)
		}
	}
}
