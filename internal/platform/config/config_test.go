package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFailsWithoutDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load("")
	if !errors.Is(err, ErrMissingDSN) {
		t.Fatalf("expected ErrMissingDSN, got %v", err)
	}
}

func TestLoadFailsWithoutSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/quill")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestLoadAppliesDefaultsAndEnv(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/quill")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Database.DSN != "postgres://localhost/quill" {
		t.Fatalf("unexpected dsn %q", cfg.Database.DSN)
	}
	if cfg.Addr() != ":8081" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.HTTP.BasePath != "/api" {
		t.Fatalf("unexpected base path %q", cfg.HTTP.BasePath)
	}
	if cfg.JWT.TTL != 24*time.Hour {
		t.Fatalf("unexpected ttl %s", cfg.JWT.TTL)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("unexpected bcrypt cost %d", cfg.Auth.BcryptCost)
	}
}

func TestLoadReadsYAMLFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quill.yaml")
	content := []byte(`
http:
  port: "9000"
  base_path: v1/
database:
  dsn: sqlite:quill.db
jwt:
  secret: from-file
  ttl: 2h
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Fatalf("expected env override, got %q", cfg.JWT.Secret)
	}
	if cfg.JWT.TTL != 2*time.Hour {
		t.Fatalf("unexpected ttl %s", cfg.JWT.TTL)
	}
	if cfg.HTTP.BasePath != "/v1" {
		t.Fatalf("unexpected base path %q", cfg.HTTP.BasePath)
	}
	if cfg.Database.DSN != "sqlite:quill.db" {
		t.Fatalf("unexpected dsn %q", cfg.Database.DSN)
	}
}

func TestTrustedProxyPrefixes(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/quill")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_TRUSTED_PROXIES", "10.0.0.0/8,192.0.2.7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	prefixes, err := cfg.HTTP.TrustedProxyPrefixes()
	if err != nil {
		t.Fatalf("parse prefixes: %v", err)
	}
	if len(prefixes) != 2 {
		t.Fatalf("expected two prefixes, got %v", prefixes)
	}
	if prefixes[0].String() != "10.0.0.0/8" || prefixes[1].String() != "192.0.2.7/32" {
		t.Fatalf("unexpected prefixes %v", prefixes)
	}

	t.Setenv("HTTP_TRUSTED_PROXIES", "not-an-ip")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected invalid trusted proxy error")
	}
}
