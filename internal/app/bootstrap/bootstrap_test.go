package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quill/internal/platform/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		ServiceName: "quill-test",
		HTTP:        config.HTTPConfig{Port: "0", BasePath: "/api", ShutdownTimeout: time.Second},
		Database: config.DatabaseConfig{
			DSN:         "sqlite:" + filepath.Join(t.TempDir(), "bootstrap.db"),
			AutoMigrate: true,
		},
		JWT:  config.JWTConfig{Secret: "bootstrap-secret", TTL: time.Hour},
		Auth: config.AuthConfig{BcryptCost: 4},
		Log:  config.LogConfig{Level: "error", Format: "text"},
	}
}

func TestBuildAPIServesSignup(t *testing.T) {
	app, err := BuildAPI(testConfig(t))
	if err != nil {
		t.Fatalf("build api: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	body := `{"email":"budi@quill.dev","password":"secret123","name":"Budi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		StatusCode int `json:"statusCode"`
		Data       struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != http.StatusCreated || env.Data.Token == "" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestBuildAPIRejectsBadDSN(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.DSN = "sqlite:" + filepath.Join(t.TempDir(), "missing", "nested", "quill.db")
	if _, err := BuildAPI(cfg); err == nil {
		t.Fatalf("expected connect error for unreachable sqlite path")
	}
}

func TestNewLoggerHonoursLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{ServiceName: "quill", Log: config.LogConfig{Level: "warn", Format: "json"}}
	logger := NewLogger(cfg, &buf, "api")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered at warn level")
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &record); err != nil {
		t.Fatalf("expected one json record, got %q", out)
	}
	if record["service"] != "quill" || record["process"] != "api" {
		t.Fatalf("unexpected attrs %v", record)
	}
}
