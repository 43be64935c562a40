package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	auth "quill/contexts/identity-access/auth-service"
	authpostgres "quill/contexts/identity-access/auth-service/adapters/postgres"
	users "quill/contexts/identity-access/user-service"
	userpostgres "quill/contexts/identity-access/user-service/adapters/postgres"
	categories "quill/contexts/publishing/category-service"
	categorypostgres "quill/contexts/publishing/category-service/adapters/postgres"
	posts "quill/contexts/publishing/post-service"
	postpostgres "quill/contexts/publishing/post-service/adapters/postgres"
	"quill/internal/platform/config"
	"quill/internal/platform/credentials"
	"quill/internal/platform/db"
	"quill/internal/platform/httpserver"
	"quill/internal/platform/metrics"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server          *httpserver.Server
	database        *db.Database
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func BuildAPI(cfg config.Config) (*APIApp, error) {
	logger := NewLogger(cfg, os.Stdout, "api")

	database, err := db.Connect(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(context.Background()); err != nil {
			_ = database.Close()
			return nil, err
		}
		logger.Info("database schema migrated",
			"event", "bootstrap_schema_migrated",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"dialect", database.Dialect,
		)
	}

	trustedProxies, err := cfg.HTTP.TrustedProxyPrefixes()
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	hasher := credentials.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens, err := credentials.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	server := httpserver.New(BuildModules(database, hasher, tokens, logger), httpserver.Options{
		Addr:           cfg.Addr(),
		BasePath:       cfg.HTTP.BasePath,
		Tokens:         tokens,
		Metrics:        metrics.NewRegistry(),
		AuthRateLimit:  cfg.Auth.RateLimit,
		AuthRateBurst:  cfg.Auth.RateBurst,
		TrustedProxies: trustedProxies,
		Logger:         logger,
	})
	return &APIApp{
		server:          server,
		database:        database,
		logger:          logger,
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, nil
}

// BuildModules wires every bounded context against the given database.
func BuildModules(
	database *db.Database,
	hasher credentials.PasswordHasher,
	tokens *credentials.TokenManager,
	logger *slog.Logger,
) httpserver.Modules {
	return httpserver.Modules{
		Auth: auth.NewModule(auth.Dependencies{
			Credentials: authpostgres.NewRepository(database.DB, logger),
			Hasher:      hasher,
			Tokens:      tokens,
			Logger:      logger,
		}),
		Users: users.NewModule(users.Dependencies{
			Users:  userpostgres.NewRepository(database.DB, logger),
			Hasher: hasher,
			Logger: logger,
		}),
		Posts: posts.NewModule(posts.Dependencies{
			Posts:  postpostgres.NewRepository(database.DB, logger),
			Logger: logger,
		}),
		Categories: categories.NewModule(categories.Dependencies{
			Categories: categorypostgres.NewRepository(database.DB, logger),
			Logger:     logger,
		}),
	}
}

// Migrate applies the schema and exits. It backs the "migrate" command.
func Migrate(ctx context.Context, cfg config.Config) error {
	logger := NewLogger(cfg, os.Stdout, "migrate")

	database, err := db.Connect(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}
	logger.Info("database schema migrated",
		"event", "bootstrap_schema_migrated",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"dialect", database.Dialect,
	)
	return nil
}

// NewLogger builds the process logger from the log section of cfg.
func NewLogger(cfg config.Config, w io.Writer, process string) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", cfg.ServiceName, "process", process)
}

// Handler exposes the wrapped HTTP handler without binding a port.
func (a *APIApp) Handler() http.Handler {
	return a.server.Handler()
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := a.shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	a.logger.Info("api app stopped",
		"event", "bootstrap_api_stopped",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return <-errCh
}

func (a *APIApp) Close() error {
	if a.database != nil {
		return a.database.Close()
	}
	return nil
}
