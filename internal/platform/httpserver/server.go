package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	auth "quill/contexts/identity-access/auth-service"
	users "quill/contexts/identity-access/user-service"
	categories "quill/contexts/publishing/category-service"
	posts "quill/contexts/publishing/post-service"
	"quill/internal/platform/httpserver/docs"
	"quill/internal/platform/metrics"
	"quill/internal/shared/response"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Modules groups the bounded contexts served over HTTP.
type Modules struct {
	Auth       auth.Module
	Users      users.Module
	Posts      posts.Module
	Categories categories.Module
}

type Options struct {
	Addr           string
	BasePath       string
	Tokens         TokenVerifier
	Metrics        *metrics.Registry
	AuthRateLimit  float64
	AuthRateBurst  int
	// TrustedProxies are peers whose X-Forwarded-For and X-Real-IP headers are believed.
	TrustedProxies []netip.Prefix
	Logger         *slog.Logger
}

type Server struct {
	mux         *http.ServeMux
	handler     http.Handler
	httpServer  *http.Server
	logger      *slog.Logger
	addr        string
	basePath    string
	modules     Modules
	tokens      TokenVerifier
	metrics     *metrics.Registry
	authLimiter *clientLimiter
	clients     ClientResolver
}

func New(modules Modules, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":3000"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		basePath:    strings.TrimRight(opts.BasePath, "/"),
		modules:     modules,
		tokens:      opts.Tokens,
		metrics:     opts.Metrics,
		authLimiter: newClientLimiter(opts.AuthRateLimit, opts.AuthRateBurst),
		clients:     NewClientResolver(opts.TrustedProxies),
	}
	s.registerRoutes()

	s.handler = Chain(s.mux,
		RequestID(),
		AccessLog(logger, s.clients),
		Recover(logger),
		Metrics(opts.Metrics),
	)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start blocks until the server stops. A graceful Shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
		"base_path", s.basePath,
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down",
		"event", "http_server_shutdown",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	base := s.basePath

	docs.SwaggerInfo.BasePath = base
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}
	s.mux.Handle(base+"/docs/", httpSwagger.Handler(
		httpSwagger.URL(base+"/docs/doc.json"),
	))
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}

	s.mux.HandleFunc("GET "+base+"/{$}", s.handleRoot)
	if base != "" {
		s.mux.HandleFunc("GET "+base, s.handleRoot)
	}

	s.mux.Handle("POST "+base+"/auth/signup", s.rateLimited(s.handleSignUp))
	s.mux.Handle("POST "+base+"/auth/signin", s.rateLimited(s.handleSignIn))

	s.mux.Handle("GET "+base+"/users/profile", s.protected(s.handleUserProfile))
	s.mux.Handle("PUT "+base+"/users/edit", s.protected(s.handleUserEdit))
	s.mux.Handle("GET "+base+"/users/posts", s.protected(s.handleUserPosts))
	s.mux.Handle("DELETE "+base+"/users/delete", s.protected(s.handleUserDelete))

	s.mux.Handle("GET "+base+"/posts", s.protected(s.handleListPosts))
	s.mux.Handle("POST "+base+"/posts", s.protected(s.handleCreatePost))
	s.mux.Handle("GET "+base+"/posts/{id}", s.protected(s.handleGetPost))
	s.mux.Handle("PUT "+base+"/posts/{id}", s.protected(s.handleUpdatePost))
	s.mux.Handle("DELETE "+base+"/posts/{id}", s.protected(s.handleDeletePost))

	s.mux.Handle("GET "+base+"/categories", s.protected(s.handleListCategories))
	s.mux.Handle("POST "+base+"/categories", s.protected(s.handleCreateCategory))
	s.mux.Handle("GET "+base+"/categories/{id}", s.protected(s.handleGetCategory))
	s.mux.Handle("PUT "+base+"/categories/{id}", s.protected(s.handleUpdateCategory))
	s.mux.Handle("DELETE "+base+"/categories/{id}", s.protected(s.handleDeleteCategory))
}

func (s *Server) protected(handler http.HandlerFunc) http.Handler {
	return RequireBearer(s.tokens)(handler)
}

func (s *Server) rateLimited(handler http.HandlerFunc) http.Handler {
	return RateLimit(s.authLimiter, s.clients)(handler)
}

// handleRoot godoc
// @Summary Health check
// @Tags app
// @Produce json
// @Success 200 {object} response.Envelope{data=string}
// @Router / [get]
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, http.StatusOK, "", "Server is running")
}
