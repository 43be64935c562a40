package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"quill/internal/platform/metrics"
	"quill/internal/shared/response"

	"github.com/google/uuid"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws so that the first one listed is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type contextKey string

const (
	ctxKeyRequestID contextKey = "request_id"
	ctxKeyStartTime contextKey = "start_time"
)

const headerRequestID = "X-Request-Id"

// RequestID reuses an inbound X-Request-Id or mints a new one and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(headerRequestID))
			if requestID == "" {
				requestID = uuid.NewString()
			}
			ctx := context.WithValue(r.Context(), ctxKeyRequestID, requestID)
			ctx = context.WithValue(ctx, ctxKeyStartTime, time.Now())
			w.Header().Set(headerRequestID, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func startTimeFromContext(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxKeyStartTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// Recover turns a handler panic into a 500 envelope.
func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("handler panicked",
						"event", "http_handler_panic",
						"module", "internal/platform/httpserver",
						"layer", "platform",
						"request_id", RequestIDFromContext(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"panic", rec,
					)
					response.Error(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog writes one record per request once the handler returns.
func AccessLog(logger *slog.Logger, clients ClientResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newStatusRecorder(w)
			next.ServeHTTP(rw, r)

			attrs := []any{
				"event", "http_request_completed",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"request_id", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.statusCode,
				"duration_ms", time.Since(startTimeFromContext(r.Context())).Milliseconds(),
				"client_ip", clients.Resolve(r),
			}
			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				logger.Error("http request failed", attrs...)
			case rw.statusCode >= http.StatusBadRequest:
				logger.Warn("http request rejected", attrs...)
			default:
				logger.Info("http request completed", attrs...)
			}
		})
	}
}

// Metrics records request counts and latency by route pattern. It must sit
// directly around the mux so the matched pattern is visible after dispatch.
func Metrics(registry *metrics.Registry) Middleware {
	return func(next http.Handler) http.Handler {
		if registry == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newStatusRecorder(w)
			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			registry.ObserveRequest(route, r.Method, rw.statusCode, time.Since(start))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *statusRecorder) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
