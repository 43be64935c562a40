package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quill/internal/platform/credentials"
	"quill/internal/shared/response"
)

// TokenVerifier is satisfied by *credentials.TokenManager.
type TokenVerifier interface {
	VerifyToken(raw string) (credentials.Identity, error)
}

type identityKey struct{}

// RequireBearer admits requests carrying a valid "Authorization: Bearer" token
// and stores the caller identity in the request context.
func RequireBearer(tokens TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok || tokens == nil {
				response.Error(w, http.StatusUnauthorized, "Authorization bearer token is required")
				return
			}

			identity, err := tokens.VerifyToken(raw)
			if err != nil {
				if errors.Is(err, credentials.ErrMissingUserID) {
					response.Error(w, http.StatusUnauthorized, "Invalid token payload: missing user Id")
					return
				}
				response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func IdentityFromContext(ctx context.Context) (credentials.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(credentials.Identity)
	return identity, ok
}

func bearerToken(authHeader string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
