package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	auth "quill/contexts/identity-access/auth-service"
	domainerrors "quill/contexts/identity-access/auth-service/domain/errors"
	httptransport "quill/contexts/identity-access/auth-service/transport/http"
	"quill/internal/platform/credentials"
	"quill/internal/shared/validation"

	"golang.org/x/crypto/bcrypt"
)

func newModule(t *testing.T) (auth.Module, *credentials.TokenManager) {
	t.Helper()
	tokens, err := credentials.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return auth.NewInMemoryModule(credentials.NewPasswordHasher(bcrypt.MinCost), tokens, nil), tokens
}

func TestSignUpIssuesVerifiableToken(t *testing.T) {
	module, tokens := newModule(t)
	ctx := context.Background()

	resp, err := module.Handler.SignUpHandler(ctx, httptransport.SignUpRequest{
		Email:    "a@b.co",
		Password: "secret1",
		Name:     "A",
	})
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}

	identity, err := tokens.VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if identity.Email != "a@b.co" || identity.UserID == 0 {
		t.Fatalf("unexpected identity %+v", identity)
	}

	credential, found, _ := module.Store.FindByEmail(ctx, "a@b.co")
	if !found {
		t.Fatalf("expected credential to be stored")
	}
	if credential.PasswordHash == "secret1" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	module, _ := newModule(t)
	ctx := context.Background()
	req := httptransport.SignUpRequest{Email: "a@b.co", Password: "secret1", Name: "A"}

	if _, err := module.Handler.SignUpHandler(ctx, req); err != nil {
		t.Fatalf("first sign up failed: %v", err)
	}
	_, err := module.Handler.SignUpHandler(ctx, req)
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if module.Store.Count() != 1 {
		t.Fatalf("expected a single stored user, got %d", module.Store.Count())
	}
}

func TestSignUpValidation(t *testing.T) {
	module, _ := newModule(t)
	cases := []struct {
		req     httptransport.SignUpRequest
		message string
	}{
		{httptransport.SignUpRequest{Email: "not-an-email", Password: "secret1", Name: "A"}, "Email format is invalid"},
		{httptransport.SignUpRequest{Email: "a@b.co", Password: "123", Name: "A"}, "Password must be at least 6 characters"},
		{httptransport.SignUpRequest{Email: "a@b.co", Password: "secret1"}, "Name is required"},
	}
	for _, tc := range cases {
		_, err := module.Handler.SignUpHandler(context.Background(), tc.req)
		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if validationErr.Message != tc.message {
			t.Fatalf("expected %q, got %q", tc.message, validationErr.Message)
		}
	}
	if module.Store.Count() != 0 {
		t.Fatalf("invalid signups must not persist")
	}
}

func TestSignIn(t *testing.T) {
	module, tokens := newModule(t)
	ctx := context.Background()

	if _, err := module.Handler.SignUpHandler(ctx, httptransport.SignUpRequest{
		Email: "a@b.co", Password: "secret1", Name: "A",
	}); err != nil {
		t.Fatalf("sign up failed: %v", err)
	}

	resp, err := module.Handler.SignInHandler(ctx, httptransport.SignInRequest{Email: "a@b.co", Password: "secret1"})
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if _, err := tokens.VerifyToken(resp.Token); err != nil {
		t.Fatalf("sign in token does not verify: %v", err)
	}

	_, err = module.Handler.SignInHandler(ctx, httptransport.SignInRequest{Email: "a@b.co", Password: "wrong-pass"})
	if !errors.Is(err, domainerrors.ErrIncorrectCredentials) {
		t.Fatalf("expected ErrIncorrectCredentials, got %v", err)
	}

	_, err = module.Handler.SignInHandler(ctx, httptransport.SignInRequest{Email: "nobody@b.co", Password: "secret1"})
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
