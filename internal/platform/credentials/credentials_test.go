package credentials

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal the password")
	}
	if !hasher.Verify("secret1", hash) {
		t.Fatalf("expected password to verify")
	}
	if hasher.Verify("secret2", hash) {
		t.Fatalf("expected wrong password to fail")
	}
	if hasher.Verify("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify false")
	}
}

func TestPasswordHasherCost(t *testing.T) {
	if got := NewPasswordHasher(0).Cost(); got != DefaultCost {
		t.Fatalf("expected default cost %d, got %d", DefaultCost, got)
	}
	if got := NewPasswordHasher(1).Cost(); got != bcrypt.MinCost {
		t.Fatalf("expected min cost, got %d", got)
	}
	if got := NewPasswordHasher(99).Cost(); got != bcrypt.MaxCost {
		t.Fatalf("expected max cost, got %d", got)
	}
	if _, err := NewPasswordHasher(bcrypt.MinCost).Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("  ", time.Hour); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestTokenIssueAndVerify(t *testing.T) {
	manager, err := NewTokenManager("test-secret", 0)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }

	token, err := manager.IssueToken(42, "a@b.co")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	identity, err := manager.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.UserID != 42 || identity.Email != "a@b.co" {
		t.Fatalf("unexpected identity %+v", identity)
	}
	if !identity.ExpiresAt.Equal(issuedAt.Add(24 * time.Hour)) {
		t.Fatalf("expected one day expiry, got %s", identity.ExpiresAt)
	}
}

func TestTokenExpires(t *testing.T) {
	manager, _ := NewTokenManager("test-secret", time.Hour)
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }

	token, err := manager.IssueToken(7, "a@b.co")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	manager.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := manager.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenRejectsForeignSignatureAndAlgorithms(t *testing.T) {
	manager, _ := NewTokenManager("test-secret", time.Hour)
	other, _ := NewTokenManager("other-secret", time.Hour)

	token, _ := other.IssueToken(7, "a@b.co")
	if _, err := manager.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}

	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}
	if _, err := manager.VerifyToken(hs512); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected HS512 token to be rejected, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := manager.VerifyToken(unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected alg none to be rejected, got %v", err)
	}

	if _, err := manager.VerifyToken("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected garbage token to be rejected, got %v", err)
	}
}

func TestTokenRequiresExpiry(t *testing.T) {
	manager, _ := NewTokenManager("test-secret", time.Hour)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "7"}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := manager.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected token without exp to be rejected, got %v", err)
	}
}

func TestTokenRequiresNumericSubject(t *testing.T) {
	manager, _ := NewTokenManager("test-secret", time.Hour)
	for _, subject := range []string{"", "abc", "0"} {
		claims := jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := manager.VerifyToken(token); !errors.Is(err, ErrMissingUserID) {
			t.Fatalf("subject %q: expected ErrMissingUserID, got %v", subject, err)
		}
	}
}
