package ports

import (
	"context"

	"quill/contexts/identity-access/auth-service/domain/entities"
)

// CredentialStore is the identity lookup over user rows.
type CredentialStore interface {
	// FindByEmail reports false when no user has the email.
	FindByEmail(ctx context.Context, email string) (entities.Credential, bool, error)
	// CreateCredential persists a new user. A duplicate email returns
	// domainerrors.ErrEmailAlreadyUsed.
	CreateCredential(ctx context.Context, credential entities.Credential) (entities.Credential, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
}

type TokenIssuer interface {
	IssueToken(userID uint, email string) (string, error)
}
