package commands

import (
	"context"
	"log/slog"
	"strings"

	application "quill/contexts/identity-access/auth-service/application"
	"quill/contexts/identity-access/auth-service/domain/entities"
	domainerrors "quill/contexts/identity-access/auth-service/domain/errors"
	"quill/contexts/identity-access/auth-service/ports"
)

type SignUpCommand struct {
	Email    string
	Password string
	Name     string
}

type SignUpResult struct {
	UserID uint
	Token  string
}

type SignUpUseCase struct {
	Credentials ports.CredentialStore
	Hasher      ports.PasswordHasher
	Tokens      ports.TokenIssuer
	Logger      *slog.Logger
}

// Execute rejects a known email before hashing. A concurrent signup that wins
// the race surfaces as ErrEmailAlreadyUsed from the store.
func (u SignUpUseCase) Execute(ctx context.Context, cmd SignUpCommand) (SignUpResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return SignUpResult{}, domainerrors.ErrInvalidRequest
	}

	logger.Info("sign up started",
		"event", "auth_sign_up_started",
		"module", "identity-access/auth-service",
		"layer", "application",
	)

	_, found, err := u.Credentials.FindByEmail(ctx, cmd.Email)
	if err != nil {
		logger.Error("sign up lookup failed",
			"event", "auth_sign_up_lookup_failed",
			"module", "identity-access/auth-service",
			"layer", "application",
			"error", err.Error(),
		)
		return SignUpResult{}, err
	}
	if found {
		logger.Warn("sign up email already registered",
			"event", "auth_sign_up_email_taken",
			"module", "identity-access/auth-service",
			"layer", "application",
		)
		return SignUpResult{}, domainerrors.ErrEmailTaken
	}

	hash, err := u.Hasher.Hash(cmd.Password)
	if err != nil {
		return SignUpResult{}, err
	}

	created, err := u.Credentials.CreateCredential(ctx, entities.Credential{
		Email:        cmd.Email,
		PasswordHash: hash,
		Name:         cmd.Name,
	})
	if err != nil {
		logger.Error("sign up persist failed",
			"event", "auth_sign_up_persist_failed",
			"module", "identity-access/auth-service",
			"layer", "application",
			"error", err.Error(),
		)
		return SignUpResult{}, err
	}

	token, err := u.Tokens.IssueToken(created.UserID, created.Email)
	if err != nil {
		return SignUpResult{}, err
	}

	logger.Info("sign up completed",
		"event", "auth_sign_up_completed",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", created.UserID,
	)
	return SignUpResult{UserID: created.UserID, Token: token}, nil
}
