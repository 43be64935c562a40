package commands

import (
	"context"
	"log/slog"
	"strings"

	application "quill/contexts/identity-access/auth-service/application"
	domainerrors "quill/contexts/identity-access/auth-service/domain/errors"
	"quill/contexts/identity-access/auth-service/ports"
)

type SignInCommand struct {
	Email    string
	Password string
}

type SignInResult struct {
	UserID uint
	Token  string
}

type SignInUseCase struct {
	Credentials ports.CredentialStore
	Hasher      ports.PasswordHasher
	Tokens      ports.TokenIssuer
	Logger      *slog.Logger
}

// Execute keeps "User does not exist" and "Incorrect credentials" distinct so
// existing clients can branch on them.
func (u SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (SignInResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Email) == "" {
		return SignInResult{}, domainerrors.ErrInvalidRequest
	}

	credential, found, err := u.Credentials.FindByEmail(ctx, cmd.Email)
	if err != nil {
		logger.Error("sign in lookup failed",
			"event", "auth_sign_in_lookup_failed",
			"module", "identity-access/auth-service",
			"layer", "application",
			"error", err.Error(),
		)
		return SignInResult{}, err
	}
	if !found {
		logger.Warn("sign in unknown user",
			"event", "auth_sign_in_unknown_user",
			"module", "identity-access/auth-service",
			"layer", "application",
		)
		return SignInResult{}, domainerrors.ErrUserNotFound
	}

	if !u.Hasher.Verify(cmd.Password, credential.PasswordHash) {
		logger.Warn("sign in rejected",
			"event", "auth_sign_in_rejected",
			"module", "identity-access/auth-service",
			"layer", "application",
			"user_id", credential.UserID,
		)
		return SignInResult{}, domainerrors.ErrIncorrectCredentials
	}

	token, err := u.Tokens.IssueToken(credential.UserID, credential.Email)
	if err != nil {
		return SignInResult{}, err
	}

	logger.Info("sign in completed",
		"event", "auth_sign_in_completed",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", credential.UserID,
	)
	return SignInResult{UserID: credential.UserID, Token: token}, nil
}
