package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/identity-access/user-service/application"
	"quill/contexts/identity-access/user-service/domain/entities"
	domainerrors "quill/contexts/identity-access/user-service/domain/errors"
	"quill/contexts/identity-access/user-service/ports"
)

type UpdateUserCommand struct {
	UserID   uint
	Email    *string
	Password *string
	Name     *string
}

type UpdateUserResult struct {
	User entities.User
}

type UpdateUserUseCase struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Logger *slog.Logger
}

// Execute re-hashes a supplied password before it reaches the store.
func (u UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (UpdateUserResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.UserID == 0 {
		return UpdateUserResult{}, domainerrors.ErrInvalidUserID
	}

	changes := ports.UserChanges{Email: cmd.Email, Name: cmd.Name}
	if cmd.Password != nil {
		hash, err := u.Hasher.Hash(*cmd.Password)
		if err != nil {
			return UpdateUserResult{}, err
		}
		changes.PasswordHash = &hash
	}

	user, err := u.Users.UpdateUser(ctx, cmd.UserID, changes)
	if err != nil {
		logger.Error("update user failed",
			"event", "user_update_failed",
			"module", "identity-access/user-service",
			"layer", "application",
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return UpdateUserResult{}, err
	}

	logger.Info("user updated",
		"event", "user_updated",
		"module", "identity-access/user-service",
		"layer", "application",
		"user_id", cmd.UserID,
		"password_changed", changes.PasswordHash != nil,
	)
	return UpdateUserResult{User: user}, nil
}
