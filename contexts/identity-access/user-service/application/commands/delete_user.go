package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/identity-access/user-service/application"
	domainerrors "quill/contexts/identity-access/user-service/domain/errors"
	"quill/contexts/identity-access/user-service/ports"
)

type DeleteUserCommand struct {
	UserID uint
}

type DeleteUserUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (u DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	logger := application.ResolveLogger(u.Logger)
	if cmd.UserID == 0 {
		return domainerrors.ErrInvalidUserID
	}

	if err := u.Users.DeleteUser(ctx, cmd.UserID); err != nil {
		logger.Error("delete user failed",
			"event", "user_delete_failed",
			"module", "identity-access/user-service",
			"layer", "application",
			"user_id", cmd.UserID,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("user deleted",
		"event", "user_deleted",
		"module", "identity-access/user-service",
		"layer", "application",
		"user_id", cmd.UserID,
	)
	return nil
}
