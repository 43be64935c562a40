package queries

import (
	"context"
	"log/slog"

	application "quill/contexts/identity-access/user-service/application"
	"quill/contexts/identity-access/user-service/domain/entities"
	domainerrors "quill/contexts/identity-access/user-service/domain/errors"
	"quill/contexts/identity-access/user-service/ports"
)

type GetUserWithPostsQuery struct {
	UserID uint
}

type GetUserWithPostsResult struct {
	User entities.User
}

type GetUserWithPostsUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (u GetUserWithPostsUseCase) Execute(ctx context.Context, query GetUserWithPostsQuery) (GetUserWithPostsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if query.UserID == 0 {
		return GetUserWithPostsResult{}, domainerrors.ErrInvalidUserID
	}

	user, err := u.Users.GetUserWithPosts(ctx, query.UserID)
	if err != nil {
		logger.Error("get user failed",
			"event", "user_get_failed",
			"module", "identity-access/user-service",
			"layer", "application",
			"user_id", query.UserID,
			"error", err.Error(),
		)
		return GetUserWithPostsResult{}, err
	}
	return GetUserWithPostsResult{User: user}, nil
}
