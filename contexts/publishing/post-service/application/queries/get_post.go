package queries

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/post-service/application"
	"quill/contexts/publishing/post-service/domain/entities"
	domainerrors "quill/contexts/publishing/post-service/domain/errors"
	"quill/contexts/publishing/post-service/ports"
)

type GetPostQuery struct {
	PostID uint
}

type GetPostResult struct {
	Post entities.Post
}

type GetPostUseCase struct {
	Posts  ports.PostRepository
	Logger *slog.Logger
}

func (u GetPostUseCase) Execute(ctx context.Context, query GetPostQuery) (GetPostResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if query.PostID == 0 {
		return GetPostResult{}, domainerrors.ErrPostNotFound
	}

	post, err := u.Posts.GetPost(ctx, query.PostID)
	if err != nil {
		logger.Warn("get post failed",
			"event", "post_get_failed",
			"module", "publishing/post-service",
			"layer", "application",
			"post_id", query.PostID,
			"error", err.Error(),
		)
		return GetPostResult{}, err
	}
	return GetPostResult{Post: post}, nil
}
