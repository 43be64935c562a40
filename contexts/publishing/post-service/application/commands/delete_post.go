package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/post-service/application"
	"quill/contexts/publishing/post-service/domain/entities"
	domainerrors "quill/contexts/publishing/post-service/domain/errors"
	"quill/contexts/publishing/post-service/ports"
)

type DeletePostCommand struct {
	PostID uint
}

type DeletePostResult struct {
	Post entities.Post
}

type DeletePostUseCase struct {
	Posts  ports.PostRepository
	Logger *slog.Logger
}

func (u DeletePostUseCase) Execute(ctx context.Context, cmd DeletePostCommand) (DeletePostResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.PostID == 0 {
		return DeletePostResult{}, domainerrors.ErrPostNotFound
	}

	post, err := u.Posts.DeletePost(ctx, cmd.PostID)
	if err != nil {
		logger.Error("delete post failed",
			"event", "post_delete_failed",
			"module", "publishing/post-service",
			"layer", "application",
			"post_id", cmd.PostID,
			"error", err.Error(),
		)
		return DeletePostResult{}, err
	}

	logger.Info("post deleted",
		"event", "post_deleted",
		"module", "publishing/post-service",
		"layer", "application",
		"post_id", post.ID,
	)
	return DeletePostResult{Post: post}, nil
}
