package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/post-service/application"
	"quill/contexts/publishing/post-service/domain/entities"
	domainerrors "quill/contexts/publishing/post-service/domain/errors"
	"quill/contexts/publishing/post-service/ports"
)

type UpdatePostCommand struct {
	PostID  uint
	Changes ports.PostChanges
}

type UpdatePostResult struct {
	Post entities.Post
}

type UpdatePostUseCase struct {
	Posts  ports.PostRepository
	Logger *slog.Logger
}

func (u UpdatePostUseCase) Execute(ctx context.Context, cmd UpdatePostCommand) (UpdatePostResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.PostID == 0 {
		return UpdatePostResult{}, domainerrors.ErrPostNotFound
	}

	post, err := u.Posts.UpdatePost(ctx, cmd.PostID, cmd.Changes)
	if err != nil {
		logger.Error("update post failed",
			"event", "post_update_failed",
			"module", "publishing/post-service",
			"layer", "application",
			"post_id", cmd.PostID,
			"error", err.Error(),
		)
		return UpdatePostResult{}, err
	}

	logger.Info("post updated",
		"event", "post_updated",
		"module", "publishing/post-service",
		"layer", "application",
		"post_id", post.ID,
	)
	return UpdatePostResult{Post: post}, nil
}
