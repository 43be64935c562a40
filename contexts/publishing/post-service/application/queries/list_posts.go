package queries

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/post-service/application"
	"quill/contexts/publishing/post-service/domain/entities"
	"quill/contexts/publishing/post-service/ports"
)

type ListPostsResult struct {
	Items []entities.Post
}

type ListPostsUseCase struct {
	Posts  ports.PostRepository
	Logger *slog.Logger
}

// Execute lists every post, most recently updated first.
func (u ListPostsUseCase) Execute(ctx context.Context) (ListPostsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	items, err := u.Posts.ListPosts(ctx)
	if err != nil {
		logger.Error("list posts failed",
			"event", "post_list_failed",
			"module", "publishing/post-service",
			"layer", "application",
			"error", err.Error(),
		)
		return ListPostsResult{}, err
	}
	return ListPostsResult{Items: items}, nil
}
