package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/post-service/application"
	"quill/contexts/publishing/post-service/domain/entities"
	"quill/contexts/publishing/post-service/ports"
)

type CreatePostCommand struct {
	Title      string
	Content    string
	AuthorID   uint
	CategoryID uint
}

type CreatePostResult struct {
	Post entities.Post
}

type CreatePostUseCase struct {
	Posts  ports.PostRepository
	Logger *slog.Logger
}

func (u CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (CreatePostResult, error) {
	logger := application.ResolveLogger(u.Logger)

	post, err := u.Posts.CreatePost(ctx, ports.NewPost{
		Title:      cmd.Title,
		Content:    cmd.Content,
		AuthorID:   cmd.AuthorID,
		CategoryID: cmd.CategoryID,
	})
	if err != nil {
		logger.Error("create post failed",
			"event", "post_create_failed",
			"module", "publishing/post-service",
			"layer", "application",
			"author_id", cmd.AuthorID,
			"category_id", cmd.CategoryID,
			"error", err.Error(),
		)
		return CreatePostResult{}, err
	}

	logger.Info("post created",
		"event", "post_created",
		"module", "publishing/post-service",
		"layer", "application",
		"post_id", post.ID,
		"author_id", post.AuthorID,
	)
	return CreatePostResult{Post: post}, nil
}
