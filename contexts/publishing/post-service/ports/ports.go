package ports

import (
	"context"

	"quill/contexts/publishing/post-service/domain/entities"
)

type NewPost struct {
	Title      string
	Content    string
	AuthorID   uint
	CategoryID uint
}

// PostChanges carries a partial update. Nil fields are left untouched.
type PostChanges struct {
	Title      *string
	Content    *string
	AuthorID   *uint
	CategoryID *uint
}

func (c PostChanges) Empty() bool {
	return c.Title == nil && c.Content == nil && c.AuthorID == nil && c.CategoryID == nil
}

// PostRepository returns posts with author and category refs resolved.
type PostRepository interface {
	ListPosts(ctx context.Context) ([]entities.Post, error)
	GetPost(ctx context.Context, postID uint) (entities.Post, error)
	CreatePost(ctx context.Context, post NewPost) (entities.Post, error)
	UpdatePost(ctx context.Context, postID uint, changes PostChanges) (entities.Post, error)
	// DeletePost returns the row as it was before deletion.
	DeletePost(ctx context.Context, postID uint) (entities.Post, error)
}
