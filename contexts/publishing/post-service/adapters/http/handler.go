package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "quill/contexts/publishing/post-service/application"
	"quill/contexts/publishing/post-service/application/commands"
	"quill/contexts/publishing/post-service/application/queries"
	"quill/contexts/publishing/post-service/domain/entities"
	"quill/contexts/publishing/post-service/ports"
	httptransport "quill/contexts/publishing/post-service/transport/http"
	"quill/internal/shared/validation"
)

type Handler struct {
	ListPosts  queries.ListPostsUseCase
	GetPost    queries.GetPostUseCase
	CreatePost commands.CreatePostUseCase
	UpdatePost commands.UpdatePostUseCase
	DeletePost commands.DeletePostUseCase
	Logger     *slog.Logger
}

// ListPostsHandler godoc
// @Summary List posts
// @Description Returns every post with author and category, most recently updated first.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]httptransport.PostDTO}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /posts [get]
func (h Handler) ListPostsHandler(ctx context.Context) ([]httptransport.PostDTO, error) {
	result, err := h.ListPosts.Execute(ctx)
	if err != nil {
		h.logFailure("list", err)
		return nil, err
	}
	items := make([]httptransport.PostDTO, 0, len(result.Items))
	for _, post := range result.Items {
		items = append(items, mapPost(post))
	}
	return items, nil
}

// CreatePostHandler godoc
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreatePostRequest true "Post payload"
// @Success 201 {object} response.Envelope{data=httptransport.PostDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Router /posts [post]
func (h Handler) CreatePostHandler(ctx context.Context, req httptransport.CreatePostRequest) (httptransport.PostDTO, error) {
	if err := validation.Struct(req, httptransport.CreatePostMessages); err != nil {
		return httptransport.PostDTO{}, err
	}
	result, err := h.CreatePost.Execute(ctx, commands.CreatePostCommand{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   uint(req.AuthorID),
		CategoryID: uint(req.CategoryID),
	})
	if err != nil {
		h.logFailure("create", err)
		return httptransport.PostDTO{}, err
	}
	return mapPost(result.Post), nil
}

// GetPostHandler godoc
// @Summary Get post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 200 {object} response.Envelope{data=httptransport.PostDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /posts/{id} [get]
func (h Handler) GetPostHandler(ctx context.Context, postID uint) (httptransport.PostDTO, error) {
	result, err := h.GetPost.Execute(ctx, queries.GetPostQuery{PostID: postID})
	if err != nil {
		return httptransport.PostDTO{}, err
	}
	return mapPost(result.Post), nil
}

// UpdatePostHandler godoc
// @Summary Update post
// @Description Partially updates a post. Omitted fields keep their value.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post id"
// @Param request body httptransport.UpdatePostRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=httptransport.PostDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /posts/{id} [put]
func (h Handler) UpdatePostHandler(ctx context.Context, postID uint, req httptransport.UpdatePostRequest) (httptransport.PostDTO, error) {
	if err := validation.Struct(req, httptransport.UpdatePostMessages); err != nil {
		return httptransport.PostDTO{}, err
	}
	result, err := h.UpdatePost.Execute(ctx, commands.UpdatePostCommand{
		PostID: postID,
		Changes: ports.PostChanges{
			Title:      req.Title,
			Content:    req.Content,
			AuthorID:   optionalID(req.AuthorID),
			CategoryID: optionalID(req.CategoryID),
		},
	})
	if err != nil {
		h.logFailure("update", err)
		return httptransport.PostDTO{}, err
	}
	return mapPost(result.Post), nil
}

// DeletePostHandler godoc
// @Summary Delete post
// @Description Deletes a post and returns it as it was.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 200 {object} response.Envelope{data=httptransport.PostDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /posts/{id} [delete]
func (h Handler) DeletePostHandler(ctx context.Context, postID uint) (httptransport.PostDTO, error) {
	result, err := h.DeletePost.Execute(ctx, commands.DeletePostCommand{PostID: postID})
	if err != nil {
		h.logFailure("delete", err)
		return httptransport.PostDTO{}, err
	}
	return mapPost(result.Post), nil
}

// optionalID converts a validated positive id.
func optionalID(id *int) *uint {
	if id == nil {
		return nil
	}
	v := uint(*id)
	return &v
}

func (h Handler) logFailure(operation string, err error) {
	application.ResolveLogger(h.Logger).Error("post request failed",
		"event", "http_post_"+operation+"_failed",
		"module", "publishing/post-service",
		"layer", "transport",
		"error", err.Error(),
	)
}

func mapPost(post entities.Post) httptransport.PostDTO {
	return httptransport.PostDTO{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
		Author:     httptransport.RefDTO{ID: post.Author.ID, Name: post.Author.Name},
		Category:   httptransport.RefDTO{ID: post.Category.ID, Name: post.Category.Name},
		CreatedAt:  post.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  post.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
