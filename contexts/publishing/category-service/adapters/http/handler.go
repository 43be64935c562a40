package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "quill/contexts/publishing/category-service/application"
	"quill/contexts/publishing/category-service/application/commands"
	"quill/contexts/publishing/category-service/application/queries"
	"quill/contexts/publishing/category-service/domain/entities"
	"quill/contexts/publishing/category-service/ports"
	httptransport "quill/contexts/publishing/category-service/transport/http"
	"quill/internal/shared/validation"
)

type Handler struct {
	ListCategories queries.ListCategoriesUseCase
	GetCategory    queries.GetCategoryUseCase
	CreateCategory commands.CreateCategoryUseCase
	UpdateCategory commands.UpdateCategoryUseCase
	DeleteCategory commands.DeleteCategoryUseCase
	Logger         *slog.Logger
}

// ListCategoriesHandler godoc
// @Summary List categories
// @Description Returns every category with its posts and their authors.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]httptransport.CategoryDTO}
// @Failure 401 {object} response.ErrorEnvelope
// @Router /categories [get]
func (h Handler) ListCategoriesHandler(ctx context.Context) ([]httptransport.CategoryDTO, error) {
	result, err := h.ListCategories.Execute(ctx)
	if err != nil {
		h.logFailure("list", err)
		return nil, err
	}
	items := make([]httptransport.CategoryDTO, 0, len(result.Items))
	for _, category := range result.Items {
		items = append(items, mapCategory(category))
	}
	return items, nil
}

// CreateCategoryHandler godoc
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateCategoryRequest true "Category payload"
// @Success 201 {object} response.Envelope{data=httptransport.CategoryDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Router /categories [post]
func (h Handler) CreateCategoryHandler(ctx context.Context, req httptransport.CreateCategoryRequest) (httptransport.CategoryDTO, error) {
	if err := validation.Struct(req, httptransport.CreateCategoryMessages); err != nil {
		return httptransport.CategoryDTO{}, err
	}
	result, err := h.CreateCategory.Execute(ctx, commands.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logFailure("create", err)
		return httptransport.CategoryDTO{}, err
	}
	return mapCategory(result.Category), nil
}

// GetCategoryHandler godoc
// @Summary Get category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} response.Envelope{data=httptransport.CategoryDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /categories/{id} [get]
func (h Handler) GetCategoryHandler(ctx context.Context, categoryID uint) (httptransport.CategoryDTO, error) {
	result, err := h.GetCategory.Execute(ctx, queries.GetCategoryQuery{CategoryID: categoryID})
	if err != nil {
		return httptransport.CategoryDTO{}, err
	}
	return mapCategory(result.Category), nil
}

// UpdateCategoryHandler godoc
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param request body httptransport.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=httptransport.CategoryDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /categories/{id} [put]
func (h Handler) UpdateCategoryHandler(ctx context.Context, categoryID uint, req httptransport.UpdateCategoryRequest) (httptransport.CategoryDTO, error) {
	if err := validation.Struct(req, httptransport.UpdateCategoryMessages); err != nil {
		return httptransport.CategoryDTO{}, err
	}
	result, err := h.UpdateCategory.Execute(ctx, commands.UpdateCategoryCommand{
		CategoryID: categoryID,
		Changes: ports.CategoryChanges{
			Name:        req.Name,
			Description: req.Description,
		},
	})
	if err != nil {
		h.logFailure("update", err)
		return httptransport.CategoryDTO{}, err
	}
	return mapCategory(result.Category), nil
}

// DeleteCategoryHandler godoc
// @Summary Delete category
// @Description Deletes a category. Categories that still have posts cannot be deleted.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} response.Envelope{data=httptransport.CategoryDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /categories/{id} [delete]
func (h Handler) DeleteCategoryHandler(ctx context.Context, categoryID uint) (httptransport.CategoryDTO, error) {
	result, err := h.DeleteCategory.Execute(ctx, commands.DeleteCategoryCommand{CategoryID: categoryID})
	if err != nil {
		h.logFailure("delete", err)
		return httptransport.CategoryDTO{}, err
	}
	return mapCategory(result.Category), nil
}

func (h Handler) logFailure(operation string, err error) {
	application.ResolveLogger(h.Logger).Error("category request failed",
		"event", "http_category_"+operation+"_failed",
		"module", "publishing/category-service",
		"layer", "transport",
		"error", err.Error(),
	)
}

func mapCategory(category entities.Category) httptransport.CategoryDTO {
	posts := make([]httptransport.FiledPostDTO, 0, len(category.Posts))
	for _, post := range category.Posts {
		posts = append(posts, httptransport.FiledPostDTO{
			ID:        post.ID,
			Title:     post.Title,
			Content:   post.Content,
			Author:    httptransport.AuthorRefDTO{ID: post.Author.ID, Name: post.Author.Name},
			CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   category.UpdatedAt.UTC().Format(time.RFC3339),
		Posts:       posts,
	}
}
