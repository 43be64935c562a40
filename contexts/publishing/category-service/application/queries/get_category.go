package queries

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/category-service/application"
	"quill/contexts/publishing/category-service/domain/entities"
	domainerrors "quill/contexts/publishing/category-service/domain/errors"
	"quill/contexts/publishing/category-service/ports"
)

type GetCategoryQuery struct {
	CategoryID uint
}

type GetCategoryResult struct {
	Category entities.Category
}

type GetCategoryUseCase struct {
	Categories ports.CategoryRepository
	Logger     *slog.Logger
}

func (u GetCategoryUseCase) Execute(ctx context.Context, query GetCategoryQuery) (GetCategoryResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if query.CategoryID == 0 {
		return GetCategoryResult{}, domainerrors.ErrCategoryNotFound
	}
	category, err := u.Categories.GetCategory(ctx, query.CategoryID)
	if err != nil {
		logger.Warn("get category failed",
			"event", "category_get_failed",
			"module", "publishing/category-service",
			"layer", "application",
			"category_id", query.CategoryID,
			"error", err.Error(),
		)
		return GetCategoryResult{}, err
	}
	return GetCategoryResult{Category: category}, nil
}
