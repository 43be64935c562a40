package queries

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/category-service/application"
	"quill/contexts/publishing/category-service/domain/entities"
	"quill/contexts/publishing/category-service/ports"
)

type ListCategoriesResult struct {
	Items []entities.Category
}

type ListCategoriesUseCase struct {
	Categories ports.CategoryRepository
	Logger     *slog.Logger
}

func (u ListCategoriesUseCase) Execute(ctx context.Context) (ListCategoriesResult, error) {
	logger := application.ResolveLogger(u.Logger)
	items, err := u.Categories.ListCategories(ctx)
	if err != nil {
		logger.Error("list categories failed",
			"event", "category_list_failed",
			"module", "publishing/category-service",
			"layer", "application",
			"error", err.Error(),
		)
		return ListCategoriesResult{}, err
	}
	return ListCategoriesResult{Items: items}, nil
}
