package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/category-service/application"
	"quill/contexts/publishing/category-service/domain/entities"
	"quill/contexts/publishing/category-service/ports"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
}

type CreateCategoryResult struct {
	Category entities.Category
}

type CreateCategoryUseCase struct {
	Categories ports.CategoryRepository
	Logger     *slog.Logger
}

func (u CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (CreateCategoryResult, error) {
	logger := application.ResolveLogger(u.Logger)
	category, err := u.Categories.CreateCategory(ctx, ports.NewCategory{
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if err != nil {
		logger.Error("create category failed",
			"event", "category_create_failed",
			"module", "publishing/category-service",
			"layer", "application",
			"error", err.Error(),
		)
		return CreateCategoryResult{}, err
	}

	logger.Info("category created",
		"event", "category_created",
		"module", "publishing/category-service",
		"layer", "application",
		"category_id", category.ID,
	)
	return CreateCategoryResult{Category: category}, nil
}
