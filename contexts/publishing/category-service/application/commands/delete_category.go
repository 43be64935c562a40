package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/category-service/application"
	"quill/contexts/publishing/category-service/domain/entities"
	domainerrors "quill/contexts/publishing/category-service/domain/errors"
	"quill/contexts/publishing/category-service/ports"
)

type DeleteCategoryCommand struct {
	CategoryID uint
}

type DeleteCategoryResult struct {
	Category entities.Category
}

type DeleteCategoryUseCase struct {
	Categories ports.CategoryRepository
	Logger     *slog.Logger
}

func (u DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) (DeleteCategoryResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.CategoryID == 0 {
		return DeleteCategoryResult{}, domainerrors.ErrCategoryNotFound
	}
	category, err := u.Categories.DeleteCategory(ctx, cmd.CategoryID)
	if err != nil {
		logger.Error("delete category failed",
			"event", "category_delete_failed",
			"module", "publishing/category-service",
			"layer", "application",
			"category_id", cmd.CategoryID,
			"error", err.Error(),
		)
		return DeleteCategoryResult{}, err
	}

	logger.Info("category deleted",
		"event", "category_deleted",
		"module", "publishing/category-service",
		"layer", "application",
		"category_id", category.ID,
	)
	return DeleteCategoryResult{Category: category}, nil
}
