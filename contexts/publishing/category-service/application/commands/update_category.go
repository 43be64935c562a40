package commands

import (
	"context"
	"log/slog"

	application "quill/contexts/publishing/category-service/application"
	"quill/contexts/publishing/category-service/domain/entities"
	domainerrors "quill/contexts/publishing/category-service/domain/errors"
	"quill/contexts/publishing/category-service/ports"
)

type UpdateCategoryCommand struct {
	CategoryID uint
	Changes    ports.CategoryChanges
}

type UpdateCategoryResult struct {
	Category entities.Category
}

type UpdateCategoryUseCase struct {
	Categories ports.CategoryRepository
	Logger     *slog.Logger
}

func (u UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (UpdateCategoryResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if cmd.CategoryID == 0 {
		return UpdateCategoryResult{}, domainerrors.ErrCategoryNotFound
	}
	category, err := u.Categories.UpdateCategory(ctx, cmd.CategoryID, cmd.Changes)
	if err != nil {
		logger.Error("update category failed",
			"event", "category_update_failed",
			"module", "publishing/category-service",
			"layer", "application",
			"category_id", cmd.CategoryID,
			"error", err.Error(),
		)
		return UpdateCategoryResult{}, err
	}
	return UpdateCategoryResult{Category: category}, nil
}
