package ports

import (
	"context"

	"quill/contexts/publishing/category-service/domain/entities"
)

type NewCategory struct {
	Name        string
	Description string
}

// CategoryChanges carries a partial update. Nil fields are left untouched.
type CategoryChanges struct {
	Name        *string
	Description *string
}

func (c CategoryChanges) Empty() bool {
	return c.Name == nil && c.Description == nil
}

// CategoryRepository returns categories with their posts and post authors.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (entities.Category, error)
	CreateCategory(ctx context.Context, category NewCategory) (entities.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint, changes CategoryChanges) (entities.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint) (entities.Category, error)
}
