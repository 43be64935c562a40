package categories

import (
	"log/slog"

	httpadapter "quill/contexts/publishing/category-service/adapters/http"
	"quill/contexts/publishing/category-service/adapters/memory"
	"quill/contexts/publishing/category-service/application/commands"
	"quill/contexts/publishing/category-service/application/queries"
	"quill/contexts/publishing/category-service/domain/entities"
	"quill/contexts/publishing/category-service/ports"
)

// Module is the composition surface for category CRUD.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Categories ports.CategoryRepository
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{Handler: httpadapter.Handler{
		ListCategories: queries.ListCategoriesUseCase{Categories: deps.Categories, Logger: deps.Logger},
		GetCategory:    queries.GetCategoryUseCase{Categories: deps.Categories, Logger: deps.Logger},
		CreateCategory: commands.CreateCategoryUseCase{Categories: deps.Categories, Logger: deps.Logger},
		UpdateCategory: commands.UpdateCategoryUseCase{Categories: deps.Categories, Logger: deps.Logger},
		DeleteCategory: commands.DeleteCategoryUseCase{Categories: deps.Categories, Logger: deps.Logger},
		Logger:         deps.Logger,
	}}
}

func NewInMemoryModule(seed []entities.Category, logger *slog.Logger) Module {
	store := memory.NewStore(seed, logger)
	module := NewModule(Dependencies{Categories: store, Logger: logger})
	module.Store = store
	return module
}
