package posts

import (
	"log/slog"

	httpadapter "quill/contexts/publishing/post-service/adapters/http"
	"quill/contexts/publishing/post-service/adapters/memory"
	"quill/contexts/publishing/post-service/application/commands"
	"quill/contexts/publishing/post-service/application/queries"
	"quill/contexts/publishing/post-service/ports"
)

// Module is the composition surface for post CRUD.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Posts  ports.PostRepository
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{Handler: httpadapter.Handler{
		ListPosts:  queries.ListPostsUseCase{Posts: deps.Posts, Logger: deps.Logger},
		GetPost:    queries.GetPostUseCase{Posts: deps.Posts, Logger: deps.Logger},
		CreatePost: commands.CreatePostUseCase{Posts: deps.Posts, Logger: deps.Logger},
		UpdatePost: commands.UpdatePostUseCase{Posts: deps.Posts, Logger: deps.Logger},
		DeletePost: commands.DeletePostUseCase{Posts: deps.Posts, Logger: deps.Logger},
		Logger:     deps.Logger,
	}}
}

// NewInMemoryModule seeds author and category names keyed by id.
func NewInMemoryModule(authors map[uint]string, categories map[uint]string, logger *slog.Logger) Module {
	store := memory.NewStore(authors, categories, logger)
	module := NewModule(Dependencies{Posts: store, Logger: logger})
	module.Store = store
	return module
}
