package users

import (
	"log/slog"

	httpadapter "quill/contexts/identity-access/user-service/adapters/http"
	"quill/contexts/identity-access/user-service/adapters/memory"
	"quill/contexts/identity-access/user-service/application/commands"
	"quill/contexts/identity-access/user-service/application/queries"
	"quill/contexts/identity-access/user-service/domain/entities"
	"quill/contexts/identity-access/user-service/ports"
)

// Module is the composition surface for the current-user endpoints.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{Handler: httpadapter.Handler{
		GetUser: queries.GetUserWithPostsUseCase{
			Users:  deps.Users,
			Logger: deps.Logger,
		},
		UpdateUser: commands.UpdateUserUseCase{
			Users:  deps.Users,
			Hasher: deps.Hasher,
			Logger: deps.Logger,
		},
		DeleteUser: commands.DeleteUserUseCase{
			Users:  deps.Users,
			Logger: deps.Logger,
		},
		Logger: deps.Logger,
	}}
}

func NewInMemoryModule(seed []entities.User, hasher ports.PasswordHasher, logger *slog.Logger) Module {
	store := memory.NewStore(seed, logger)
	module := NewModule(Dependencies{
		Users:  store,
		Hasher: hasher,
		Logger: logger,
	})
	module.Store = store
	return module
}
