package auth

import (
	"log/slog"

	httpadapter "quill/contexts/identity-access/auth-service/adapters/http"
	"quill/contexts/identity-access/auth-service/adapters/memory"
	"quill/contexts/identity-access/auth-service/application/commands"
	"quill/contexts/identity-access/auth-service/ports"
)

// Module is the composition surface for signup/signin.
// Runtime wiring consumes Handler; Store is exposed for tests.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Credentials ports.CredentialStore
	Hasher      ports.PasswordHasher
	Tokens      ports.TokenIssuer
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	signUp := commands.SignUpUseCase{
		Credentials: deps.Credentials,
		Hasher:      deps.Hasher,
		Tokens:      deps.Tokens,
		Logger:      deps.Logger,
	}
	signIn := commands.SignInUseCase{
		Credentials: deps.Credentials,
		Hasher:      deps.Hasher,
		Tokens:      deps.Tokens,
		Logger:      deps.Logger,
	}
	return Module{Handler: httpadapter.Handler{
		SignUp: signUp,
		SignIn: signIn,
		Logger: deps.Logger,
	}}
}

// NewInMemoryModule wires the auth use cases against the in-memory store.
func NewInMemoryModule(hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger *slog.Logger) Module {
	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Credentials: store,
		Hasher:      hasher,
		Tokens:      tokens,
		Logger:      logger,
	})
	module.Store = store
	return module
}
