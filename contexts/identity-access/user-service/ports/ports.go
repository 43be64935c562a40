package ports

import (
	"context"

	"quill/contexts/identity-access/user-service/domain/entities"
)

// UserChanges carries a partial update. Nil fields are left untouched.
type UserChanges struct {
	Email        *string
	PasswordHash *string
	Name         *string
}

func (c UserChanges) Empty() bool {
	return c.Email == nil && c.PasswordHash == nil && c.Name == nil
}

type UserRepository interface {
	GetUserWithPosts(ctx context.Context, userID uint) (entities.User, error)
	UpdateUser(ctx context.Context, userID uint, changes UserChanges) (entities.User, error)
	DeleteUser(ctx context.Context, userID uint) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}
