package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	application "quill/contexts/identity-access/user-service/application"
	"quill/contexts/identity-access/user-service/domain/entities"
	domainerrors "quill/contexts/identity-access/user-service/domain/errors"
	"quill/contexts/identity-access/user-service/ports"
)

// Store is an in-memory user repository for local runtime and tests.
// Posts seeded on a user block its deletion the same way the foreign key does.
type Store struct {
	mu       sync.RWMutex
	users    map[uint]entities.User
	password map[uint]string
	logger   *slog.Logger
}

func NewStore(seed []entities.User, logger *slog.Logger) *Store {
	users := make(map[uint]entities.User, len(seed))
	for _, user := range seed {
		users[user.ID] = user
	}
	return &Store{
		users:    users,
		password: make(map[uint]string),
		logger:   application.ResolveLogger(logger),
	}
}

func (s *Store) GetUserWithPosts(_ context.Context, userID uint) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	posts := make([]entities.AuthoredPost, len(user.Posts))
	copy(posts, user.Posts)
	user.Posts = posts
	return user, nil
}

func (s *Store) UpdateUser(_ context.Context, userID uint, changes ports.UserChanges) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	if changes.Email != nil {
		for id, other := range s.users {
			if id != userID && other.Email == *changes.Email {
				return entities.User{}, domainerrors.ErrEmailAlreadyUsed
			}
		}
		user.Email = *changes.Email
	}
	if changes.Name != nil {
		user.Name = *changes.Name
	}
	if changes.PasswordHash != nil {
		s.password[userID] = *changes.PasswordHash
	}
	if !changes.Empty() {
		user.UpdatedAt = time.Now().UTC()
	}
	s.users[userID] = user

	posts := make([]entities.AuthoredPost, len(user.Posts))
	copy(posts, user.Posts)
	user.Posts = posts
	return user, nil
}

func (s *Store) DeleteUser(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	if len(user.Posts) > 0 {
		return domainerrors.ErrInvalidRelation
	}
	delete(s.users, userID)
	delete(s.password, userID)
	return nil
}

// PasswordHash exposes the last stored hash for tests.
func (s *Store) PasswordHash(userID uint) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.password[userID]
	return hash, ok
}
