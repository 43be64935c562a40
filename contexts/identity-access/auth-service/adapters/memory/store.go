package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	application "quill/contexts/identity-access/auth-service/application"
	"quill/contexts/identity-access/auth-service/domain/entities"
	domainerrors "quill/contexts/identity-access/auth-service/domain/errors"
)

// Store is an in-memory credential store for local runtime and tests.
type Store struct {
	mu       sync.RWMutex
	byEmail  map[string]entities.Credential
	sequence uint
	logger   *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		byEmail: make(map[string]entities.Credential),
		logger:  application.ResolveLogger(logger),
	}
}

func (s *Store) FindByEmail(_ context.Context, email string) (entities.Credential, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	credential, ok := s.byEmail[email]
	return credential, ok, nil
}

func (s *Store) CreateCredential(_ context.Context, credential entities.Credential) (entities.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[credential.Email]; exists {
		return entities.Credential{}, domainerrors.ErrEmailAlreadyUsed
	}
	s.sequence++
	now := time.Now().UTC()
	credential.UserID = s.sequence
	credential.CreatedAt = now
	credential.UpdatedAt = now
	s.byEmail[credential.Email] = credential
	return credential, nil
}

// Count is used by tests to assert nothing was persisted.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}
