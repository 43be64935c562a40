package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	application "quill/contexts/publishing/category-service/application"
	"quill/contexts/publishing/category-service/domain/entities"
	domainerrors "quill/contexts/publishing/category-service/domain/errors"
	"quill/contexts/publishing/category-service/ports"
)

// Store is an in-memory category repository for local runtime and tests.
type Store struct {
	mu         sync.RWMutex
	categories map[uint]entities.Category
	sequence   uint
	logger     *slog.Logger
}

// NewStore seeds categories as given, including their filed posts.
func NewStore(seed []entities.Category, logger *slog.Logger) *Store {
	categories := make(map[uint]entities.Category, len(seed))
	var sequence uint
	for _, category := range seed {
		categories[category.ID] = category
		if category.ID > sequence {
			sequence = category.ID
		}
	}
	return &Store{
		categories: categories,
		sequence:   sequence,
		logger:     application.ResolveLogger(logger),
	}
}

func (s *Store) ListCategories(_ context.Context) ([]entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Category, 0, len(s.categories))
	for _, category := range s.categories {
		items = append(items, clone(category))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	return items, nil
}

func (s *Store) GetCategory(_ context.Context, categoryID uint) (entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.categories[categoryID]
	if !ok {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	return clone(category), nil
}

func (s *Store) CreateCategory(_ context.Context, input ports.NewCategory) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequence++
	now := time.Now().UTC()
	category := entities.Category{
		ID:          s.sequence,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories[category.ID] = category
	return clone(category), nil
}

func (s *Store) UpdateCategory(_ context.Context, categoryID uint, changes ports.CategoryChanges) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	if changes.Name != nil {
		category.Name = *changes.Name
	}
	if changes.Description != nil {
		category.Description = *changes.Description
	}
	if !changes.Empty() {
		category.UpdatedAt = time.Now().UTC()
	}
	s.categories[categoryID] = category
	return clone(category), nil
}

func (s *Store) DeleteCategory(_ context.Context, categoryID uint) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	if len(category.Posts) > 0 {
		return entities.Category{}, domainerrors.ErrInvalidRelation
	}
	delete(s.categories, categoryID)
	return clone(category), nil
}

func clone(category entities.Category) entities.Category {
	posts := make([]entities.FiledPost, len(category.Posts))
	copy(posts, category.Posts)
	category.Posts = posts
	return category
}
