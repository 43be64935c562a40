package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	application "quill/contexts/publishing/post-service/application"
	"quill/contexts/publishing/post-service/domain/entities"
	domainerrors "quill/contexts/publishing/post-service/domain/errors"
	"quill/contexts/publishing/post-service/ports"
)

// Store is an in-memory post repository for local runtime and tests.
// Authors and categories are name lookups keyed by id; posts must reference
// entries in both.
type Store struct {
	mu         sync.RWMutex
	posts      map[uint]entities.Post
	authors    map[uint]string
	categories map[uint]string
	sequence   uint
	now        func() time.Time
	logger     *slog.Logger
}

func NewStore(authors map[uint]string, categories map[uint]string, logger *slog.Logger) *Store {
	if authors == nil {
		authors = make(map[uint]string)
	}
	if categories == nil {
		categories = make(map[uint]string)
	}
	return &Store{
		posts:      make(map[uint]entities.Post),
		authors:    authors,
		categories: categories,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     application.ResolveLogger(logger),
	}
}

func (s *Store) ListPosts(_ context.Context) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Post, 0, len(s.posts))
	for _, post := range s.posts {
		items = append(items, s.resolve(post))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	return items, nil
}

func (s *Store) GetPost(_ context.Context, postID uint) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[postID]
	if !ok {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return s.resolve(post), nil
}

func (s *Store) CreatePost(_ context.Context, input ports.NewPost) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRefs(&input.AuthorID, &input.CategoryID); err != nil {
		return entities.Post{}, err
	}
	s.sequence++
	now := s.now()
	post := entities.Post{
		ID:         s.sequence,
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   input.AuthorID,
		CategoryID: input.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.posts[post.ID] = post
	return s.resolve(post), nil
}

func (s *Store) UpdatePost(_ context.Context, postID uint, changes ports.PostChanges) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	if changes.Empty() {
		return s.resolve(post), nil
	}
	if err := s.checkRefs(changes.AuthorID, changes.CategoryID); err != nil {
		return entities.Post{}, err
	}
	if changes.Title != nil {
		post.Title = *changes.Title
	}
	if changes.Content != nil {
		post.Content = *changes.Content
	}
	if changes.AuthorID != nil {
		post.AuthorID = *changes.AuthorID
	}
	if changes.CategoryID != nil {
		post.CategoryID = *changes.CategoryID
	}
	post.UpdatedAt = s.now()
	s.posts[postID] = post
	return s.resolve(post), nil
}

func (s *Store) DeletePost(_ context.Context, postID uint) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	delete(s.posts, postID)
	return s.resolve(post), nil
}

func (s *Store) checkRefs(authorID *uint, categoryID *uint) error {
	if authorID != nil {
		if _, ok := s.authors[*authorID]; !ok {
			return domainerrors.ErrAuthorNotFound
		}
	}
	if categoryID != nil {
		if _, ok := s.categories[*categoryID]; !ok {
			return domainerrors.ErrCategoryNotFound
		}
	}
	return nil
}

func (s *Store) resolve(post entities.Post) entities.Post {
	post.Author = entities.Ref{ID: post.AuthorID, Name: s.authors[post.AuthorID]}
	post.Category = entities.Ref{ID: post.CategoryID, Name: s.categories[post.CategoryID]}
	return post
}
