package postgresadapter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	domainerrors "quill/contexts/publishing/post-service/domain/errors"
	"quill/contexts/publishing/post-service/ports"
	"quill/internal/platform/db"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	database, err := db.Connect("sqlite:" + filepath.Join(t.TempDir(), "posts.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	now := time.Now().UTC()
	for _, stmt := range []string{
		"INSERT INTO users (id, email, password, name, created_at, updated_at) VALUES (1, 'a@b.co', 'h', 'Budi', ?, ?)",
		"INSERT INTO categories (id, name, description, created_at, updated_at) VALUES (1, 'Education', 'd', ?, ?)",
	} {
		if err := database.DB.Exec(stmt, now, now).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewRepository(database.DB, nil)
}

func TestCreateAndGetPost(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreatePost(ctx, ports.NewPost{Title: "T", Content: "C", AuthorID: 1, CategoryID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Author.Name != "Budi" || created.Category.Name != "Education" {
		t.Fatalf("expected preloaded refs, got %+v", created)
	}

	got, err := repo.GetPost(ctx, created.ID)
	if err != nil || got.Title != "T" {
		t.Fatalf("get: %+v %v", got, err)
	}
	if _, err := repo.GetPost(ctx, 999); !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCreatePostAttributesForeignKeyFailures(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.CreatePost(ctx, ports.NewPost{Title: "T", Content: "C", AuthorID: 42, CategoryID: 1})
	if !errors.Is(err, domainerrors.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
	_, err = repo.CreatePost(ctx, ports.NewPost{Title: "T", Content: "C", AuthorID: 1, CategoryID: 42})
	if !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpdateAndDeletePost(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreatePost(ctx, ports.NewPost{Title: "T", Content: "C", AuthorID: 1, CategoryID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "New"
	updated, err := repo.UpdatePost(ctx, created.ID, ports.PostChanges{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "New" || updated.Content != "C" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	badCategory := uint(77)
	if _, err := repo.UpdatePost(ctx, created.ID, ports.PostChanges{CategoryID: &badCategory}); !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if _, err := repo.UpdatePost(ctx, 999, ports.PostChanges{Title: &title}); !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	deleted, err := repo.DeletePost(ctx, created.ID)
	if err != nil || deleted.ID != created.ID {
		t.Fatalf("delete: %+v %v", deleted, err)
	}
	if _, err := repo.DeletePost(ctx, created.ID); !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}

	list, err := repo.ListPosts(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %d %v", len(list), err)
	}
}

func TestListPostsOrdersByUpdatedAtDesc(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, updatedAt := range []time.Time{base.Add(-time.Hour), base.Add(time.Hour), base} {
		err := repo.db.Exec(
			"INSERT INTO posts (id, title, content, author_id, category_id, created_at, updated_at) VALUES (?, 'T', 'C', 1, 1, ?, ?)",
			i+1, base, updatedAt,
		).Error
		if err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	list, err := repo.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []uint{2, 3, 1}
	for i, post := range list {
		if post.ID != want[i] {
			t.Fatalf("position %d: expected post %d, got %d", i, want[i], post.ID)
		}
		if post.Author.Name != "Budi" {
			t.Fatalf("expected author ref on post %d", post.ID)
		}
	}
}
