package posts_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	posts "quill/contexts/publishing/post-service"
	domainerrors "quill/contexts/publishing/post-service/domain/errors"
	httptransport "quill/contexts/publishing/post-service/transport/http"
	"quill/internal/shared/validation"
)

func newModule() posts.Module {
	return posts.NewInMemoryModule(
		map[uint]string{1: "Budi"},
		map[uint]string{1: "Education"},
		nil,
	)
}

func validPost() httptransport.CreatePostRequest {
	return httptransport.CreatePostRequest{Title: "Title", AuthorID: 1, CategoryID: 1, Content: "Body"}
}

func TestPostLifecycle(t *testing.T) {
	module := newModule()
	ctx := context.Background()

	created, err := module.Handler.CreatePostHandler(ctx, validPost())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Author.Name != "Budi" || created.Category.Name != "Education" {
		t.Fatalf("expected resolved refs, got %+v", created)
	}

	title := "Renamed"
	updated, err := module.Handler.UpdatePostHandler(ctx, created.ID, httptransport.UpdatePostRequest{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" || updated.Content != "Body" {
		t.Fatalf("partial update changed the wrong fields: %+v", updated)
	}

	deleted, err := module.Handler.DeletePostHandler(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected deleted post to be returned, got %+v", deleted)
	}

	if _, err := module.Handler.GetPostHandler(ctx, created.ID); !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func TestCreatePostRejectsUnknownReferences(t *testing.T) {
	module := newModule()
	ctx := context.Background()

	req := validPost()
	req.AuthorID = 9
	if _, err := module.Handler.CreatePostHandler(ctx, req); !errors.Is(err, domainerrors.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}

	req = validPost()
	req.CategoryID = 9
	if _, err := module.Handler.CreatePostHandler(ctx, req); !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	list, err := module.Handler.ListPostsHandler(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no posts persisted, got %d", len(list))
	}
}

func TestCreatePostValidation(t *testing.T) {
	module := newModule()
	cases := []struct {
		mutate  func(*httptransport.CreatePostRequest)
		message string
	}{
		{func(r *httptransport.CreatePostRequest) { r.Title = "" }, "Title is required"},
		{func(r *httptransport.CreatePostRequest) { r.Title = strings.Repeat("x", 101) }, "Title has maximum 100 characters"},
		{func(r *httptransport.CreatePostRequest) { r.AuthorID = 0 }, "User ID must be a valid integer"},
		{func(r *httptransport.CreatePostRequest) { r.CategoryID = 0 }, "Category ID must be a valid integer"},
		{func(r *httptransport.CreatePostRequest) { r.AuthorID = -1 }, "User ID must be a valid integer"},
		{func(r *httptransport.CreatePostRequest) { r.CategoryID = -3 }, "Category ID must be a valid integer"},
		{func(r *httptransport.CreatePostRequest) { r.Content = "" }, "Please fill the Post description"},
	}
	for _, tc := range cases {
		req := validPost()
		tc.mutate(&req)
		_, err := module.Handler.CreatePostHandler(context.Background(), req)
		var validationErr *validation.Error
		if !errors.As(err, &validationErr) || validationErr.Message != tc.message {
			t.Fatalf("expected %q, got %v", tc.message, err)
		}
	}

	req := validPost()
	req.Title = strings.Repeat("x", 100)
	if _, err := module.Handler.CreatePostHandler(context.Background(), req); err != nil {
		t.Fatalf("100 character title must be accepted, got %v", err)
	}
}

func TestUpdatePostRejectsNegativeIDs(t *testing.T) {
	module := newModule()
	ctx := context.Background()

	created, err := module.Handler.CreatePostHandler(ctx, validPost())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	author := -1
	_, err = module.Handler.UpdatePostHandler(ctx, created.ID, httptransport.UpdatePostRequest{AuthorID: &author})
	var validationErr *validation.Error
	if !errors.As(err, &validationErr) || validationErr.Message != "User ID must be a valid integer" {
		t.Fatalf("expected author id validation error, got %v", err)
	}

	category := -1
	_, err = module.Handler.UpdatePostHandler(ctx, created.ID, httptransport.UpdatePostRequest{CategoryID: &category})
	if !errors.As(err, &validationErr) || validationErr.Message != "Category ID must be a valid integer" {
		t.Fatalf("expected category id validation error, got %v", err)
	}

	category = 1
	updated, err := module.Handler.UpdatePostHandler(ctx, created.ID, httptransport.UpdatePostRequest{CategoryID: &category})
	if err != nil || updated.CategoryID != 1 {
		t.Fatalf("expected positive category id accepted, got %+v %v", updated, err)
	}
}

func TestListPostsResolvesReferences(t *testing.T) {
	module := newModule()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := module.Handler.CreatePostHandler(ctx, validPost()); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	list, err := module.Handler.ListPostsHandler(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(list))
	}
	for _, post := range list {
		if post.Author.ID != 1 || post.Author.Name != "Budi" || post.Category.Name != "Education" {
			t.Fatalf("unexpected refs on %+v", post)
		}
	}
}
