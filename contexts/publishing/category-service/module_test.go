package categories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	categories "quill/contexts/publishing/category-service"
	"quill/contexts/publishing/category-service/domain/entities"
	domainerrors "quill/contexts/publishing/category-service/domain/errors"
	httptransport "quill/contexts/publishing/category-service/transport/http"
	"quill/internal/shared/validation"
)

func TestCategoryLifecycle(t *testing.T) {
	module := categories.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	created, err := module.Handler.CreateCategoryHandler(ctx, httptransport.CreateCategoryRequest{
		Name:        "Education",
		Description: "Schools",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Posts == nil {
		t.Fatalf("expected empty, non-nil posts")
	}

	description := "Learning"
	updated, err := module.Handler.UpdateCategoryHandler(ctx, created.ID, httptransport.UpdateCategoryRequest{Description: &description})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Education" || updated.Description != "Learning" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if _, err := module.Handler.DeleteCategoryHandler(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := module.Handler.GetCategoryHandler(ctx, created.ID); !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategoryWithPostsIsRejected(t *testing.T) {
	now := time.Now().UTC()
	module := categories.NewInMemoryModule([]entities.Category{{
		ID:        4,
		Name:      "Tech",
		CreatedAt: now,
		UpdatedAt: now,
		Posts:     []entities.FiledPost{{ID: 1, Title: "T", Author: entities.AuthorRef{ID: 1, Name: "Budi"}}},
	}}, nil)

	_, err := module.Handler.DeleteCategoryHandler(context.Background(), 4)
	if !errors.Is(err, domainerrors.ErrInvalidRelation) {
		t.Fatalf("expected ErrInvalidRelation, got %v", err)
	}

	got, err := module.Handler.GetCategoryHandler(context.Background(), 4)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.Posts) != 1 || got.Posts[0].Author.Name != "Budi" {
		t.Fatalf("expected filed post with author, got %+v", got.Posts)
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	module := categories.NewInMemoryModule(nil, nil)
	cases := []struct {
		req     httptransport.CreateCategoryRequest
		message string
	}{
		{httptransport.CreateCategoryRequest{Description: "d"}, "Name is required"},
		{httptransport.CreateCategoryRequest{Name: "n"}, "Please fill the description of this category"},
	}
	for _, tc := range cases {
		_, err := module.Handler.CreateCategoryHandler(context.Background(), tc.req)
		var validationErr *validation.Error
		if !errors.As(err, &validationErr) || validationErr.Message != tc.message {
			t.Fatalf("expected %q, got %v", tc.message, err)
		}
	}
}
