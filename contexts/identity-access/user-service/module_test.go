package users_test

import (
	"context"
	"errors"
	"testing"
	"time"

	users "quill/contexts/identity-access/user-service"
	"quill/contexts/identity-access/user-service/domain/entities"
	domainerrors "quill/contexts/identity-access/user-service/domain/errors"
	httptransport "quill/contexts/identity-access/user-service/transport/http"
	"quill/internal/platform/credentials"
	"quill/internal/shared/validation"

	"golang.org/x/crypto/bcrypt"
)

func seedUsers() []entities.User {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []entities.User{
		{ID: 1, Email: "a@b.co", Name: "A", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Email: "c@d.co", Name: "C", CreatedAt: now, UpdatedAt: now, Posts: []entities.AuthoredPost{
			{ID: 10, Title: "T", Content: "C", Category: entities.CategoryRef{ID: 3, Name: "Tech"}, CreatedAt: now},
		}},
	}
}

func newModule() users.Module {
	return users.NewInMemoryModule(seedUsers(), credentials.NewPasswordHasher(bcrypt.MinCost), nil)
}

func TestProfileReturnsPosts(t *testing.T) {
	module := newModule()

	profile, err := module.Handler.ProfileHandler(context.Background(), 2)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.Email != "c@d.co" || len(profile.Posts) != 1 {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if profile.Posts[0].Category.Name != "Tech" {
		t.Fatalf("expected category on post, got %+v", profile.Posts[0])
	}

	empty, err := module.Handler.PostsHandler(context.Background(), 1)
	if err != nil {
		t.Fatalf("posts failed: %v", err)
	}
	if empty.Posts == nil || len(empty.Posts) != 0 {
		t.Fatalf("expected empty, non-nil posts, got %v", empty.Posts)
	}

	if _, err := module.Handler.ProfileHandler(context.Background(), 99); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateReturnsPosts(t *testing.T) {
	module := newModule()
	name := "Renamed"

	updated, err := module.Handler.UpdateHandler(context.Background(), 2, httptransport.UpdateUserRequest{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Renamed" || len(updated.Posts) != 1 {
		t.Fatalf("expected renamed user with posts, got %+v", updated)
	}
	if updated.Posts[0].Title != "T" || updated.Posts[0].Category.Name != "Tech" {
		t.Fatalf("unexpected post %+v", updated.Posts[0])
	}

	profile, err := module.Handler.ProfileHandler(context.Background(), 2)
	if err != nil || len(profile.Posts) != 1 {
		t.Fatalf("expected stored posts untouched, got %+v %v", profile, err)
	}
}

func TestUpdateRehashesPassword(t *testing.T) {
	module := newModule()
	password := "newsecret"
	name := "Renamed"

	updated, err := module.Handler.UpdateHandler(context.Background(), 1, httptransport.UpdateUserRequest{
		Password: &password,
		Name:     &name,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected renamed user, got %+v", updated)
	}

	hash, ok := module.Store.PasswordHash(1)
	if !ok || hash == password {
		t.Fatalf("expected stored bcrypt hash, got %q", hash)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		t.Fatalf("stored hash does not match new password")
	}
}

func TestUpdateRejectsInvalidInput(t *testing.T) {
	module := newModule()
	badEmail := "nope"
	short := "123"
	taken := "c@d.co"

	_, err := module.Handler.UpdateHandler(context.Background(), 1, httptransport.UpdateUserRequest{Email: &badEmail})
	var validationErr *validation.Error
	if !errors.As(err, &validationErr) || validationErr.Message != "Email format is invalid" {
		t.Fatalf("expected email validation error, got %v", err)
	}

	_, err = module.Handler.UpdateHandler(context.Background(), 1, httptransport.UpdateUserRequest{Password: &short})
	if !errors.As(err, &validationErr) || validationErr.Message != "Password must be at least 6 characters" {
		t.Fatalf("expected password validation error, got %v", err)
	}

	_, err = module.Handler.UpdateHandler(context.Background(), 1, httptransport.UpdateUserRequest{Email: &taken})
	if !errors.Is(err, domainerrors.ErrEmailAlreadyUsed) {
		t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	module := newModule()
	ctx := context.Background()

	if _, err := module.Handler.DeleteHandler(ctx, 2); !errors.Is(err, domainerrors.ErrInvalidRelation) {
		t.Fatalf("expected ErrInvalidRelation for user with posts, got %v", err)
	}

	resp, err := module.Handler.DeleteHandler(ctx, 1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !resp.Status || resp.Message != "User deleted successfully" {
		t.Fatalf("unexpected delete response %+v", resp)
	}
	if _, err := module.Handler.DeleteHandler(ctx, 1); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
