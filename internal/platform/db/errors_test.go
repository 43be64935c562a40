package db

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func TestClassifyPostgresErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		kind       ViolationKind
		constraint string
	}{
		{
			name:       "unique",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			kind:       ViolationUnique,
			constraint: "users_email_key",
		},
		{
			name:       "foreign key wrapped",
			err:        fmt.Errorf("insert post: %w", &pgconn.PgError{Code: "23503", ConstraintName: "fk_posts_author"}),
			kind:       ViolationForeignKey,
			constraint: "fk_posts_author",
		},
		{
			name: "not null",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "title"},
			kind: ViolationNotNull,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := Classify(tc.err)
			if !ok {
				t.Fatalf("expected violation for %v", tc.err)
			}
			if v.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, v.Kind)
			}
			if v.Constraint != tc.constraint {
				t.Fatalf("expected constraint %q, got %q", tc.constraint, v.Constraint)
			}
		})
	}
}

func TestClassifyRejectsOtherErrors(t *testing.T) {
	if _, ok := Classify(nil); ok {
		t.Fatalf("nil must not classify")
	}
	if _, ok := Classify(errors.New("boom")); ok {
		t.Fatalf("plain error must not classify")
	}
	if _, ok := Classify(&pgconn.PgError{Code: "40001"}); ok {
		t.Fatalf("serialization failure must not classify")
	}
}

func TestClassifySQLiteErrors(t *testing.T) {
	v, ok := Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})
	if !ok || v.Kind != ViolationForeignKey {
		t.Fatalf("expected foreign key violation, got %+v ok=%v", v, ok)
	}
	v, ok = Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
	if !ok || v.Kind != ViolationUnique {
		t.Fatalf("expected unique violation, got %+v ok=%v", v, ok)
	}
	if _, ok := Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintTrigger}); ok {
		t.Fatalf("trigger failure without a foreign key message must not classify")
	}
}

func TestViolationMentions(t *testing.T) {
	v := Violation{Kind: ViolationForeignKey, Constraint: "fk_posts_Category"}
	if !v.Mentions("category") {
		t.Fatalf("expected category match")
	}
	if v.Mentions("author") {
		t.Fatalf("unexpected author match")
	}
}

func TestUnclassifiedCarriesDriverCode(t *testing.T) {
	err := Unclassified("post.create", &pgconn.PgError{Code: "57014", Message: "canceling statement"})

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %T", err)
	}
	if storeErr.Code != "57014" || storeErr.Op != "post.create" {
		t.Fatalf("unexpected store error %+v", storeErr)
	}
	if !strings.Contains(err.Error(), "code 57014") {
		t.Fatalf("expected code in message, got %q", err.Error())
	}
	if Unclassified("noop", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
	if again := Unclassified("outer", err); again != err {
		t.Fatalf("expected existing store error to pass through")
	}
}

func TestSQLiteConstraintsAreClassified(t *testing.T) {
	database, err := Connect("sqlite:" + filepath.Join(t.TempDir(), "quill.db"))
	if err != nil {
		t.Fatalf("connect sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	now := time.Now().UTC()
	user := userTable{Email: "a@b.co", Password: "hash", Name: "A", CreatedAt: now, UpdatedAt: now}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	duplicate := userTable{Email: "a@b.co", Password: "hash", Name: "B", CreatedAt: now, UpdatedAt: now}
	err = database.DB.Create(&duplicate).Error
	v, ok := Classify(err)
	if !ok || v.Kind != ViolationUnique {
		t.Fatalf("expected unique violation, got %v", err)
	}
	if !v.Mentions("email") {
		t.Fatalf("expected email column, got %+v", v)
	}

	orphan := postTable{Title: "t", Content: "c", AuthorID: user.ID + 100, CategoryID: 999, CreatedAt: now, UpdatedAt: now}
	err = database.DB.Omit("Author", "Category").Create(&orphan).Error
	v, ok = Classify(err)
	if !ok || v.Kind != ViolationForeignKey {
		t.Fatalf("expected foreign key violation, got %v", err)
	}
}

func TestSQLiteRestrictedDeleteIsForeignKeyViolation(t *testing.T) {
	database, err := Connect("sqlite:" + filepath.Join(t.TempDir(), "restrict.db"))
	if err != nil {
		t.Fatalf("connect sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	now := time.Now().UTC()
	user := userTable{Email: "owner@b.co", Password: "hash", Name: "Owner", CreatedAt: now, UpdatedAt: now}
	category := categoryTable{Name: "News", Description: "d", CreatedAt: now, UpdatedAt: now}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := database.DB.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	post := postTable{Title: "t", Content: "c", AuthorID: user.ID, CategoryID: category.ID, CreatedAt: now, UpdatedAt: now}
	if err := database.DB.Omit("Author", "Category").Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}

	for name, target := range map[string]any{"user": &userTable{ID: user.ID}, "category": &categoryTable{ID: category.ID}} {
		err := database.DB.Delete(target).Error
		v, ok := Classify(err)
		if !ok || v.Kind != ViolationForeignKey {
			t.Fatalf("%s: expected foreign key violation, got %v", name, err)
		}
	}
}
