package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"quill/contexts/identity-access/user-service/domain/entities"
	domainerrors "quill/contexts/identity-access/user-service/domain/errors"
	"quill/contexts/identity-access/user-service/ports"
	"quill/internal/platform/db"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetUserWithPosts(ctx context.Context, userID uint) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Preload("Posts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		}).
		Preload("Posts.Category").
		Where("id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, db.Unclassified("user.get", err)
	}
	return row.toEntity(true), nil
}

func (r *Repository) UpdateUser(ctx context.Context, userID uint, changes ports.UserChanges) (entities.User, error) {
	if !changes.Empty() {
		updates := map[string]any{"updated_at": time.Now().UTC()}
		if changes.Email != nil {
			updates["email"] = *changes.Email
		}
		if changes.PasswordHash != nil {
			updates["password"] = *changes.PasswordHash
		}
		if changes.Name != nil {
			updates["name"] = *changes.Name
		}

		result := r.db.WithContext(ctx).
			Model(&userModel{}).
			Where("id = ?", userID).
			Updates(updates)
		if result.Error != nil {
			if violation, ok := db.Classify(result.Error); ok && violation.Kind == db.ViolationUnique {
				return entities.User{}, domainerrors.ErrEmailAlreadyUsed
			}
			return entities.User{}, db.Unclassified("user.update", result.Error)
		}
		if result.RowsAffected == 0 {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
	}

	return r.GetUserWithPosts(ctx, userID)
}

func (r *Repository) DeleteUser(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&userModel{})
	if result.Error != nil {
		if violation, ok := db.Classify(result.Error); ok && violation.Kind == db.ViolationForeignKey {
			r.logger.Warn("user delete blocked by owned posts",
				"event", "user_delete_relation_violation",
				"module", "identity-access/user-service",
				"layer", "adapter",
				"user_id", userID,
				"constraint", violation.Constraint,
			)
			return domainerrors.ErrInvalidRelation
		}
		return db.Unclassified("user.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

type userModel struct {
	ID        uint                `gorm:"column:id;primaryKey"`
	Email     string              `gorm:"column:email"`
	Password  string              `gorm:"column:password"`
	Name      string              `gorm:"column:name"`
	CreatedAt time.Time           `gorm:"column:created_at"`
	UpdatedAt time.Time           `gorm:"column:updated_at"`
	Posts     []authoredPostModel `gorm:"foreignKey:AuthorID;references:ID"`
}

func (userModel) TableName() string {
	return "users"
}

type authoredPostModel struct {
	ID         uint             `gorm:"column:id;primaryKey"`
	Title      string           `gorm:"column:title"`
	Content    string           `gorm:"column:content"`
	AuthorID   uint             `gorm:"column:author_id"`
	CategoryID uint             `gorm:"column:category_id"`
	Category   categoryRefModel `gorm:"foreignKey:CategoryID;references:ID"`
	CreatedAt  time.Time        `gorm:"column:created_at"`
}

func (authoredPostModel) TableName() string {
	return "posts"
}

type categoryRefModel struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (categoryRefModel) TableName() string {
	return "categories"
}

func (m userModel) toEntity(withPosts bool) entities.User {
	user := entities.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if !withPosts {
		return user
	}
	user.Posts = make([]entities.AuthoredPost, 0, len(m.Posts))
	for _, post := range m.Posts {
		user.Posts = append(user.Posts, entities.AuthoredPost{
			ID:        post.ID,
			Title:     post.Title,
			Content:   post.Content,
			Category:  entities.CategoryRef{ID: post.Category.ID, Name: post.Category.Name},
			CreatedAt: post.CreatedAt,
		})
	}
	return user
}
