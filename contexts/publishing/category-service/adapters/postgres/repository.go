package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"quill/contexts/publishing/category-service/domain/entities"
	domainerrors "quill/contexts/publishing/category-service/domain/errors"
	"quill/contexts/publishing/category-service/ports"
	"quill/internal/platform/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var rows []categoryModel
	if err := withPosts(r.db.WithContext(ctx)).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&rows).
		Error; err != nil {
		return nil, db.Unclassified("category.list", err)
	}
	items := make([]entities.Category, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetCategory(ctx context.Context, categoryID uint) (entities.Category, error) {
	return r.getCategory(r.db.WithContext(ctx), categoryID)
}

func (r *Repository) CreateCategory(ctx context.Context, category ports.NewCategory) (entities.Category, error) {
	row := categoryModel{
		Name:        category.Name,
		Description: category.Description,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return entities.Category{}, db.Unclassified("category.create", err)
	}
	entity := row.toEntity()
	entity.Posts = []entities.FiledPost{}
	return entity, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, categoryID uint, changes ports.CategoryChanges) (entities.Category, error) {
	if !changes.Empty() {
		updates := map[string]any{"updated_at": time.Now().UTC()}
		if changes.Name != nil {
			updates["name"] = *changes.Name
		}
		if changes.Description != nil {
			updates["description"] = *changes.Description
		}
		result := r.db.WithContext(ctx).
			Model(&categoryModel{}).
			Where("id = ?", categoryID).
			Updates(updates)
		if result.Error != nil {
			return entities.Category{}, db.Unclassified("category.update", result.Error)
		}
		if result.RowsAffected == 0 {
			return entities.Category{}, domainerrors.ErrCategoryNotFound
		}
	}
	return r.GetCategory(ctx, categoryID)
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID uint) (entities.Category, error) {
	var deleted entities.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := r.getCategory(tx, categoryID)
		if err != nil {
			return err
		}
		result := tx.Where("id = ?", categoryID).Delete(&categoryModel{})
		if result.Error != nil {
			if violation, ok := db.Classify(result.Error); ok && violation.Kind == db.ViolationForeignKey {
				r.logger.Warn("category delete blocked by filed posts",
					"event", "category_delete_relation_violation",
					"module", "publishing/category-service",
					"layer", "adapter",
					"category_id", categoryID,
				)
				return domainerrors.ErrInvalidRelation
			}
			return db.Unclassified("category.delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrCategoryNotFound
		}
		deleted = category
		return nil
	})
	if err != nil {
		return entities.Category{}, err
	}
	return deleted, nil
}

func (r *Repository) getCategory(tx *gorm.DB, categoryID uint) (entities.Category, error) {
	var row categoryModel
	err := withPosts(tx).
		Where("id = ?", categoryID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Category{}, domainerrors.ErrCategoryNotFound
		}
		return entities.Category{}, db.Unclassified("category.get", err)
	}
	return row.toEntity(), nil
}

func withPosts(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Posts", func(q *gorm.DB) *gorm.DB { return q.Order("created_at DESC") }).
		Preload("Posts.Author", func(q *gorm.DB) *gorm.DB { return q.Select("id", "name") })
}

type categoryModel struct {
	ID          uint             `gorm:"column:id;primaryKey"`
	Name        string           `gorm:"column:name"`
	Description string           `gorm:"column:description"`
	CreatedAt   time.Time        `gorm:"column:created_at"`
	UpdatedAt   time.Time        `gorm:"column:updated_at"`
	Posts       []filedPostModel `gorm:"foreignKey:CategoryID;references:ID"`
}

func (categoryModel) TableName() string {
	return "categories"
}

type filedPostModel struct {
	ID         uint           `gorm:"column:id;primaryKey"`
	Title      string         `gorm:"column:title"`
	Content    string         `gorm:"column:content"`
	AuthorID   uint           `gorm:"column:author_id"`
	Author     authorRefModel `gorm:"foreignKey:AuthorID;references:ID"`
	CategoryID uint           `gorm:"column:category_id"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
}

func (filedPostModel) TableName() string {
	return "posts"
}

type authorRefModel struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (authorRefModel) TableName() string {
	return "users"
}

func (m categoryModel) toEntity() entities.Category {
	category := entities.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Posts:       make([]entities.FiledPost, 0, len(m.Posts)),
	}
	for _, post := range m.Posts {
		category.Posts = append(category.Posts, entities.FiledPost{
			ID:        post.ID,
			Title:     post.Title,
			Content:   post.Content,
			Author:    entities.AuthorRef{ID: post.Author.ID, Name: post.Author.Name},
			CreatedAt: post.CreatedAt,
		})
	}
	return category
}
