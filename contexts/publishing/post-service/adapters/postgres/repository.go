package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"quill/contexts/publishing/post-service/domain/entities"
	domainerrors "quill/contexts/publishing/post-service/domain/errors"
	"quill/contexts/publishing/post-service/ports"
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

func (r *Repository) ListPosts(ctx context.Context) ([]entities.Post, error) {
	var rows []postModel
	if err := withRefs(r.db.WithContext(ctx)).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&rows).
		Error; err != nil {
		return nil, db.Unclassified("post.list", err)
	}
	items := make([]entities.Post, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetPost(ctx context.Context, postID uint) (entities.Post, error) {
	return r.getPost(r.db.WithContext(ctx), postID)
}

func (r *Repository) CreatePost(ctx context.Context, post ports.NewPost) (entities.Post, error) {
	row := postModel{
		Title:      post.Title,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return entities.Post{}, r.translateWriteError(ctx, "post.create", err, &post.AuthorID, &post.CategoryID)
	}
	return r.GetPost(ctx, row.ID)
}

func (r *Repository) UpdatePost(ctx context.Context, postID uint, changes ports.PostChanges) (entities.Post, error) {
	if changes.Empty() {
		return r.GetPost(ctx, postID)
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Content != nil {
		updates["content"] = *changes.Content
	}
	if changes.AuthorID != nil {
		updates["author_id"] = *changes.AuthorID
	}
	if changes.CategoryID != nil {
		updates["category_id"] = *changes.CategoryID
	}

	result := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("id = ?", postID).
		Updates(updates)
	if result.Error != nil {
		return entities.Post{}, r.translateWriteError(ctx, "post.update", result.Error, changes.AuthorID, changes.CategoryID)
	}
	if result.RowsAffected == 0 {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return r.GetPost(ctx, postID)
}

func (r *Repository) DeletePost(ctx context.Context, postID uint) (entities.Post, error) {
	var deleted entities.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := r.getPost(tx, postID)
		if err != nil {
			return err
		}
		result := tx.Where("id = ?", postID).Delete(&postModel{})
		if result.Error != nil {
			return db.Unclassified("post.delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrPostNotFound
		}
		deleted = post
		return nil
	})
	if err != nil {
		return entities.Post{}, err
	}
	return deleted, nil
}

func (r *Repository) getPost(tx *gorm.DB, postID uint) (entities.Post, error) {
	var row postModel
	err := withRefs(tx).
		Where("id = ?", postID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Post{}, domainerrors.ErrPostNotFound
		}
		return entities.Post{}, db.Unclassified("post.get", err)
	}
	return row.toEntity(), nil
}

// translateWriteError maps foreign key failures to the reference that caused
// them. Postgres names the constraint; sqlite does not, so the referenced rows
// are checked directly.
func (r *Repository) translateWriteError(ctx context.Context, op string, err error, authorID *uint, categoryID *uint) error {
	violation, ok := db.Classify(err)
	if !ok || violation.Kind != db.ViolationForeignKey {
		return db.Unclassified(op, err)
	}

	r.logger.Warn("post write hit foreign key constraint",
		"event", "post_relation_violation",
		"module", "publishing/post-service",
		"layer", "adapter",
		"operation", op,
		"constraint", violation.Constraint,
	)

	switch {
	case violation.Mentions("author"):
		return domainerrors.ErrAuthorNotFound
	case violation.Mentions("category"):
		return domainerrors.ErrCategoryNotFound
	}

	if authorID != nil && !r.exists(ctx, "users", *authorID) {
		return domainerrors.ErrAuthorNotFound
	}
	if categoryID != nil && !r.exists(ctx, "categories", *categoryID) {
		return domainerrors.ErrCategoryNotFound
	}
	return domainerrors.ErrInvalidRelation
}

func (r *Repository) exists(ctx context.Context, table string, id uint) bool {
	var count int64
	if err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return true
	}
	return count > 0
}

func withRefs(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author", func(q *gorm.DB) *gorm.DB { return q.Select("id", "name") }).
		Preload("Category", func(q *gorm.DB) *gorm.DB { return q.Select("id", "name") })
}

type postModel struct {
	ID         uint             `gorm:"column:id;primaryKey"`
	Title      string           `gorm:"column:title"`
	Content    string           `gorm:"column:content"`
	AuthorID   uint             `gorm:"column:author_id"`
	Author     authorRefModel   `gorm:"foreignKey:AuthorID;references:ID"`
	CategoryID uint             `gorm:"column:category_id"`
	Category   categoryRefModel `gorm:"foreignKey:CategoryID;references:ID"`
	CreatedAt  time.Time        `gorm:"column:created_at"`
	UpdatedAt  time.Time        `gorm:"column:updated_at"`
}

func (postModel) TableName() string {
	return "posts"
}

type authorRefModel struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (authorRefModel) TableName() string {
	return "users"
}

type categoryRefModel struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (categoryRefModel) TableName() string {
	return "categories"
}

func (m postModel) toEntity() entities.Post {
	return entities.Post{
		ID:         m.ID,
		Title:      m.Title,
		Content:    m.Content,
		AuthorID:   m.AuthorID,
		CategoryID: m.CategoryID,
		Author:     entities.Ref{ID: m.Author.ID, Name: m.Author.Name},
		Category:   entities.Ref{ID: m.Category.ID, Name: m.Category.Name},
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
