package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"quill/contexts/identity-access/auth-service/domain/entities"
	domainerrors "quill/contexts/identity-access/auth-service/domain/errors"
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

func (r *Repository) FindByEmail(ctx context.Context, email string) (entities.Credential, bool, error) {
	var row credentialModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Credential{}, false, nil
		}
		return entities.Credential{}, false, db.Unclassified("auth.find_by_email", err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateCredential(ctx context.Context, credential entities.Credential) (entities.Credential, error) {
	row := credentialModel{
		Email:    credential.Email,
		Password: credential.PasswordHash,
		Name:     credential.Name,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if violation, ok := db.Classify(err); ok && violation.Kind == db.ViolationUnique {
			r.logger.Warn("credential insert hit unique constraint",
				"event", "auth_credential_unique_violation",
				"module", "identity-access/auth-service",
				"layer", "adapter",
				"constraint", violation.Constraint,
			)
			return entities.Credential{}, domainerrors.ErrEmailAlreadyUsed
		}
		return entities.Credential{}, db.Unclassified("auth.create_credential", err)
	}
	return row.toEntity(), nil
}

type credentialModel struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email"`
	Password  string    `gorm:"column:password"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (credentialModel) TableName() string {
	return "users"
}

func (m credentialModel) toEntity() entities.Credential {
	return entities.Credential{
		UserID:       m.ID,
		Email:        m.Email,
		PasswordHash: m.Password,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
