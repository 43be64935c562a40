package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Schema models owned by the platform. Context adapters keep their own
// read/write models over the same tables.

type userTable struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:users_email_key"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (userTable) TableName() string { return "users" }

type categoryTable struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (categoryTable) TableName() string { return "categories" }

type postTable struct {
	ID         uint          `gorm:"column:id;primaryKey;autoIncrement"`
	Title      string        `gorm:"column:title;type:varchar(100);not null"`
	Content    string        `gorm:"column:content;type:text;not null"`
	AuthorID   uint          `gorm:"column:author_id;not null;index:posts_author_id_idx"`
	Author     userTable     `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CategoryID uint          `gorm:"column:category_id;not null;index:posts_category_id_idx"`
	Category   categoryTable `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time     `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time     `gorm:"column:updated_at;not null"`
}

func (postTable) TableName() string { return "posts" }

// Migrate creates or updates the users, categories and posts tables.
func (d *Database) Migrate(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return errors.New("database is not connected")
	}
	if err := d.DB.WithContext(ctx).AutoMigrate(&userTable{}, &categoryTable{}, &postTable{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
