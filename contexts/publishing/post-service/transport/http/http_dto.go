package httptransport

import "quill/internal/shared/validation"

type CreatePostRequest struct {
	Title      string `json:"title" validate:"required,max=100" example:"Indonesia Lack of Education"`
	AuthorID   int    `json:"authorId" validate:"required,gt=0" example:"1"`
	CategoryID int    `json:"categoryId" validate:"required,gt=0" example:"1"`
	Content    string `json:"content" validate:"required" example:"The current condition of Education in Indonesia is pretty bad"`
}

type UpdatePostRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	AuthorID   *int    `json:"authorId,omitempty" validate:"omitempty,gt=0"`
	CategoryID *int    `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	Content    *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

var CreatePostMessages = validation.Messages{
	"Title.required":      "Title is required",
	"Title.max":           "Title has maximum 100 characters",
	"AuthorID.required":   "User ID must be a valid integer",
	"AuthorID.gt":         "User ID must be a valid integer",
	"CategoryID.required": "Category ID must be a valid integer",
	"CategoryID.gt":       "Category ID must be a valid integer",
	"Content.required":    "Please fill the Post description",
}

var UpdatePostMessages = validation.Messages{
	"Title.min":     "Title is required",
	"Title.max":     "Title has maximum 100 characters",
	"AuthorID.gt":   "User ID must be a valid integer",
	"CategoryID.gt": "Category ID must be a valid integer",
	"Content.min":   "Please fill the Post description",
}

type RefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PostDTO struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   uint   `json:"authorId"`
	CategoryID uint   `json:"categoryId"`
	Author     RefDTO `json:"author"`
	Category   RefDTO `json:"category"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}
