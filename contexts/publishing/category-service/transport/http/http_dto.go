package httptransport

import "quill/internal/shared/validation"

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required" example:"Education"`
	Description string `json:"description" validate:"required" example:"Posts about schools and learning"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
}

var CreateCategoryMessages = validation.Messages{
	"Name.required":        "Name is required",
	"Description.required": "Please fill the description of this category",
}

var UpdateCategoryMessages = validation.Messages{
	"Name.min":        "Name is required",
	"Description.min": "Please fill the description of this category",
}

type AuthorRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FiledPostDTO struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Author    AuthorRefDTO `json:"author"`
	CreatedAt string       `json:"createdAt"`
}

type CategoryDTO struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
	Posts       []FiledPostDTO `json:"posts"`
}
