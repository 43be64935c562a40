package httptransport

import "quill/internal/shared/validation"

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email" example:"budi@email.com"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6" example:"budi123"`
	Name     *string `json:"name,omitempty" example:"Budi"`
}

var UpdateUserMessages = validation.Messages{
	"Email.email":  "Email format is invalid",
	"Password.min": "Password must be at least 6 characters",
}

type CategoryRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AuthoredPostDTO struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Category  CategoryRefDTO `json:"category"`
	CreatedAt string         `json:"createdAt"`
}

type UserDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type UserWithPostsDTO struct {
	UserDTO
	Posts []AuthoredPostDTO `json:"posts"`
}

type DeleteUserResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
