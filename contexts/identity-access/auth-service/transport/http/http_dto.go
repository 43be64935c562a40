package httptransport

import "quill/internal/shared/validation"

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@email.com"`
	Password string `json:"password" validate:"required,min=6" example:"user123"`
	Name     string `json:"name" validate:"required" example:"Budi"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@email.com"`
	Password string `json:"password" validate:"required,min=6" example:"user123"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

var SignUpMessages = validation.Messages{
	"Email.required":    "Email is required",
	"Email.email":       "Email format is invalid",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 6 characters",
	"Name.required":     "Name is required",
}

var SignInMessages = validation.Messages{
	"Email.required":    "Email is required",
	"Email.email":       "Email format is invalid",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 6 characters",
}
