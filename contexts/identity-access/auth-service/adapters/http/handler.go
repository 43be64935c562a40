package httpadapter

import (
	"context"
	"log/slog"

	application "quill/contexts/identity-access/auth-service/application"
	"quill/contexts/identity-access/auth-service/application/commands"
	httptransport "quill/contexts/identity-access/auth-service/transport/http"
	"quill/internal/shared/validation"
)

type Handler struct {
	SignUp commands.SignUpUseCase
	SignIn commands.SignInUseCase
	Logger *slog.Logger
}

// SignUpHandler godoc
// @Summary Sign up
// @Description Registers a new user and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.SignUpRequest true "Signup payload"
// @Success 201 {object} response.Envelope{data=httptransport.TokenResponse}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /auth/signup [post]
func (h Handler) SignUpHandler(ctx context.Context, req httptransport.SignUpRequest) (httptransport.TokenResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	if err := validation.Struct(req, httptransport.SignUpMessages); err != nil {
		return httptransport.TokenResponse{}, err
	}

	result, err := h.SignUp.Execute(ctx, commands.SignUpCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		logger.Error("sign up request failed",
			"event", "http_auth_sign_up_failed",
			"module", "identity-access/auth-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Token: result.Token}, nil
}

// SignInHandler godoc
// @Summary Sign in
// @Description Verifies credentials and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.SignInRequest true "Signin payload"
// @Success 200 {object} response.Envelope{data=httptransport.TokenResponse}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Failure 429 {object} response.ErrorEnvelope
// @Router /auth/signin [post]
func (h Handler) SignInHandler(ctx context.Context, req httptransport.SignInRequest) (httptransport.TokenResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	if err := validation.Struct(req, httptransport.SignInMessages); err != nil {
		return httptransport.TokenResponse{}, err
	}

	result, err := h.SignIn.Execute(ctx, commands.SignInCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn("sign in request failed",
			"event", "http_auth_sign_in_failed",
			"module", "identity-access/auth-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{Token: result.Token}, nil
}
