package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "quill/contexts/identity-access/user-service/application"
	"quill/contexts/identity-access/user-service/application/commands"
	"quill/contexts/identity-access/user-service/application/queries"
	"quill/contexts/identity-access/user-service/domain/entities"
	httptransport "quill/contexts/identity-access/user-service/transport/http"
	"quill/internal/shared/validation"
)

const deletedMessage = "User deleted successfully"

type Handler struct {
	GetUser    queries.GetUserWithPostsUseCase
	UpdateUser commands.UpdateUserUseCase
	DeleteUser commands.DeleteUserUseCase
	Logger     *slog.Logger
}

// ProfileHandler godoc
// @Summary Current user profile
// @Description Returns the authenticated user with authored posts.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=httptransport.UserWithPostsDTO}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /users/profile [get]
func (h Handler) ProfileHandler(ctx context.Context, userID uint) (httptransport.UserWithPostsDTO, error) {
	return h.userWithPosts(ctx, userID)
}

// PostsHandler godoc
// @Summary Current user posts
// @Description Returns the authenticated user together with every post they authored.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=httptransport.UserWithPostsDTO}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /users/posts [get]
func (h Handler) PostsHandler(ctx context.Context, userID uint) (httptransport.UserWithPostsDTO, error) {
	return h.userWithPosts(ctx, userID)
}

// UpdateHandler godoc
// @Summary Edit current user
// @Description Partially updates email, password or name of the authenticated user.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=httptransport.UserWithPostsDTO}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /users/edit [put]
func (h Handler) UpdateHandler(ctx context.Context, userID uint, req httptransport.UpdateUserRequest) (httptransport.UserWithPostsDTO, error) {
	if err := validation.Struct(req, httptransport.UpdateUserMessages); err != nil {
		return httptransport.UserWithPostsDTO{}, err
	}

	result, err := h.UpdateUser.Execute(ctx, commands.UpdateUserCommand{
		UserID:   userID,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.logFailure("update", err)
		return httptransport.UserWithPostsDTO{}, err
	}
	return mapUserWithPosts(result.User), nil
}

// DeleteHandler godoc
// @Summary Delete current user
// @Description Deletes the authenticated user. Users that still own posts cannot be deleted.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=httptransport.DeleteUserResponse}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /users/delete [delete]
func (h Handler) DeleteHandler(ctx context.Context, userID uint) (httptransport.DeleteUserResponse, error) {
	if err := h.DeleteUser.Execute(ctx, commands.DeleteUserCommand{UserID: userID}); err != nil {
		h.logFailure("delete", err)
		return httptransport.DeleteUserResponse{}, err
	}
	return httptransport.DeleteUserResponse{Status: true, Message: deletedMessage}, nil
}

func (h Handler) userWithPosts(ctx context.Context, userID uint) (httptransport.UserWithPostsDTO, error) {
	result, err := h.GetUser.Execute(ctx, queries.GetUserWithPostsQuery{UserID: userID})
	if err != nil {
		h.logFailure("get", err)
		return httptransport.UserWithPostsDTO{}, err
	}
	return mapUserWithPosts(result.User), nil
}

func mapUserWithPosts(user entities.User) httptransport.UserWithPostsDTO {
	posts := make([]httptransport.AuthoredPostDTO, 0, len(user.Posts))
	for _, post := range user.Posts {
		posts = append(posts, httptransport.AuthoredPostDTO{
			ID:        post.ID,
			Title:     post.Title,
			Content:   post.Content,
			Category:  httptransport.CategoryRefDTO{ID: post.Category.ID, Name: post.Category.Name},
			CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.UserWithPostsDTO{UserDTO: mapUser(user), Posts: posts}
}

func (h Handler) logFailure(operation string, err error) {
	application.ResolveLogger(h.Logger).Error("user request failed",
		"event", "http_user_"+operation+"_failed",
		"module", "identity-access/user-service",
		"layer", "transport",
		"error", err.Error(),
	)
}

func mapUser(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
