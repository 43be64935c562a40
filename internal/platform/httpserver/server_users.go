package httpserver

import (
	"errors"
	"net/http"

	usererrors "quill/contexts/identity-access/user-service/domain/errors"
	userhttp "quill/contexts/identity-access/user-service/transport/http"
	"quill/internal/shared/response"
)

func (s *Server) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Users.Handler.ProfileHandler(r.Context(), userID)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Current User data fetched successfully", resp)
}

func (s *Server) handleUserEdit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	var req userhttp.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Users.Handler.UpdateHandler(r.Context(), userID, req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "User updated successfully", resp)
}

func (s *Server) handleUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Users.Handler.PostsHandler(r.Context(), userID)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "User with Post data fetched successfully", resp)
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Users.Handler.DeleteHandler(r.Context(), userID)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, resp.Message, resp)
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usererrors.ErrUserNotFound), errors.Is(err, usererrors.ErrInvalidUserID):
		response.Error(w, http.StatusNotFound, usererrors.ErrUserNotFound.Error())
	case errors.Is(err, usererrors.ErrEmailAlreadyUsed):
		response.Error(w, http.StatusConflict, usererrors.ErrEmailAlreadyUsed.Error())
	case errors.Is(err, usererrors.ErrInvalidRelation):
		response.Error(w, http.StatusBadRequest, usererrors.ErrInvalidRelation.Error())
	default:
		writeCommonError(w, err)
	}
}
