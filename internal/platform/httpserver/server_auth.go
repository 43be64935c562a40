package httpserver

import (
	"errors"
	"net/http"

	autherrors "quill/contexts/identity-access/auth-service/domain/errors"
	authhttp "quill/contexts/identity-access/auth-service/transport/http"
	"quill/internal/shared/response"
)

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req authhttp.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeCommonError(w, err)
		return
	}

	resp, err := s.modules.Auth.Handler.SignUpHandler(r.Context(), req)
	s.metrics.ObserveAuth("signup", authOutcome(err))
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "", resp)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req authhttp.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeCommonError(w, err)
		return
	}

	resp, err := s.modules.Auth.Handler.SignInHandler(r.Context(), req)
	s.metrics.ObserveAuth("signin", authOutcome(err))
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "", resp)
}

func authOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, autherrors.ErrEmailTaken), errors.Is(err, autherrors.ErrEmailAlreadyUsed):
		return "conflict"
	case errors.Is(err, autherrors.ErrUserNotFound), errors.Is(err, autherrors.ErrIncorrectCredentials):
		return "forbidden"
	default:
		return "error"
	}
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrEmailTaken):
		response.Error(w, http.StatusConflict, autherrors.ErrEmailTaken.Error())
	case errors.Is(err, autherrors.ErrEmailAlreadyUsed):
		response.Error(w, http.StatusConflict, autherrors.ErrEmailAlreadyUsed.Error())
	case errors.Is(err, autherrors.ErrUserNotFound):
		response.Error(w, http.StatusForbidden, autherrors.ErrUserNotFound.Error())
	case errors.Is(err, autherrors.ErrIncorrectCredentials):
		response.Error(w, http.StatusForbidden, autherrors.ErrIncorrectCredentials.Error())
	case errors.Is(err, autherrors.ErrInvalidRequest):
		response.Error(w, http.StatusBadRequest, "Invalid request")
	default:
		writeCommonError(w, err)
	}
}
