package httpserver

import (
	"errors"
	"net/http"

	posterrors "quill/contexts/publishing/post-service/domain/errors"
	posthttp "quill/contexts/publishing/post-service/transport/http"
	"quill/internal/shared/response"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Posts.Handler.ListPostsHandler(r.Context())
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "", resp)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req posthttp.CreatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Posts.Handler.CreatePostHandler(r.Context(), req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "", resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r)
	if err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Posts.Handler.GetPostHandler(r.Context(), postID)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "", resp)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r)
	if err != nil {
		writeCommonError(w, err)
		return
	}
	var req posthttp.UpdatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Posts.Handler.UpdatePostHandler(r.Context(), postID, req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "", resp)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r)
	if err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Posts.Handler.DeletePostHandler(r.Context(), postID)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Post deleted successfully", resp)
}

func writePostDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posterrors.ErrPostNotFound):
		response.Error(w, http.StatusNotFound, posterrors.ErrPostNotFound.Error())
	case errors.Is(err, posterrors.ErrAuthorNotFound):
		response.Error(w, http.StatusBadRequest, posterrors.ErrAuthorNotFound.Error())
	case errors.Is(err, posterrors.ErrCategoryNotFound):
		response.Error(w, http.StatusBadRequest, posterrors.ErrCategoryNotFound.Error())
	case errors.Is(err, posterrors.ErrInvalidRelation):
		response.Error(w, http.StatusBadRequest, posterrors.ErrInvalidRelation.Error())
	default:
		writeCommonError(w, err)
	}
}
