package httpserver

import (
	"errors"
	"net/http"

	categoryerrors "quill/contexts/publishing/category-service/domain/errors"
	categoryhttp "quill/contexts/publishing/category-service/transport/http"
	"quill/internal/shared/response"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Categories.Handler.ListCategoriesHandler(r.Context())
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "", resp)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryhttp.CreateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Categories.Handler.CreateCategoryHandler(r.Context(), req)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "", resp)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r)
	if err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Categories.Handler.GetCategoryHandler(r.Context(), categoryID)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "", resp)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r)
	if err != nil {
		writeCommonError(w, err)
		return
	}
	var req categoryhttp.UpdateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Categories.Handler.UpdateCategoryHandler(r.Context(), categoryID, req)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "", resp)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r)
	if err != nil {
		writeCommonError(w, err)
		return
	}
	resp, err := s.modules.Categories.Handler.DeleteCategoryHandler(r.Context(), categoryID)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Category deleted successfully", resp)
}

func writeCategoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, categoryerrors.ErrCategoryNotFound):
		response.Error(w, http.StatusNotFound, categoryerrors.ErrCategoryNotFound.Error())
	case errors.Is(err, categoryerrors.ErrInvalidRelation):
		response.Error(w, http.StatusBadRequest, categoryerrors.ErrInvalidRelation.Error())
	default:
		writeCommonError(w, err)
	}
}
