package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"quill/internal/platform/db"
	"quill/internal/shared/response"
	"quill/internal/shared/validation"
)

const maxBodyBytes = 1 << 20

var (
	errInvalidJSON = errors.New("request body must be valid JSON")
	errInvalidID   = errors.New("Validation failed (numeric string is expected)")
)

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidJSON
	}
	return nil
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// requireIdentity returns the authenticated user id, writing a 401 when the
// guard did not run.
func requireIdentity(w http.ResponseWriter, r *http.Request) (uint, bool) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok || identity.UserID == 0 {
		response.Error(w, http.StatusUnauthorized, "Authorization bearer token is required")
		return 0, false
	}
	return identity.UserID, true
}

// writeCommonError handles failures shared by all contexts.
func writeCommonError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	var storeErr *db.StoreError
	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, errInvalidJSON), errors.Is(err, errInvalidID):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &storeErr):
		message := "Internal server error"
		if storeErr.Code != "" {
			message = fmt.Sprintf("%s (code %s)", message, storeErr.Code)
		}
		response.Error(w, http.StatusInternalServerError, message)
	default:
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
