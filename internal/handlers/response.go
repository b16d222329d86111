package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/sbilibin2017/gw-recipes/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeValidationError(w http.ResponseWriter, verr *validation.Error) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation failed",
		Details: verr.Fields,
	})
}

// writeServiceError maps service errors to status codes. Anything
// unclassified is a 500 carrying the underlying message.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNothingToUpdate),
		errors.Is(err, services.ErrImageTooLarge),
		errors.Is(err, services.ErrUnsupportedMediaType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON reads a JSON body, turning type mismatches into field reports.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if verr := validation.FromDecodeError(err); verr != nil {
			writeValidationError(w, verr)
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// validate runs the schema and answers 400 on failure.
func validate(w http.ResponseWriter, v any) bool {
	if err := validation.Struct(v); err != nil {
		writeServiceError(w, err)
		return false
	}
	return true
}

// pathUUID reads a UUID route parameter and answers 400 when malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := validation.UUID(name, chi.URLParam(r, name))
	if err != nil {
		writeServiceError(w, err)
		return uuid.Nil, false
	}
	return id, true
}
