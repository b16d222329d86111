package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/sbilibin2017/gw-recipes/internal/validation"
	"github.com/stretchr/testify/assert"
)

// withParams attaches chi URL parameters given as name/value pairs.
func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "recipe not found", err: services.ErrRecipeNotFound, code: http.StatusNotFound, message: "recipe not found"},
		{name: "user not found", err: services.ErrUserNotFound, code: http.StatusNotFound, message: "user not found"},
		{name: "email taken", err: services.ErrEmailTaken, code: http.StatusConflict, message: "email already registered"},
		{name: "bad credentials", err: services.ErrInvalidCredentials, code: http.StatusUnauthorized, message: "invalid email or password"},
		{name: "nothing to update", err: services.ErrNothingToUpdate, code: http.StatusBadRequest, message: "nothing to update"},
		{name: "too large", err: services.ErrImageTooLarge, code: http.StatusBadRequest, message: "image exceeds 5 MiB"},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", services.ErrRecipeNotFound), code: http.StatusNotFound, message: "lookup: recipe not found"},
		{name: "driver error passes through", err: errors.New("connection refused"), code: http.StatusInternalServerError, message: "connection refused"},
		{
			name:    "upload failure",
			err:     fmt.Errorf("%w: %v", services.ErrUploadFailed, "invalid api key"),
			code:    http.StatusInternalServerError,
			message: "image upload failed: invalid api key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, tt.err)

			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var resp models.ErrorResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, tt.message, resp.Error)
			assert.Empty(t, resp.Details)
		})
	}
}

func TestWriteServiceError_Validation(t *testing.T) {
	rr := httptest.NewRecorder()
	writeServiceError(rr, &validation.Error{Fields: []models.FieldError{{Field: "title", Message: "is required"}}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp models.ErrorResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, []models.FieldError{{Field: "title", Message: "is required"}}, resp.Details)
}

func TestPathUUID(t *testing.T) {
	r := withParams(httptest.NewRequest(http.MethodGet, "/", nil), "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	_, ok := pathUUID(rr, r, "id")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp models.ErrorResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, []models.FieldError{{Field: "id", Message: "must be a valid UUID"}}, resp.Details)
}
