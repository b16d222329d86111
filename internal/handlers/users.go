package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

const userIDParam = "userId"

type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

type UserRenamer interface {
	Rename(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.UserDB, error)
}

type PasswordChanger interface {
	ChangePassword(ctx context.Context, id uuid.UUID, req models.ChangePasswordRequest) error
}

// NewGetUserHandler returns a user profile.
// @Summary Get user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{userId} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, userIDParam)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewRenameUserHandler changes the display name and avatar.
// @Summary Rename user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body models.UpdateUserRequest true "New name"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId} [put]
func NewRenameUserHandler(svc UserRenamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, userIDParam)
		if !ok {
			return
		}

		var req models.UpdateUserRequest
		if !decodeJSON(w, r, &req) || !validate(w, &req) {
			return
		}

		user, err := svc.Rename(r.Context(), id, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewChangePasswordHandler replaces the password after checking the current one.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body models.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse "Current password does not match"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, userIDParam)
		if !ok {
			return
		}

		var req models.ChangePasswordRequest
		if !decodeJSON(w, r, &req) || !validate(w, &req) {
			return
		}

		if err := svc.ChangePassword(r.Context(), id, req); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Password updated successfully"})
	}
}
