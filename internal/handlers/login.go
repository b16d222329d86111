package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipes/internal/models"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login user
// @Description Checks the credentials and returns the user with a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "User login request"
// @Success 200 {object} models.AuthResponse "Successful login"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeJSON(w, r, &req) || !validate(w, &req) {
			return
		}

		resp, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
