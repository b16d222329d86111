package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name          string
		body          string
		mockSetup     func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"pass123"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass123").
					Return(&models.AuthResponse{User: &models.UserDB{Email: "john@example.com"}, Token: "JWT_TOKEN"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "invalid JSON",
			body:          "{invalid json}",
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid JSON body",
		},
		{
			name:          "missing password",
			body:          `{"email":"john@example.com"}`,
			mockSetup:     func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation failed",
		},
		{
			name: "invalid credentials",
			body: `{"email":"john@example.com","password":"wrong"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid email or password",
		},
		{
			name: "internal server error",
			body: `{"email":"john@example.com","password":"pass123"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass123").
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			handler := NewLoginHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError == "" {
				var resp models.AuthResponse
				decodeBody(t, rr, &resp)
				assert.Equal(t, "JWT_TOKEN", resp.Token)
				return
			}
			var resp models.ErrorResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}
