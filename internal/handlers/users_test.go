package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	hash := "$2a$10$secret"

	svc := NewMockUserGetter(ctrl)
	svc.EXPECT().Get(gomock.Any(), id).Return(&models.UserDB{ID: id, Name: "Ana", Email: "ana@example.com", PasswordHash: &hash}, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/users/"+id.String(), nil), "userId", id.String())
	rr := httptest.NewRecorder()
	NewGetUserHandler(svc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), hash)

	var resp map[string]any
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Ana", resp["name"])
	assert.NotContains(t, resp, "password_hash")
}

func TestGetUserHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	svc := NewMockUserGetter(ctrl)
	svc.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrUserNotFound)

	req := withParams(httptest.NewRequest(http.MethodGet, "/", nil), "userId", id.String())
	rr := httptest.NewRecorder()
	NewGetUserHandler(svc)(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rr.Body.String())
}

func TestRenameUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserRenamer)
		expectedCode int
	}{
		{
			name: "renamed",
			body: `{"name":"Ana María"}`,
			mockSetup: func(m *MockUserRenamer) {
				m.EXPECT().Rename(gomock.Any(), id, models.UpdateUserRequest{Name: "Ana María"}).
					Return(&models.UserDB{ID: id, Name: "Ana María"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "empty name",
			body:         `{"name":""}`,
			mockSetup:    func(m *MockUserRenamer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad avatar url",
			body:         `{"name":"Ana","avatarUrl":"not a url"}`,
			mockSetup:    func(m *MockUserRenamer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"name":"Ana"}`,
			mockSetup: func(m *MockUserRenamer) {
				m.EXPECT().Rename(gomock.Any(), id, gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockUserRenamer(ctrl)
			tt.mockSetup(svc)

			req := withParams(httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(tt.body)), "userId", id.String())
			rr := httptest.NewRecorder()
			NewRenameUserHandler(svc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	valid := models.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockPasswordChanger)
		expectedCode int
		expectedBody string
	}{
		{
			name: "changed",
			body: `{"currentPassword":"old-secret","newPassword":"new-secret"}`,
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().ChangePassword(gomock.Any(), id, valid).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Password updated successfully"}`,
		},
		{
			name: "wrong current password",
			body: `{"currentPassword":"guess","newPassword":"new-secret"}`,
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().ChangePassword(gomock.Any(), id, gomock.Any()).Return(services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "new password too short",
			body:         `{"currentPassword":"old-secret","newPassword":"123"}`,
			mockSetup:    func(m *MockPasswordChanger) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"validation failed","details":[{"field":"newPassword","message":"must be at least 6 characters long"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockPasswordChanger(ctrl)
			tt.mockSetup(svc)

			req := withParams(httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(tt.body)), "userId", id.String())
			rr := httptest.NewRecorder()
			NewChangePasswordHandler(svc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
