package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBody unmarshals a recorded JSON response.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := models.RegisterRequest{Name: "Lucía", Email: "lucia@example.com", Password: "secret123"}
	user := &models.UserDB{ID: uuid.New(), Name: "Lucía", Email: "lucia@example.com"}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
		detailField   string
	}{
		{
			name: "success",
			body: mustJSON(t, valid),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), valid).
					Return(&models.AuthResponse{User: user, Token: "JWT_TOKEN"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: mustJSON(t, valid),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), valid).Return(nil, services.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already registered",
		},
		{
			name: "internal server error",
			body: mustJSON(t, valid),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), valid).Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "database failure",
		},
		{
			name:          "invalid json",
			body:          "{invalid json}",
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid JSON body",
		},
		{
			name:          "short password",
			body:          `{"name":"Lucía","email":"lucia@example.com","password":"12345"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation failed",
			detailField:   "password",
		},
		{
			name:          "bad email",
			body:          `{"name":"Lucía","email":"lucia","password":"secret123"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation failed",
			detailField:   "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError == "" {
				var resp models.AuthResponse
				decodeBody(t, rr, &resp)
				assert.Equal(t, "JWT_TOKEN", resp.Token)
				assert.Equal(t, user.ID, resp.User.ID)
				assert.NotContains(t, rr.Body.String(), "password")
				return
			}

			var resp models.ErrorResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, tt.expectedError, resp.Error)
			if tt.detailField != "" {
				require.Len(t, resp.Details, 1)
				assert.Equal(t, tt.detailField, resp.Details[0].Field)
			}
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
