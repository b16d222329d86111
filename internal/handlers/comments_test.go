package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/middlewares"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListCommentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipeID := uuid.New()
	svc := NewMockCommentLister(ctrl)
	svc.EXPECT().List(gomock.Any(), recipeID).Return([]models.CommentDB{
		{ID: uuid.New(), RecipeID: recipeID, Content: "¡Riquísimo!", AuthorName: "Ana", CreatedAt: time.Now()},
	}, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/", nil), "id", recipeID.String())
	rr := httptest.NewRecorder()
	NewListCommentsHandler(svc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []models.CommentDB
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Ana", resp[0].AuthorName)
}

func TestCreateCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipeID, userID, otherID := uuid.New(), uuid.New(), uuid.New()
	created := &models.CommentDB{ID: uuid.New(), RecipeID: recipeID, Content: "Muy bueno", CreatedAt: time.Now()}

	tests := []struct {
		name           string
		allowAnonymous bool
		user           *uuid.UUID
		body           string
		mockSetup      func(m *MockCommentCreator)
		expectedCode   int
		details        []models.FieldError
	}{
		{
			name: "with user",
			body: `{"content":"Muy bueno","userId":"` + userID.String() + `"}`,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().Create(gomock.Any(), models.NewComment{RecipeID: recipeID, UserID: &userID, Content: "Muy bueno"}).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "text alias",
			body: `{"text":"Muy bueno","userId":"` + userID.String() + `"}`,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().Create(gomock.Any(), models.NewComment{RecipeID: recipeID, UserID: &userID, Content: "Muy bueno"}).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "empty text",
			body:         `{"content":"","userId":"` + userID.String() + `"}`,
			mockSetup:    func(m *MockCommentCreator) {},
			expectedCode: http.StatusBadRequest,
			details:      []models.FieldError{{Field: "content", Message: "is required"}},
		},
		{
			name:         "user required",
			body:         `{"content":"Muy bueno"}`,
			mockSetup:    func(m *MockCommentCreator) {},
			expectedCode: http.StatusBadRequest,
			details:      []models.FieldError{{Field: "userId", Message: "is required"}},
		},
		{
			name:           "anonymous allowed",
			allowAnonymous: true,
			body:           `{"content":"Muy bueno","authorName":"Pepe"}`,
			mockSetup: func(m *MockCommentCreator) {
				name := "Pepe"
				m.EXPECT().Create(gomock.Any(), models.NewComment{RecipeID: recipeID, AuthorName: &name, Content: "Muy bueno"}).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "author taken from token",
			user: &userID,
			body: `{"content":"Muy bueno"}`,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().Create(gomock.Any(), models.NewComment{RecipeID: recipeID, UserID: &userID, Content: "Muy bueno"}).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "cannot comment as another user",
			user:         &otherID,
			body:         `{"content":"Muy bueno","userId":"` + userID.String() + `"}`,
			mockSetup:    func(m *MockCommentCreator) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "unknown user",
			body: `{"content":"Muy bueno","userId":"` + userID.String() + `"}`,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockCommentCreator(ctrl)
			tt.mockSetup(svc)

			req := withParams(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), "id", recipeID.String())
			if tt.user != nil {
				req = req.WithContext(middlewares.ContextWithUserID(req.Context(), *tt.user))
			}
			rr := httptest.NewRecorder()
			NewCreateCommentHandler(svc, tt.allowAnonymous)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.details != nil {
				var resp models.ErrorResponse
				decodeBody(t, rr, &resp)
				assert.Equal(t, tt.details, resp.Details)
			}
		})
	}
}
