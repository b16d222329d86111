package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	svc := NewMockCollectionLister(ctrl)
	svc.EXPECT().List(gomock.Any(), userID).Return([]models.RecipeDB{{ID: uuid.New(), Title: "Flan"}}, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/", nil), "userId", userID.String())
	rr := httptest.NewRecorder()
	NewListCollectionHandler(svc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []models.RecipeDB
	decodeBody(t, rr, &resp)
	assert.Len(t, resp, 1)
}

func TestAddToCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, recipeID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCollectionAdder)
		expectedCode int
	}{
		{
			name: "added",
			body: `{"recipeId":"` + recipeID.String() + `"}`,
			mockSetup: func(m *MockCollectionAdder) {
				m.EXPECT().Add(gomock.Any(), userID, recipeID).
					Return(&models.CollectionEntry{UserID: userID, RecipeID: recipeID, CreatedAt: time.Now()}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing recipeId",
			body:         `{}`,
			mockSetup:    func(m *MockCollectionAdder) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed recipeId",
			body:         `{"recipeId":"abc"}`,
			mockSetup:    func(m *MockCollectionAdder) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown recipe",
			body: `{"recipeId":"` + recipeID.String() + `"}`,
			mockSetup: func(m *MockCollectionAdder) {
				m.EXPECT().Add(gomock.Any(), userID, recipeID).Return(nil, services.ErrRecipeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockCollectionAdder(ctrl)
			tt.mockSetup(svc)

			req := withParams(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), "userId", userID.String())
			rr := httptest.NewRecorder()
			NewAddToCollectionHandler(svc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRemoveFromCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, recipeID := uuid.New(), uuid.New()
	svc := NewMockCollectionRemover(ctrl)
	svc.EXPECT().Remove(gomock.Any(), userID, recipeID).Return(nil)

	req := withParams(httptest.NewRequest(http.MethodDelete, "/", nil), "userId", userID.String(), "recipeId", recipeID.String())
	rr := httptest.NewRecorder()
	NewRemoveFromCollectionHandler(svc)(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRemoveFromCollectionHandler_BadRecipeID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCollectionRemover(ctrl)

	req := withParams(httptest.NewRequest(http.MethodDelete, "/", nil), "userId", uuid.NewString(), "recipeId", "x")
	rr := httptest.NewRecorder()
	NewRemoveFromCollectionHandler(svc)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
