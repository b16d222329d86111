package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		categories   []models.Category
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "listed",
			categories:   []models.Category{{ID: 2, Name: "Postres"}, {ID: 1, Name: "Sopas"}},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":2,"name":"Postres"},{"id":1,"name":"Sopas"}]`,
		},
		{
			name:         "storage failure",
			err:          errors.New("relation \"categories\" does not exist"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"relation \"categories\" does not exist"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockCategoryLister(ctrl)
			svc.EXPECT().List(gomock.Any()).Return(tt.categories, tt.err)

			rr := httptest.NewRecorder()
			NewListCategoriesHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
