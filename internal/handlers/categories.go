package handlers

//go:generate mockgen -source=categories.go -destination=categories_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipes/internal/models"
)

type CategoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

// NewListCategoriesHandler lists categories alphabetically.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} models.ErrorResponse
// @Router /categories [get]
func NewListCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}
