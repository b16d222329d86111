package repositories

import (
	"context"

	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/storage"
)

type CategoryRepository struct {
	g *storage.Gateway
}

func NewCategoryRepository(g *storage.Gateway) *CategoryRepository {
	return &CategoryRepository{g: g}
}

// List returns categories in alphabetical order.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY name`

	categories := []models.Category{}
	if err := r.g.Select(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}
