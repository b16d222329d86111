package services

//go:generate mockgen -source=categories.go -destination=categories_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

type CategoryReader interface {
	List(ctx context.Context) ([]models.Category, error)
}

// CategoryCache caches the category listing.
type CategoryCache interface {
	Get(ctx context.Context) ([]models.Category, error)
	Set(ctx context.Context, categories []models.Category) error
}

type CategoryService struct {
	reader CategoryReader
	cache  CategoryCache
}

// NewCategoryService creates a service; cache may be nil.
func NewCategoryService(reader CategoryReader, cache CategoryCache) *CategoryService {
	return &CategoryService{reader: reader, cache: cache}
}

// List returns categories alphabetically, from the cache when it holds them.
func (svc *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	if svc.cache != nil {
		categories, err := svc.cache.Get(ctx)
		if err == nil {
			return categories, nil
		}
		logger.Log.Debugw("category cache unavailable", "error", err)
	}

	categories, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, categories); err != nil {
			logger.Log.Warnw("failed to cache categories", "error", err)
		}
	}

	return categories, nil
}
