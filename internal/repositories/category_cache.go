package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

const categoriesKey = "categories:all"

// ErrCacheMiss is returned when nothing is cached under the key.
var ErrCacheMiss = errors.New("cache miss")

// CategoryCacheRepository keeps the category listing in Redis
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCategoryCacheRepository creates a cache whose entries live for expiration
func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached listing or ErrCacheMiss
func (r *CategoryCacheRepository) Get(ctx context.Context) ([]models.Category, error) {
	val, err := r.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		logger.Log.Infow("category cache get",
			"key", categoriesKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal(val, &categories); err != nil {
		logger.Log.Warnw("category cache holds an unreadable value",
			"key", categoriesKey,
			"value", string(val),
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("category cache get",
		"key", categoriesKey,
		"result", len(categories),
	)

	return categories, nil
}

// Set stores the listing with the configured expiration
func (r *CategoryCacheRepository) Set(ctx context.Context, categories []models.Category) error {
	val, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, categoriesKey, val, r.exp).Err()

	logger.Log.Infow("category cache set",
		"key", categoriesKey,
		"result", len(categories),
		"error", err,
	)

	return err
}

// Invalidate drops the cached listing so the next read goes to the database
func (r *CategoryCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, categoriesKey).Err()

	logger.Log.Infow("category cache invalidate",
		"key", categoriesKey,
		"error", err,
	)

	return err
}
