package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/storage"
)

type RatingRepository struct {
	g *storage.Gateway
}

func NewRatingRepository(g *storage.Gateway) *RatingRepository {
	return &RatingRepository{g: g}
}

// Summary averages a recipe's ratings to two decimals; no ratings gives 0/0.
func (r *RatingRepository) Summary(ctx context.Context, recipeID uuid.UUID) (*models.RatingSummary, error) {
	const query = `
		SELECT $1::uuid AS recipe_id,
		       COALESCE(ROUND(AVG(rating)::numeric, 2), 0)::float8 AS average,
		       COUNT(*)::int AS count
		FROM ratings
		WHERE recipe_id = $1`

	var summary models.RatingSummary
	if err := r.g.Get(ctx, &summary, query, recipeID); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetUserRating returns nil when the user has not rated the recipe.
func (r *RatingRepository) GetUserRating(ctx context.Context, userID, recipeID uuid.UUID) (*int, error) {
	const query = `SELECT rating FROM ratings WHERE user_id = $1 AND recipe_id = $2`

	var rating int
	if err := r.g.Get(ctx, &rating, query, userID, recipeID); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &rating, nil
}

// Upsert writes the single rating of the pair, replacing any earlier value.
func (r *RatingRepository) Upsert(ctx context.Context, userID, recipeID uuid.UUID, rating int) (*models.RatingDB, error) {
	const query = `
		INSERT INTO ratings (user_id, recipe_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, recipe_id) DO UPDATE
		SET rating = EXCLUDED.rating,
		    updated_at = NOW()
		RETURNING user_id, recipe_id, rating, created_at, updated_at`

	var out models.RatingDB
	if err := r.g.Get(ctx, &out, query, userID, recipeID, rating); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the pair if present.
func (r *RatingRepository) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	_, err := r.g.Exec(ctx, `DELETE FROM ratings WHERE user_id = $1 AND recipe_id = $2`, userID, recipeID)
	return err
}
