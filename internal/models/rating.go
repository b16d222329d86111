package models

import (
	"time"

	"github.com/google/uuid"
)

// RatingDB is one user's rating of one recipe.
type RatingDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id" db:"recipe_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RatingSummary aggregates every rating of a recipe.
type RatingSummary struct {
	RecipeID uuid.UUID `json:"recipe_id" db:"recipe_id"`
	Average  float64   `json:"average" db:"average"`
	Count    int       `json:"count" db:"count"`
}

// UserRatingResponse carries a user's rating, null when the user has not rated.
type UserRatingResponse struct {
	Rating *int `json:"rating"`
}

// RateRecipeRequest represents the JSON body for rating a recipe
// swagger:model RateRecipeRequest
type RateRecipeRequest struct {
	// required: true
	// minimum: 1
	// maximum: 5
	Rating *FlexInt `json:"rating" validate:"required,gte=1,lte=5"`
}
