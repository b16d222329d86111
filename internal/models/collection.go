package models

import (
	"time"

	"github.com/google/uuid"
)

// CollectionEntry is a (user, recipe) link in the favorites or my-recipes list.
type CollectionEntry struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id" db:"recipe_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AddToCollectionRequest represents the JSON body for adding a favorite or saved recipe
// swagger:model AddToCollectionRequest
type AddToCollectionRequest struct {
	// required: true
	RecipeID string `json:"recipeId" validate:"required,uuid"`
}
