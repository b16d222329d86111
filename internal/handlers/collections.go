package handlers

//go:generate mockgen -source=collections.go -destination=collections_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/validation"
)

// The same handlers serve favorites and my-recipes; the router binds each to its own service.

const recipeIDPathParam = "recipeId"

type CollectionLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error)
}

type CollectionAdder interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (*models.CollectionEntry, error)
}

type CollectionRemover interface {
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
}

// NewListCollectionHandler lists the recipes in a user's collection, newest entry first.
// @Summary List favorites
// @Tags collections
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.RecipeDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{userId}/favorites [get]
// @Router /users/{userId}/my-recipes [get]
func NewListCollectionHandler(svc CollectionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathUUID(w, r, userIDParam)
		if !ok {
			return
		}

		recipes, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewAddToCollectionHandler adds a recipe to a user's collection. Adding twice is a no-op.
// @Summary Add favorite
// @Tags collections
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body models.AddToCollectionRequest true "Recipe to add"
// @Success 201 {object} models.CollectionEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Unknown user or recipe"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/favorites [post]
// @Router /users/{userId}/my-recipes [post]
func NewAddToCollectionHandler(svc CollectionAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathUUID(w, r, userIDParam)
		if !ok {
			return
		}

		var req models.AddToCollectionRequest
		if !decodeJSON(w, r, &req) || !validate(w, &req) {
			return
		}
		recipeID, err := validation.UUID("recipeId", req.RecipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		entry, err := svc.Add(r.Context(), userID, recipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

// NewRemoveFromCollectionHandler removes a recipe from a user's collection.
// @Summary Remove favorite
// @Tags collections
// @Param userId path string true "User ID"
// @Param recipeId path string true "Recipe ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/favorites/{recipeId} [delete]
// @Router /users/{userId}/my-recipes/{recipeId} [delete]
func NewRemoveFromCollectionHandler(svc CollectionRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathUUID(w, r, userIDParam)
		if !ok {
			return
		}
		recipeID, ok := pathUUID(w, r, recipeIDPathParam)
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), userID, recipeID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
