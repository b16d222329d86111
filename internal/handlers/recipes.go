package handlers

//go:generate mockgen -source=recipes.go -destination=recipes_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/middlewares"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

const recipeIDParam = "id"

type RecipeLister interface {
	List(ctx context.Context) ([]models.RecipeDB, error)
}

type UserRecipesLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error)
}

type RecipeGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.RecipeDB, error)
}

type RecipeCreator interface {
	Create(ctx context.Context, in models.NewRecipe) (*models.RecipeDB, error)
}

type RecipeUpdater interface {
	Update(ctx context.Context, id uuid.UUID, patch models.RecipePatch) (*models.RecipeDB, error)
}

type RecipeDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListRecipesHandler lists every recipe, newest first.
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} models.RecipeDB
// @Failure 500 {object} models.ErrorResponse
// @Router /recipes [get]
func NewListRecipesHandler(svc RecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewListUserRecipesHandler lists the recipes authored by a user.
// @Summary List recipes by author
// @Tags recipes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.RecipeDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{userId}/recipes [get]
func NewListUserRecipesHandler(svc UserRecipesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathUUID(w, r, userIDParam)
		if !ok {
			return
		}

		recipes, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewGetRecipeHandler returns one recipe with its category and author.
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.RecipeDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recipes/{id} [get]
func NewGetRecipeHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, recipeIDParam)
		if !ok {
			return
		}

		recipe, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewCreateRecipeHandler creates a recipe from a JSON body.
// @Summary Create recipe
// @Description Numeric fields accept numeric strings. Difficulty is one of Fácil, Media, Difícil.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body models.CreateRecipeRequest true "Recipe"
// @Success 201 {object} models.RecipeDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Unknown user"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /recipes [post]
func NewCreateRecipeHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateRecipeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		createRecipe(w, r, svc, &req)
	}
}

// createRecipe is the tail shared by the JSON and multipart create endpoints.
func createRecipe(w http.ResponseWriter, r *http.Request, svc RecipeCreator, req *models.CreateRecipeRequest) {
	if !actingUser(w, r, &req.UserID) || !validate(w, req) {
		return
	}

	recipe, err := svc.Create(r.Context(), req.ToNewRecipe())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

// NewUpdateRecipeHandler applies a partial update.
// @Summary Update recipe
// @Description Only the fields present in the body are changed; null clears a nullable field
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body models.UpdateRecipeRequest true "Fields to change"
// @Success 200 {object} models.RecipeDB
// @Failure 400 {object} models.ErrorResponse "Validation failed or nothing to update"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id} [put]
func NewUpdateRecipeHandler(svc RecipeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, recipeIDParam)
		if !ok {
			return
		}

		var req models.UpdateRecipeRequest
		if !decodeJSON(w, r, &req) || !validate(w, &req) {
			return
		}

		recipe, err := svc.Update(r.Context(), id, req.ToPatch())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewDeleteRecipeHandler deletes a recipe with its comments, ratings and collection entries.
// @Summary Delete recipe
// @Tags recipes
// @Param id path string true "Recipe ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id} [delete]
func NewDeleteRecipeHandler(svc RecipeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, recipeIDParam)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// actingUser defaults an absent body userId to the authenticated user and
// answers 403 when the body names someone else. Unauthenticated requests and
// malformed ids pass through to validation.
func actingUser(w http.ResponseWriter, r *http.Request, userID *string) bool {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		return true
	}
	if *userID == "" {
		*userID = id.String()
		return true
	}
	if claimed, err := uuid.Parse(*userID); err == nil && claimed != id {
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}
