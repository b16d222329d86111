package middlewares

//go:generate mockgen -source=ownership.go -destination=ownership_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

// RecipeGetter looks up the author of a recipe
type RecipeGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.RecipeDB, error)
}

// SelfOnly rejects authenticated requests whose {param} path segment names
// another user. Requests without an authenticated user pass untouched, as do
// malformed ids, which the handler reports.
func SelfOnly(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			target, err := uuid.Parse(chi.URLParam(r, param))
			if err == nil && target != userID {
				logger.Log.Warnw("access to another user denied", "user_id", userID, "target", target)
				forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RecipeOwnerOnly rejects authenticated requests on a recipe written by
// someone else. Lookup failures are left to the handler.
func RecipeOwnerOnly(recipes RecipeGetter, param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			recipeID, err := uuid.Parse(chi.URLParam(r, param))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			recipe, err := recipes.Get(r.Context(), recipeID)
			if err == nil && recipe != nil && recipe.UserID != userID {
				logger.Log.Warnw("recipe edit by non-author denied", "user_id", userID, "recipe_id", recipeID)
				forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "forbidden"})
}
