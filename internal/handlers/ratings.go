package handlers

//go:generate mockgen -source=ratings.go -destination=ratings_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

type RatingSummarizer interface {
	Summary(ctx context.Context, recipeID uuid.UUID) (*models.RatingSummary, error)
}

type UserRatingGetter interface {
	UserRating(ctx context.Context, userID, recipeID uuid.UUID) (*int, error)
}

type Rater interface {
	Rate(ctx context.Context, userID, recipeID uuid.UUID, rating int) (*models.RatingDB, error)
}

type RatingDeleter interface {
	Delete(ctx context.Context, userID, recipeID uuid.UUID) error
}

// NewRatingSummaryHandler returns the average and count of a recipe's ratings.
// @Summary Recipe rating
// @Description Average is rounded to two decimals and is 0 when nobody has rated
// @Tags ratings
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.RatingSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recipes/{id}/ratings [get]
func NewRatingSummaryHandler(svc RatingSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, ok := pathUUID(w, r, recipeIDParam)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), recipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// NewUserRatingHandler returns a user's rating of a recipe, null when absent.
// @Summary Own rating
// @Tags ratings
// @Produce json
// @Param userId path string true "User ID"
// @Param recipeId path string true "Recipe ID"
// @Success 200 {object} models.UserRatingResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{userId}/ratings/{recipeId} [get]
func NewUserRatingHandler(svc UserRatingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, recipeID, ok := ratingPath(w, r)
		if !ok {
			return
		}

		rating, err := svc.UserRating(r.Context(), userID, recipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.UserRatingResponse{Rating: rating})
	}
}

// NewRateRecipeHandler creates or replaces a user's rating.
// @Summary Rate recipe
// @Tags ratings
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param recipeId path string true "Recipe ID"
// @Param request body models.RateRecipeRequest true "Rating from 1 to 5"
// @Success 200 {object} models.RatingDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Unknown user or recipe"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/ratings/{recipeId} [put]
func NewRateRecipeHandler(svc Rater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, recipeID, ok := ratingPath(w, r)
		if !ok {
			return
		}

		var req models.RateRecipeRequest
		if !decodeJSON(w, r, &req) || !validate(w, &req) {
			return
		}

		rating, err := svc.Rate(r.Context(), userID, recipeID, int(*req.Rating))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rating)
	}
}

// NewDeleteRatingHandler removes a user's rating if present.
// @Summary Delete own rating
// @Tags ratings
// @Param userId path string true "User ID"
// @Param recipeId path string true "Recipe ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/ratings/{recipeId} [delete]
func NewDeleteRatingHandler(svc RatingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, recipeID, ok := ratingPath(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, recipeID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ratingPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := pathUUID(w, r, userIDParam)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	recipeID, ok := pathUUID(w, r, recipeIDPathParam)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, recipeID, true
}
