package services

//go:generate mockgen -source=ratings.go -destination=ratings_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

// RatingStore persists one rating per (user, recipe).
type RatingStore interface {
	Summary(ctx context.Context, recipeID uuid.UUID) (*models.RatingSummary, error)
	GetUserRating(ctx context.Context, userID, recipeID uuid.UUID) (*int, error)
	Upsert(ctx context.Context, userID, recipeID uuid.UUID, rating int) (*models.RatingDB, error)
	Delete(ctx context.Context, userID, recipeID uuid.UUID) error
}

type RatingService struct {
	store   RatingStore
	users   ExistenceChecker
	recipes ExistenceChecker
	events  *EventPublisher
}

func NewRatingService(store RatingStore, users, recipes ExistenceChecker, events *EventPublisher) *RatingService {
	return &RatingService{
		store:   store,
		users:   users,
		recipes: recipes,
		events:  events,
	}
}

// Summary returns the two-decimal average and count; an unrated recipe reports 0 and 0.
func (svc *RatingService) Summary(ctx context.Context, recipeID uuid.UUID) (*models.RatingSummary, error) {
	summary, err := svc.store.Summary(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to summarize ratings", "recipe_id", recipeID, "error", err)
		return nil, err
	}
	return summary, nil
}

// UserRating returns nil when the user has not rated the recipe.
func (svc *RatingService) UserRating(ctx context.Context, userID, recipeID uuid.UUID) (*int, error) {
	rating, err := svc.store.GetUserRating(ctx, userID, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get rating", "user_id", userID, "recipe_id", recipeID, "error", err)
		return nil, err
	}
	return rating, nil
}

// Rate writes the user's rating, replacing any earlier one.
func (svc *RatingService) Rate(ctx context.Context, userID, recipeID uuid.UUID, rating int) (*models.RatingDB, error) {
	if err := mustExist(ctx, svc.users, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, svc.recipes, recipeID, ErrRecipeNotFound); err != nil {
		return nil, err
	}

	out, err := svc.store.Upsert(ctx, userID, recipeID, rating)
	if err != nil {
		logger.Log.Errorw("failed to upsert rating", "user_id", userID, "recipe_id", recipeID, "error", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.EventRatingUpserted, recipeID, &userID, map[string]int{"rating": out.Rating})
	return out, nil
}

func (svc *RatingService) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	if err := svc.store.Delete(ctx, userID, recipeID); err != nil {
		logger.Log.Errorw("failed to delete rating", "user_id", userID, "recipe_id", recipeID, "error", err)
		return err
	}
	return nil
}
