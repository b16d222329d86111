package services

//go:generate mockgen -source=collections.go -destination=collections_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

// CollectionStore manages one (user, recipe) link list.
type CollectionStore interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (*models.CollectionEntry, error)
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error)
}

// CollectionService backs both favorites and my-recipes.
type CollectionService struct {
	name    string
	store   CollectionStore
	users   ExistenceChecker
	recipes ExistenceChecker
}

// NewCollectionService creates a service; name only labels log lines.
func NewCollectionService(name string, store CollectionStore, users, recipes ExistenceChecker) *CollectionService {
	return &CollectionService{
		name:    name,
		store:   store,
		users:   users,
		recipes: recipes,
	}
}

func (svc *CollectionService) List(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error) {
	recipes, err := svc.store.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list collection", "collection", svc.name, "user_id", userID, "error", err)
		return nil, err
	}
	return recipes, nil
}

// Add links the recipe. Adding it twice returns the existing link.
func (svc *CollectionService) Add(ctx context.Context, userID, recipeID uuid.UUID) (*models.CollectionEntry, error) {
	if err := mustExist(ctx, svc.users, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, svc.recipes, recipeID, ErrRecipeNotFound); err != nil {
		return nil, err
	}

	entry, err := svc.store.Add(ctx, userID, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to add to collection", "collection", svc.name, "user_id", userID, "recipe_id", recipeID, "error", err)
		return nil, err
	}
	return entry, nil
}

// Remove unlinks the recipe; an absent link is not an error.
func (svc *CollectionService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	if err := svc.store.Remove(ctx, userID, recipeID); err != nil {
		logger.Log.Errorw("failed to remove from collection", "collection", svc.name, "user_id", userID, "recipe_id", recipeID, "error", err)
		return err
	}
	return nil
}

// mustExist returns notFound when the checker does not know id.
func mustExist(ctx context.Context, checker ExistenceChecker, id uuid.UUID, notFound error) error {
	ok, err := checker.Exists(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check existence", "id", id, "error", err)
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
