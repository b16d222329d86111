package services

//go:generate mockgen -source=recipes.go -destination=recipes_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNothingToUpdate = errors.New("nothing to update")
)

// RecipeReader defines read-only operations for recipes.
type RecipeReader interface {
	List(ctx context.Context) ([]models.RecipeDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.RecipeDB, error)
}

// RecipeWriter defines write operations for recipes.
type RecipeWriter interface {
	Create(ctx context.Context, in models.NewRecipe) (*models.RecipeDB, error)
	Update(ctx context.Context, id uuid.UUID, patch models.RecipePatch) (*models.RecipeDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ExistenceChecker reports whether an entity with the id is stored.
type ExistenceChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// RecipeService handles recipe CRUD.
type RecipeService struct {
	reader RecipeReader
	writer RecipeWriter
	users  ExistenceChecker
	events *EventPublisher
}

func NewRecipeService(reader RecipeReader, writer RecipeWriter, users ExistenceChecker, events *EventPublisher) *RecipeService {
	return &RecipeService{
		reader: reader,
		writer: writer,
		users:  users,
		events: events,
	}
}

func (svc *RecipeService) List(ctx context.Context) ([]models.RecipeDB, error) {
	recipes, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "error", err)
		return nil, err
	}
	return recipes, nil
}

func (svc *RecipeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error) {
	recipes, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user recipes", "user_id", userID, "error", err)
		return nil, err
	}
	return recipes, nil
}

func (svc *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.RecipeDB, error) {
	recipe, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe_id", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

// Create stores a recipe owned by an existing user.
func (svc *RecipeService) Create(ctx context.Context, in models.NewRecipe) (*models.RecipeDB, error) {
	ok, err := svc.users.Exists(ctx, in.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check recipe owner", "user_id", in.UserID, "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	recipe, err := svc.writer.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create recipe", "user_id", in.UserID, "error", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.EventRecipeCreated, recipe.ID, &recipe.UserID, recipe)
	return recipe, nil
}

// Update applies a partial update. Absent fields keep their stored value.
func (svc *RecipeService) Update(ctx context.Context, id uuid.UUID, patch models.RecipePatch) (*models.RecipeDB, error) {
	if patch.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	recipe, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "recipe_id", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	svc.events.Publish(ctx, models.EventRecipeUpdated, recipe.ID, &recipe.UserID, recipe)
	return recipe, nil
}

// Delete removes the recipe; its comments, ratings and collection links go with it.
func (svc *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe_id", id, "error", err)
		return err
	}
	if !ok {
		return ErrRecipeNotFound
	}

	svc.events.Publish(ctx, models.EventRecipeDeleted, id, nil, nil)
	return nil
}
