package services

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

type CommentStore interface {
	List(ctx context.Context, recipeID uuid.UUID) ([]models.CommentDB, error)
	Create(ctx context.Context, in models.NewComment) (*models.CommentDB, error)
}

type CommentService struct {
	store   CommentStore
	users   ExistenceChecker
	recipes ExistenceChecker
	events  *EventPublisher
}

func NewCommentService(store CommentStore, users, recipes ExistenceChecker, events *EventPublisher) *CommentService {
	return &CommentService{
		store:   store,
		users:   users,
		recipes: recipes,
		events:  events,
	}
}

// List returns the latest comments of a recipe, newest first.
func (svc *CommentService) List(ctx context.Context, recipeID uuid.UUID) ([]models.CommentDB, error) {
	comments, err := svc.store.List(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "recipe_id", recipeID, "error", err)
		return nil, err
	}
	return comments, nil
}

// Create stores a comment on an existing recipe. A comment with a user must
// reference an existing user and is shown under that user's name; one without
// keeps the given author name, or the anonymous one.
func (svc *CommentService) Create(ctx context.Context, in models.NewComment) (*models.CommentDB, error) {
	if err := mustExist(ctx, svc.recipes, in.RecipeID, ErrRecipeNotFound); err != nil {
		return nil, err
	}

	if in.UserID != nil {
		if err := mustExist(ctx, svc.users, *in.UserID, ErrUserNotFound); err != nil {
			return nil, err
		}
		in.AuthorName = nil
	} else if in.AuthorName == nil || strings.TrimSpace(*in.AuthorName) == "" {
		anonymous := models.AnonymousAuthor
		in.AuthorName = &anonymous
	}

	comment, err := svc.store.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create comment", "recipe_id", in.RecipeID, "error", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.EventCommentCreated, in.RecipeID, in.UserID, comment)
	return comment, nil
}
