package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/stretchr/testify/assert"
)

type recipeMocks struct {
	reader *MockRecipeReader
	writer *MockRecipeWriter
	users  *MockExistenceChecker
	kafka  *MockKafkaWriter
}

func newRecipeService(t *testing.T) (*RecipeService, recipeMocks) {
	ctrl := gomock.NewController(t)
	m := recipeMocks{
		reader: NewMockRecipeReader(ctrl),
		writer: NewMockRecipeWriter(ctrl),
		users:  NewMockExistenceChecker(ctrl),
		kafka:  NewMockKafkaWriter(ctrl),
	}
	return NewRecipeService(m.reader, m.writer, m.users, NewEventPublisher(m.kafka)), m
}

func TestRecipeService_Reads(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("list", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().List(ctx).Return([]models.RecipeDB{{ID: id}}, nil)
		recipes, err := svc.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, recipes, 1)
	})

	t.Run("list by user error", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().ListByUser(ctx, id).Return(nil, errors.New("db error"))
		_, err := svc.ListByUser(ctx, id)
		assert.EqualError(t, err, "db error")
	})

	t.Run("get unknown", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.reader.EXPECT().GetByID(ctx, id).Return(nil, nil)
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestRecipeService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	in := models.NewRecipe{Title: "Paella", UserID: userID, Ingredients: models.Ingredients{}}

	t.Run("created and published", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		m.writer.EXPECT().Create(ctx, in).Return(&models.RecipeDB{ID: uuid.New(), Title: "Paella", UserID: userID}, nil)
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		recipe, err := svc.Create(ctx, in)
		assert.NoError(t, err)
		assert.Equal(t, "Paella", recipe.Title)
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.users.EXPECT().Exists(ctx, userID).Return(false, nil)

		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		m.writer.EXPECT().Create(ctx, in).Return(&models.RecipeDB{ID: uuid.New(), UserID: userID}, nil)
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

		_, err := svc.Create(ctx, in)
		assert.NoError(t, err)
	})
}

func TestRecipeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	title := "Paella mixta"
	patch := models.RecipePatch{Title: &title}

	t.Run("empty patch", func(t *testing.T) {
		svc, _ := newRecipeService(t)
		_, err := svc.Update(ctx, id, models.RecipePatch{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.writer.EXPECT().Update(ctx, id, patch).Return(nil, nil)
		_, err := svc.Update(ctx, id, patch)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})

	t.Run("updated", func(t *testing.T) {
		svc, m := newRecipeService(t)
		m.writer.EXPECT().Update(ctx, id, patch).Return(&models.RecipeDB{ID: id, Title: title}, nil)
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		recipe, err := svc.Update(ctx, id, patch)
		assert.NoError(t, err)
		assert.Equal(t, title, recipe.Title)
	})
}

func TestRecipeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	svc, m := newRecipeService(t)
	m.writer.EXPECT().Delete(ctx, id).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrRecipeNotFound)

	m.writer.EXPECT().Delete(ctx, id).Return(true, nil)
	m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)
	assert.NoError(t, svc.Delete(ctx, id))
}
