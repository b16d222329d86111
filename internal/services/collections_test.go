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

func TestCollectionService_Add(t *testing.T) {
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		userOK     bool
		recipeOK   bool
		checkErr   error
		wantErr    error
		wantStored bool
	}{
		{name: "added", userOK: true, recipeOK: true, wantStored: true},
		{name: "unknown user", userOK: false, wantErr: ErrUserNotFound},
		{name: "unknown recipe", userOK: true, recipeOK: false, wantErr: ErrRecipeNotFound},
		{name: "check failure", checkErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockCollectionStore(ctrl)
			users := NewMockExistenceChecker(ctrl)
			recipes := NewMockExistenceChecker(ctrl)
			svc := NewCollectionService("favorites", store, users, recipes)

			users.EXPECT().Exists(ctx, userID).Return(tt.userOK, tt.checkErr)
			if tt.userOK {
				recipes.EXPECT().Exists(ctx, recipeID).Return(tt.recipeOK, nil)
			}
			if tt.wantStored {
				store.EXPECT().Add(ctx, userID, recipeID).Return(&models.CollectionEntry{UserID: userID, RecipeID: recipeID}, nil)
			}

			entry, err := svc.Add(ctx, userID, recipeID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, recipeID, entry.RecipeID)
		})
	}
}

func TestCollectionService_ListAndRemove(t *testing.T) {
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	store := NewMockCollectionStore(ctrl)
	svc := NewCollectionService("my_recipes", store, NewMockExistenceChecker(ctrl), NewMockExistenceChecker(ctrl))

	store.EXPECT().List(ctx, userID).Return([]models.RecipeDB{{ID: recipeID}}, nil)
	recipes, err := svc.List(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, recipes, 1)

	store.EXPECT().Remove(ctx, userID, recipeID).Return(nil)
	assert.NoError(t, svc.Remove(ctx, userID, recipeID))

	store.EXPECT().Remove(ctx, userID, recipeID).Return(errors.New("db error"))
	assert.Error(t, svc.Remove(ctx, userID, recipeID))
}
