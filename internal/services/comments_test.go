package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	recipeID, userID := uuid.New(), uuid.New()
	pepa := "Pepa"
	blank := "  "

	tests := []struct {
		name       string
		in         models.NewComment
		recipeOK   bool
		checkUser  bool
		userOK     bool
		wantAuthor *string
		wantErr    error
	}{
		{
			name:      "with user drops author name",
			in:        models.NewComment{RecipeID: recipeID, UserID: &userID, AuthorName: &pepa, Content: "Rica"},
			recipeOK:  true,
			checkUser: true,
			userOK:    true,
		},
		{
			name:       "anonymous keeps author name",
			in:         models.NewComment{RecipeID: recipeID, AuthorName: &pepa, Content: "Rica"},
			recipeOK:   true,
			wantAuthor: &pepa,
		},
		{
			name:       "anonymous defaults author name",
			in:         models.NewComment{RecipeID: recipeID, AuthorName: &blank, Content: "Rica"},
			recipeOK:   true,
			wantAuthor: func() *string { s := models.AnonymousAuthor; return &s }(),
		},
		{
			name:    "unknown recipe",
			in:      models.NewComment{RecipeID: recipeID, Content: "Rica"},
			wantErr: ErrRecipeNotFound,
		},
		{
			name:      "unknown user",
			in:        models.NewComment{RecipeID: recipeID, UserID: &userID, Content: "Rica"},
			recipeOK:  true,
			checkUser: true,
			wantErr:   ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockCommentStore(ctrl)
			users := NewMockExistenceChecker(ctrl)
			recipes := NewMockExistenceChecker(ctrl)
			kafka := NewMockKafkaWriter(ctrl)
			svc := NewCommentService(store, users, recipes, NewEventPublisher(kafka))

			recipes.EXPECT().Exists(ctx, recipeID).Return(tt.recipeOK, nil)
			if tt.checkUser {
				users.EXPECT().Exists(ctx, userID).Return(tt.userOK, nil)
			}
			if tt.wantErr == nil {
				store.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.NewComment) (*models.CommentDB, error) {
						assert.Equal(t, tt.wantAuthor, in.AuthorName)
						return &models.CommentDB{ID: uuid.New(), RecipeID: in.RecipeID, UserID: in.UserID, Content: in.Content}, nil
					})
				kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)
			}

			comment, err := svc.Create(ctx, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Rica", comment.Content)
		})
	}
}

func TestCommentService_List(t *testing.T) {
	ctx := context.Background()
	recipeID := uuid.New()

	ctrl := gomock.NewController(t)
	store := NewMockCommentStore(ctrl)
	svc := NewCommentService(store, NewMockExistenceChecker(ctrl), NewMockExistenceChecker(ctrl), nil)

	store.EXPECT().List(ctx, recipeID).Return([]models.CommentDB{}, nil)
	comments, err := svc.List(ctx, recipeID)
	assert.NoError(t, err)
	assert.Empty(t, comments)
}
