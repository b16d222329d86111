package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/storage"
)

// CommentListLimit caps a recipe's comment listing.
const CommentListLimit = 50

type CommentRepository struct {
	g *storage.Gateway
}

func NewCommentRepository(g *storage.Gateway) *CommentRepository {
	return &CommentRepository{g: g}
}

// List returns the most recent comments of a recipe, newest first.
func (r *CommentRepository) List(ctx context.Context, recipeID uuid.UUID) ([]models.CommentDB, error) {
	const query = `
		SELECT c.id, c.recipe_id, c.user_id, c.content, c.created_at,
		       COALESCE(u.name, c.author_name, 'Anónimo') AS author_name,
		       u.avatar_url AS author_avatar
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.recipe_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2`

	comments := []models.CommentDB{}
	if err := r.g.Select(ctx, &comments, query, recipeID, CommentListLimit); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts the comment and returns it joined with its author.
func (r *CommentRepository) Create(ctx context.Context, in models.NewComment) (*models.CommentDB, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO comments (recipe_id, user_id, author_name, content)
			VALUES ($1, $2, $3, $4)
			RETURNING id, recipe_id, user_id, author_name, content, created_at
		)
		SELECT i.id, i.recipe_id, i.user_id, i.content, i.created_at,
		       COALESCE(u.name, i.author_name, 'Anónimo') AS author_name,
		       u.avatar_url AS author_avatar
		FROM inserted i
		LEFT JOIN users u ON u.id = i.user_id`

	var comment models.CommentDB
	if err := r.g.Get(ctx, &comment, query, in.RecipeID, in.UserID, in.AuthorName, in.Content); err != nil {
		return nil, err
	}
	return &comment, nil
}
