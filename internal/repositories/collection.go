package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/storage"
)

// Link tables backing a CollectionRepository.
const (
	FavoritesTable = "favorites"
	MyRecipesTable = "my_recipes"
)

// CollectionRepository manages one (user, recipe) link table. Favorites and
// my-recipes share the same shape and semantics.
type CollectionRepository struct {
	g     *storage.Gateway
	table string
}

func NewCollectionRepository(g *storage.Gateway, table string) *CollectionRepository {
	return &CollectionRepository{g: g, table: table}
}

// Add links the pair. Adding an existing pair is a no-op that returns the
// stored link.
func (r *CollectionRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) (*models.CollectionEntry, error) {
	insert := fmt.Sprintf(`
		INSERT INTO %s (user_id, recipe_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, recipe_id) DO NOTHING`, r.table)
	if _, err := r.g.Exec(ctx, insert, userID, recipeID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT user_id, recipe_id, created_at
		FROM %s
		WHERE user_id = $1 AND recipe_id = $2`, r.table)

	var entry models.CollectionEntry
	if err := r.g.Get(ctx, &entry, query, userID, recipeID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove deletes the pair; removing an absent pair succeeds.
func (r *CollectionRepository) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND recipe_id = $2`, r.table)
	_, err := r.g.Exec(ctx, query, userID, recipeID)
	return err
}

// List returns the linked recipes, most recently linked first.
func (r *CollectionRepository) List(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error) {
	query, args, err := recipeSelect().
		Join(r.table + " l ON l.recipe_id = r.id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	recipes := []models.RecipeDB{}
	if err := r.g.Select(ctx, &recipes, query, args...); err != nil {
		return nil, err
	}
	return recipes, nil
}
