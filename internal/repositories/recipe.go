package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/storage"
)

// ErrEmptyPatch is returned when an update carries no column.
var ErrEmptyPatch = errors.New("recipe patch has no fields")

const recipeColumns = `id, title, description, category_id, image_url, ingredients,
	prep_time, cook_time, servings, difficulty, user_id, created_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// recipeSelect joins a recipe with its category name and author.
func recipeSelect() sq.SelectBuilder {
	return psql.Select(
		"r.id", "r.title", "r.description", "r.category_id", "r.image_url", "r.ingredients",
		"r.prep_time", "r.cook_time", "r.servings", "r.difficulty", "r.user_id", "r.created_at",
		"c.name AS category_name", "u.name AS author_name", "u.avatar_url AS author_avatar",
	).
		From("recipes r").
		LeftJoin("categories c ON c.id = r.category_id").
		LeftJoin("users u ON u.id = r.user_id")
}

type RecipeRepository struct {
	g *storage.Gateway
}

func NewRecipeRepository(g *storage.Gateway) *RecipeRepository {
	return &RecipeRepository{g: g}
}

// List returns every recipe, newest first.
func (r *RecipeRepository) List(ctx context.Context) ([]models.RecipeDB, error) {
	return r.selectMany(ctx, recipeSelect().OrderBy("r.created_at DESC"))
}

// ListByUser returns the recipes authored by userID, newest first.
func (r *RecipeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error) {
	return r.selectMany(ctx, recipeSelect().
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.created_at DESC"))
}

// GetByID returns nil when the recipe does not exist.
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RecipeDB, error) {
	query, args, err := recipeSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var recipe models.RecipeDB
	if err := r.g.Get(ctx, &recipe, query, args...); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &recipe, nil
}

func (r *RecipeRepository) Create(ctx context.Context, in models.NewRecipe) (*models.RecipeDB, error) {
	const query = `
		INSERT INTO recipes (title, description, category_id, image_url, ingredients,
			prep_time, cook_time, servings, difficulty, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + recipeColumns

	var recipe models.RecipeDB
	err := r.g.Get(ctx, &recipe, query,
		in.Title, in.Description, in.CategoryID, in.ImageURL, in.Ingredients,
		in.PrepTime, in.CookTime, in.Servings, in.Difficulty, in.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update applies the present fields of patch in one statement and returns
// the stored row, or nil when the recipe does not exist.
func (r *RecipeRepository) Update(ctx context.Context, id uuid.UUID, patch models.RecipePatch) (*models.RecipeDB, error) {
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return nil, ErrEmptyPatch
	}

	b := psql.Update("recipes")
	for _, a := range assignments {
		b = b.Set(a.Column, a.Value)
	}
	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + recipeColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	var recipe models.RecipeDB
	if err := r.g.Get(ctx, &recipe, query, args...); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &recipe, nil
}

// Delete reports whether the recipe existed. Dependent rows go with it.
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.g.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RecipeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.g, `SELECT EXISTS (SELECT 1 FROM recipes WHERE id = $1)`, id)
}

func (r *RecipeRepository) selectMany(ctx context.Context, b sq.SelectBuilder) ([]models.RecipeDB, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	recipes := []models.RecipeDB{}
	if err := r.g.Select(ctx, &recipes, query, args...); err != nil {
		return nil, err
	}
	return recipes, nil
}
