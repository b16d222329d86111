package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Difficulty levels accepted for a recipe.
const (
	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Media"
	DifficultyHard   = "Difícil"
)

// Ingredient is one {name, amount} entry of a recipe.
type Ingredient struct {
	Name   string `json:"name" validate:"required,max=200"`
	Amount string `json:"amount" validate:"max=100"`
}

// Ingredients is stored as a JSONB array.
type Ingredients []Ingredient

// Value implements driver.Valuer.
func (in Ingredients) Value() (driver.Value, error) {
	if in == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(in)
}

// Scan implements sql.Scanner.
func (in *Ingredients) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*in = Ingredients{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("ingredients: unsupported source type %T", src)
	}

	var out Ingredients
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("ingredients: %w", err)
	}
	if out == nil {
		out = Ingredients{}
	}
	*in = out
	return nil
}

// RecipeDB represents a recipe row, optionally joined with its category and author.
type RecipeDB struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	Description  *string     `json:"description" db:"description"`
	CategoryID   *int        `json:"category_id" db:"category_id"`
	ImageURL     *string     `json:"image_url" db:"image_url"`
	Ingredients  Ingredients `json:"ingredients" db:"ingredients"`
	PrepTime     *string     `json:"prep_time" db:"prep_time"`
	CookTime     *string     `json:"cook_time" db:"cook_time"`
	Servings     *int        `json:"servings" db:"servings"`
	Difficulty   *string     `json:"difficulty" db:"difficulty"`
	UserID       uuid.UUID   `json:"user_id" db:"user_id"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	CategoryName *string     `json:"category_name,omitempty" db:"category_name"`
	AuthorName   *string     `json:"author_name,omitempty" db:"author_name"`
	AuthorAvatar *string     `json:"author_avatar,omitempty" db:"author_avatar"`
}

// CreateRecipeRequest is the schema shared by the JSON and multipart create endpoints.
// swagger:model CreateRecipeRequest
type CreateRecipeRequest struct {
	// required: true
	// example: Paella
	Title       string      `json:"title" validate:"required,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=5000"`
	CategoryID  *FlexInt    `json:"categoryId" validate:"omitempty,gte=1"`
	ImageURL    *string     `json:"imageUrl" validate:"omitempty,url"`
	Ingredients Ingredients `json:"ingredients" validate:"omitempty,dive"`
	PrepTime    *string     `json:"prepTime" validate:"omitempty,max=100"`
	CookTime    *string     `json:"cookTime" validate:"omitempty,max=100"`
	Servings    *FlexInt    `json:"servings" validate:"omitempty,gte=1"`
	// enum: Fácil,Media,Difícil
	Difficulty *string `json:"difficulty" validate:"omitempty,oneof=Fácil Media Difícil"`
	// required: true
	UserID string `json:"userId" validate:"required,uuid"`
}

// NewRecipe is a validated recipe ready to be inserted.
type NewRecipe struct {
	Title       string
	Description *string
	CategoryID  *int
	ImageURL    *string
	Ingredients Ingredients
	PrepTime    *string
	CookTime    *string
	Servings    *int
	Difficulty  *string
	UserID      uuid.UUID
}

// ToNewRecipe converts a validated request; UserID must already have passed the uuid check.
func (r *CreateRecipeRequest) ToNewRecipe() NewRecipe {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = Ingredients{}
	}
	return NewRecipe{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID.IntPtr(),
		ImageURL:    r.ImageURL,
		Ingredients: ingredients,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Servings:    r.Servings.IntPtr(),
		Difficulty:  r.Difficulty,
		UserID:      uuid.MustParse(r.UserID),
	}
}

// UpdateRecipeRequest carries a partial update; absent fields are left untouched
// and an explicit null clears a nullable column.
// swagger:model UpdateRecipeRequest
type UpdateRecipeRequest struct {
	Title       *string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=5000"`
	CategoryID  *FlexInt    `json:"categoryId" validate:"omitempty,gte=1"`
	ImageURL    *string     `json:"imageUrl" validate:"omitempty,url"`
	Ingredients Ingredients `json:"ingredients" validate:"omitempty,dive"`
	PrepTime    *string     `json:"prepTime" validate:"omitempty,max=100"`
	CookTime    *string     `json:"cookTime" validate:"omitempty,max=100"`
	Servings    *FlexInt    `json:"servings" validate:"omitempty,gte=1"`
	Difficulty  *string     `json:"difficulty" validate:"omitempty,oneof=Fácil Media Difícil"`

	nulls map[string]bool
}

// nullableColumns maps request keys, lowercased, to the columns an explicit null clears.
var nullableColumns = map[string]string{
	"description": "description",
	"categoryid":  "category_id",
	"imageurl":    "image_url",
	"preptime":    "prep_time",
	"cooktime":    "cook_time",
	"servings":    "servings",
	"difficulty":  "difficulty",
}

// UnmarshalJSON implements json.Unmarshaler, remembering which keys were sent as null.
func (r *UpdateRecipeRequest) UnmarshalJSON(b []byte) error {
	type plain UpdateRecipeRequest
	if err := json.Unmarshal(b, (*plain)(r)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.nulls = nil
	for key, value := range raw {
		if !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		switch k := strings.ToLower(key); k {
		case "title":
			return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(""), Field: "title"}
		case "ingredients":
			r.Ingredients = Ingredients{}
		default:
			if column, ok := nullableColumns[k]; ok {
				if r.nulls == nil {
					r.nulls = make(map[string]bool)
				}
				r.nulls[column] = true
			}
		}
	}
	return nil
}

// RecipePatch is the set of columns a partial update touches. A nil field is
// not updated unless its column is listed in Null.
type RecipePatch struct {
	Title       *string
	Description *string
	CategoryID  *int
	ImageURL    *string
	Ingredients *Ingredients
	PrepTime    *string
	CookTime    *string
	Servings    *int
	Difficulty  *string

	// Null holds the nullable columns to set to NULL.
	Null map[string]bool
}

// ToPatch converts a validated request.
func (r *UpdateRecipeRequest) ToPatch() RecipePatch {
	p := RecipePatch{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID.IntPtr(),
		ImageURL:    r.ImageURL,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Servings:    r.Servings.IntPtr(),
		Difficulty:  r.Difficulty,
	}
	if r.Ingredients != nil {
		ingredients := r.Ingredients
		p.Ingredients = &ingredients
	}
	if len(r.nulls) > 0 {
		p.Null = make(map[string]bool, len(r.nulls))
		for column := range r.nulls {
			p.Null[column] = true
		}
	}
	return p
}

// Assignment is one "column = value" pair of an UPDATE statement.
type Assignment struct {
	Column string
	Value  any
}

// Assignments lists the present fields in a fixed column order. Cleared
// columns carry a nil value.
func (p RecipePatch) Assignments() []Assignment {
	var out []Assignment
	add := func(column string, present bool, value any) {
		if present {
			out = append(out, Assignment{Column: column, Value: value})
		}
	}
	add("title", p.Title != nil, deref(p.Title))
	add("description", p.Description != nil || p.Null["description"], deref(p.Description))
	add("category_id", p.CategoryID != nil || p.Null["category_id"], deref(p.CategoryID))
	add("image_url", p.ImageURL != nil || p.Null["image_url"], deref(p.ImageURL))
	add("ingredients", p.Ingredients != nil, deref(p.Ingredients))
	add("prep_time", p.PrepTime != nil || p.Null["prep_time"], deref(p.PrepTime))
	add("cook_time", p.CookTime != nil || p.Null["cook_time"], deref(p.CookTime))
	add("servings", p.Servings != nil || p.Null["servings"], deref(p.Servings))
	add("difficulty", p.Difficulty != nil || p.Null["difficulty"], deref(p.Difficulty))
	return out
}

// IsEmpty reports whether the patch changes nothing.
func (p RecipePatch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
