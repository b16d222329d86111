package models

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousAuthor is the display name of comments without a user.
const AnonymousAuthor = "Anónimo"

// CommentDB is a comment row joined with its author.
type CommentDB struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	RecipeID     uuid.UUID  `json:"recipe_id" db:"recipe_id"`
	UserID       *uuid.UUID `json:"user_id" db:"user_id"`
	Content      string     `json:"content" db:"content"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	AuthorName   string     `json:"author_name" db:"author_name"`
	AuthorAvatar *string    `json:"author_avatar" db:"author_avatar"`
}

// CreateCommentRequest represents the JSON body for commenting on a recipe.
// `text` is accepted as an alias of `content`.
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	Content    string  `json:"content" validate:"required,min=1,max=2000"`
	Text       string  `json:"text" validate:"-"`
	UserID     *string `json:"userId" validate:"omitempty,uuid"`
	AuthorName *string `json:"authorName" validate:"omitempty,max=100"`
}

// Normalize folds the `text` alias into Content.
func (r *CreateCommentRequest) Normalize() {
	if r.Content == "" {
		r.Content = r.Text
	}
}

// NewComment is a validated comment ready to be inserted.
type NewComment struct {
	RecipeID   uuid.UUID
	UserID     *uuid.UUID
	AuthorName *string
	Content    string
}
