package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique, case-insensitive
	PasswordHash *string   `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"` // Optional avatar
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UpdateUserRequest represents the JSON body for renaming a user
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New display name
	// required: true
	// example: Lucía
	Name string `json:"name" validate:"required,max=100"`

	// Optional avatar URL
	// example: https://res.cloudinary.com/demo/image/upload/avatar.png
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}

// ChangePasswordRequest represents the JSON body for changing a password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
