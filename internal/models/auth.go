package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// example: Lucía
	Name string `json:"name" validate:"required,max=100"`

	// Email
	// required: true
	// example: lucia@example.com
	Email string `json:"email" validate:"required,email"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6"`

	// Optional avatar URL
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: lucia@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
// swagger:model AuthResponse
type AuthResponse struct {
	User  *UserDB `json:"user"`
	Token string  `json:"token"`
}
