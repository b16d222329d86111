package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/storage"
)

const userColumns = `id, name, email, password_hash, avatar_url, created_at`

type UserRepository struct {
	g *storage.Gateway
}

func NewUserRepository(g *storage.Gateway) *UserRepository {
	return &UserRepository{g: g}
}

// GetByID returns nil when no user has the id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	if err := r.g.Get(ctx, &user, query, id); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

// GetByEmail matches the address case-insensitively and returns nil when unknown.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`

	var user models.UserDB
	if err := r.g.Get(ctx, &user, query, email); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string, avatarURL *string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	var user models.UserDB
	if err := r.g.Get(ctx, &user, query, name, email, passwordHash, avatarURL); err != nil {
		return nil, err
	}
	return &user, nil
}

// Rename sets the display name and, when given, the avatar. Returns nil for an unknown id.
func (r *UserRepository) Rename(ctx context.Context, id uuid.UUID, name string, avatarURL *string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET name = $2, avatar_url = COALESCE($3, avatar_url)
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	if err := r.g.Get(ctx, &user, query, id, name, avatarURL); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

// UpdatePassword reports whether a row was changed.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (bool, error) {
	const query = `UPDATE users SET password_hash = $2 WHERE id = $1`

	n, err := r.g.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.g, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
}

func exists(ctx context.Context, g *storage.Gateway, query string, args ...any) (bool, error) {
	var ok bool
	if err := g.Get(ctx, &ok, query, args...); err != nil {
		return false, err
	}
	return ok, nil
}

func notFoundAsNil(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}
