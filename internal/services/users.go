package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserService reads and edits user profiles.
type UserService struct {
	reader UserReader
	writer UserWriter
}

func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.PasswordHash = nil
	return user, nil
}

// Rename changes the display name and, when given, the avatar URL.
func (svc *UserService) Rename(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.UserDB, error) {
	user, err := svc.writer.Rename(ctx, id, req.Name, req.AvatarURL)
	if err != nil {
		logger.Log.Errorw("failed to rename user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.PasswordHash = nil
	return user, nil
}

// ChangePassword replaces the hash after checking the current password.
func (svc *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req models.ChangePasswordRequest) error {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		logger.Log.Warnw("current password mismatch", "user_id", id)
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	ok, err := svc.writer.UpdatePassword(ctx, id, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to update password", "user_id", id, "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
