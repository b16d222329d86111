package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, name, email, passwordHash string, avatarURL *string) (*models.UserDB, error)
	Rename(ctx context.Context, id uuid.UUID, name string, avatarURL *string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (bool, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates an account unless the email is already taken, ignoring case.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	user, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Warnw("email already registered", "email", req.Email)
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err = svc.writer.Create(ctx, req.Name, req.Email, string(hashedPassword), req.AvatarURL)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return svc.issue(ctx, user)
}

// Login authenticates a user. An unknown email, an account without password
// and a wrong password all fail with ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "email", email)
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == nil {
		logger.Log.Warnw("user has no password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user)
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB) (*models.AuthResponse, error) {
	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	user.PasswordHash = nil
	return &models.AuthResponse{User: user, Token: token}, nil
}
