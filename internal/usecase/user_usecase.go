package usecase

import (
	"context"

	"wellclub/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Email    string
	Phone    string
	Name     string
	Password string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"-"`
}

// UserUsecase defines account registration and authentication use cases.
type UserUsecase interface {
	// Register creates a member account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and mints an access token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Profile fetches the calling user's account record.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
