package impl

import (
	"context"
	"log/slog"
	"strings"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/domain/service"
	"wellclub/internal/errors"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo       repository.UserRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// NewUserService creates a new user account service instance.
func NewUserService(
	userRepo repository.UserRepository,
	passwordHasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Register creates a member account with a hashed password. Email is the
// login identifier, so duplicates are rejected up front.
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:       uuid.New(),
		Email:    email,
		Phone:    input.Phone,
		Name:     input.Name,
		Password: hash,
		Role:     entity.RoleMember,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// Login verifies credentials and mints an access token. Unknown email and
// wrong password both map to the same credential error.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.passwordHasher.Check(password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(user.ID.String(), user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginResult{
		AccessToken: token,
		User:        user,
	}, nil
}

// Profile fetches the calling user's account record.
func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
