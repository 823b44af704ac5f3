package service

import (
	"context"
	"fmt"

	"ebuney/internal/model"
	"ebuney/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserService defines profile reads, used to prefill the checkout
// address form.
type UserService interface {
	// GetProfile retrieves the account profile. Returns nil when no
	// profile exists.
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
}

type userService struct {
	repo   repository.UserRepository
	logger zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}
