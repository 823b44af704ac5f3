package repository

import (
	"context"
	"fmt"

	"ebuney/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// GetByID retrieves a user profile.
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), COALESCE(phone, ''), role
		FROM user_profiles
		WHERE id = $1
	`

	var profile model.UserProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Email,
		&profile.FullName,
		&profile.Phone,
		&profile.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("user_id", id.String()).Msg("user profile not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to query user profile")
		return nil, fmt.Errorf("failed to query user profile: %w", err)
	}

	return &profile, nil
}
