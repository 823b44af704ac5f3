package auth

import (
	"context"
	"fmt"
	"time"

	"ebuney/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultSessionTTL is how long a session stays valid without a
// refresh.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Session is an authenticated marketplace session resolved from a
// bearer token.
type Session struct {
	Token  string
	UserID uuid.UUID
	Role   model.Role
}

// SessionStore persists sessions keyed by bearer token.
type SessionStore interface {
	// Create stores a new session and returns its token.
	Create(ctx context.Context, userID uuid.UUID, role model.Role, ttl time.Duration) (string, error)

	// Get resolves a token. Returns nil when the token is unknown or
	// expired.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete removes a session.
	Delete(ctx context.Context, token string) error
}

// redisSessionStore implements SessionStore on Redis hashes with a
// per-session TTL.
type redisSessionStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, logger zerolog.Logger) SessionStore {
	return &redisSessionStore{
		client: client,
		logger: logger.With().Str("component", "session-store").Logger(),
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *redisSessionStore) Create(ctx context.Context, userID uuid.UUID, role model.Role, ttl time.Duration) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("invalid role: %s", role)
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	token := uuid.NewString()
	key := sessionKey(token)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, "user_id", userID.String(), "role", string(role))
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create session")
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read session")
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	userID, err := uuid.Parse(fields["user_id"])
	if err != nil {
		s.logger.Warn().Str("token", token[:min(8, len(token))]).Msg("session carries malformed user id")
		return nil, nil
	}

	return &Session{
		Token:  token,
		UserID: userID,
		Role:   model.Role(fields["role"]),
	}, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
