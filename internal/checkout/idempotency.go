package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// attemptTTL is how long a checkout attempt id blocks replays. A
// double-click or network-level retry inside this window is rejected
// instead of fanning out duplicate orders.
const attemptTTL = 24 * time.Hour

// AttemptGuard dedupes checkout attempts by client-generated attempt
// id. Begin claims the attempt; Release frees it when checkout failed
// before any order row was written, so the buyer can retry with the
// same id.
type AttemptGuard interface {
	Begin(ctx context.Context, buyerID uuid.UUID, attemptID string) (bool, error)
	Release(ctx context.Context, buyerID uuid.UUID, attemptID string) error
}

// redisAttemptGuard implements AttemptGuard on Redis SET NX.
type redisAttemptGuard struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisAttemptGuard creates a Redis-backed checkout attempt guard.
func NewRedisAttemptGuard(client *redis.Client, logger zerolog.Logger) AttemptGuard {
	return &redisAttemptGuard{
		client: client,
		logger: logger.With().Str("component", "attempt-guard").Logger(),
	}
}

func attemptKey(buyerID uuid.UUID, attemptID string) string {
	return fmt.Sprintf("checkout:attempt:%s:%s", buyerID, attemptID)
}

// Begin claims the attempt id. Returns false when the id was already
// claimed within the TTL window.
func (g *redisAttemptGuard) Begin(ctx context.Context, buyerID uuid.UUID, attemptID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, attemptKey(buyerID, attemptID), "1", attemptTTL).Result()
	if err != nil {
		g.logger.Error().
			Err(err).
			Str("buyer_id", buyerID.String()).
			Str("attempt_id", attemptID).
			Msg("failed to claim checkout attempt")
		return false, fmt.Errorf("failed to claim checkout attempt: %w", err)
	}

	if !ok {
		g.logger.Warn().
			Str("buyer_id", buyerID.String()).
			Str("attempt_id", attemptID).
			Msg("duplicate checkout attempt rejected")
	}

	return ok, nil
}

// Release frees a claimed attempt id.
func (g *redisAttemptGuard) Release(ctx context.Context, buyerID uuid.UUID, attemptID string) error {
	if err := g.client.Del(ctx, attemptKey(buyerID, attemptID)).Err(); err != nil {
		g.logger.Error().
			Err(err).
			Str("buyer_id", buyerID.String()).
			Str("attempt_id", attemptID).
			Msg("failed to release checkout attempt")
		return fmt.Errorf("failed to release checkout attempt: %w", err)
	}
	return nil
}
