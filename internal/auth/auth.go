// Package auth is the single authorization capability for the API:
// every route resolves its bearer token here exactly once instead of
// re-implementing role checks per page.
package auth

import (
	"context"

	"ebuney/internal/model"

	"github.com/rs/zerolog"
)

// Service authenticates bearer tokens and enforces role requirements.
type Service struct {
	store  SessionStore
	logger zerolog.Logger
}

// NewService creates the authorization service.
func NewService(store SessionStore, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

// Authenticate resolves a bearer token into a session. Returns
// ErrNotAuthenticated when the token is missing, unknown or expired.
func (s *Service) Authenticate(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, model.ErrNotAuthenticated
	}

	session, err := s.store.Get(ctx, token)
	if err != nil {
		s.logger.Error().Err(err).Msg("session lookup failed")
		return nil, model.ErrDataUnavailable
	}
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	return session, nil
}

// RequireRole resolves the token and checks the session's role.
// Admins satisfy any role requirement.
func (s *Service) RequireRole(ctx context.Context, token string, role model.Role) (*Session, error) {
	session, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Role != role && session.Role != model.RoleAdmin {
		s.logger.Warn().
			Str("user_id", session.UserID.String()).
			Str("have", string(session.Role)).
			Str("want", string(role)).
			Msg("role check denied")
		return nil, model.ErrForbidden
	}

	return session, nil
}
