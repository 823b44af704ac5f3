package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"ebuney/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionStore is an in-memory SessionStore for unit tests.
type fakeSessionStore struct {
	sessions map[string]*Session
	err      error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*Session)}
}

func (f *fakeSessionStore) Create(_ context.Context, userID uuid.UUID, role model.Role, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	token := uuid.NewString()
	f.sessions[token] = &Session{Token: token, UserID: userID, Role: role}
	return token, nil
}

func (f *fakeSessionStore) Get(_ context.Context, token string) (*Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[token], nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newFakeSessionStore()
	svc := NewService(store, zerolog.Nop())

	buyerID := uuid.New()
	token, err := store.Create(ctx, buyerID, model.RoleBuyer, 0)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		session, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, buyerID, session.UserID)
		assert.Equal(t, model.RoleBuyer, session.Role)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, model.ErrNotAuthenticated)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, uuid.NewString())
		assert.ErrorIs(t, err, model.ErrNotAuthenticated)
	})

	t.Run("store failure", func(t *testing.T) {
		broken := newFakeSessionStore()
		broken.err = errors.New("connection refused")
		svc := NewService(broken, zerolog.Nop())

		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, model.ErrDataUnavailable)
	})
}

func TestRequireRole(t *testing.T) {
	ctx := context.Background()
	store := newFakeSessionStore()
	svc := NewService(store, zerolog.Nop())

	buyerToken, err := store.Create(ctx, uuid.New(), model.RoleBuyer, 0)
	require.NoError(t, err)
	sellerToken, err := store.Create(ctx, uuid.New(), model.RoleSeller, 0)
	require.NoError(t, err)
	adminToken, err := store.Create(ctx, uuid.New(), model.RoleAdmin, 0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		role    model.Role
		wantErr error
	}{
		{name: "seller passes seller check", token: sellerToken, role: model.RoleSeller},
		{name: "buyer fails seller check", token: buyerToken, role: model.RoleSeller, wantErr: model.ErrForbidden},
		{name: "admin passes seller check", token: adminToken, role: model.RoleSeller},
		{name: "admin passes buyer check", token: adminToken, role: model.RoleBuyer},
		{name: "missing token", token: "", role: model.RoleSeller, wantErr: model.ErrNotAuthenticated},
		{name: "unknown token", token: uuid.NewString(), role: model.RoleSeller, wantErr: model.ErrNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.RequireRole(ctx, tt.token, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.token, session.Token)
		})
	}
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc", sessionKey("abc"))
}
