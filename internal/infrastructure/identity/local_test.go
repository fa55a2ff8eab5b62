package identity

import (
	"context"
	"testing"
	"time"

	"maternacare/config"
	"maternacare/internal/infrastructure/kv"
	"maternacare/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) Provider {
	t.Helper()
	tokens := jwt.NewTokenService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Hour,
	})
	return NewLocalProvider(kv.NewMemoryStore(), tokens)
}

func TestLocalProvider_RegisterAndAuthenticate(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	userID, err := provider.Register(ctx, "amina@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	require.NoError(t, provider.Authenticate(ctx, "amina@example.com", "secret123"))

	err = provider.Authenticate(ctx, "amina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = provider.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalProvider_IssueAndVerifyToken(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	userID, err := provider.Register(ctx, "amina@example.com", "secret123")
	require.NoError(t, err)

	token, err := provider.IssueToken(ctx, userID)
	require.NoError(t, err)

	resolved, err := provider.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestLocalProvider_VerifyGarbageToken(t *testing.T) {
	provider := newTestProvider(t)

	_, err := provider.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalProvider_RevokeInvalidatesOutstandingTokens(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	userID, err := provider.Register(ctx, "amina@example.com", "secret123")
	require.NoError(t, err)

	token1, err := provider.IssueToken(ctx, userID)
	require.NoError(t, err)
	token2, err := provider.IssueToken(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, provider.Revoke(ctx, userID))

	_, err = provider.Verify(ctx, token1)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	_, err = provider.Verify(ctx, token2)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLocalProvider_RemoveDeletesCredentials(t *testing.T) {
	provider := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Register(ctx, "amina@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, provider.Remove(ctx, "amina@example.com"))

	err = provider.Authenticate(ctx, "amina@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
