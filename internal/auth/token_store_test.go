package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenStore(t *testing.T) (TokenStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewTokenStore(client), mr
}

func TestTokenStoreSaveAndExists(t *testing.T) {
	store, _ := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-a", 1, time.Hour))

	known, err := store.Exists(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, known)

	known, err = store.Exists(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, known)
}

func TestTokenStoreNeverStoresPlaintext(t *testing.T) {
	store, mr := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "super-secret-refresh-token", 1, time.Hour))

	for _, key := range mr.Keys() {
		assert.NotContains(t, key, "super-secret-refresh-token")
	}
}

func TestTokenStoreRevoke(t *testing.T) {
	store, _ := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-a", 1, time.Hour))
	require.NoError(t, store.Revoke(ctx, "token-a"))

	known, err := store.Exists(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, known)

	// revoking an unknown token is not an error
	assert.NoError(t, store.Revoke(ctx, "token-a"))
	assert.NoError(t, store.Revoke(ctx, "never-saved"))
}

func TestTokenStoreRevokeAllForUser(t *testing.T) {
	store, _ := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice-1", 1, time.Hour))
	require.NoError(t, store.Save(ctx, "alice-2", 1, time.Hour))
	require.NoError(t, store.Save(ctx, "bob-1", 2, time.Hour))

	require.NoError(t, store.RevokeAllForUser(ctx, 1))

	for _, token := range []string{"alice-1", "alice-2"} {
		known, err := store.Exists(ctx, token)
		require.NoError(t, err)
		assert.False(t, known, token)
	}

	known, err := store.Exists(ctx, "bob-1")
	require.NoError(t, err)
	assert.True(t, known)
}

func TestTokenStoreEntriesExpire(t *testing.T) {
	store, mr := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-a", 1, time.Minute))

	mr.FastForward(2 * time.Minute)

	known, err := store.Exists(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, known)
}
