// console/db/session_store_test.go
package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	_, ok, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, TokenKey, "jwt"))
	require.NoError(t, store.Set(ctx, UserKey, `{"username":"admin"}`))
	v, ok, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt", v)

	require.NoError(t, store.Remove(ctx, TokenKey, UserKey))
	_, ok, _ = store.Get(ctx, UserKey)
	assert.False(t, ok)
}

func TestSealRoundTrip(t *testing.T) {
	require.NoError(t, SetEncryptionKey([]byte(testKey)))

	sealed, err := sealString("secret-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "secret-token")

	plain, err := openString(sealed)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", plain)

	_, err = openString("bm90LWVuY3J5cHRlZA==")
	assert.Error(t, err)

	assert.Error(t, SetEncryptionKey([]byte("short")))
}

// Runs only when REDIS_ADDR points at a reachable server.
func TestRedisSessionStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	require.NoError(t, SetEncryptionKey([]byte(testKey)))

	ctx := context.Background()
	store := NewRedisSessionStore(client, "test-"+time.Now().Format("150405.000"), time.Minute)
	require.NoError(t, store.Set(ctx, TokenKey, "jwt"))

	v, ok, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jwt", v)

	require.NoError(t, store.Remove(ctx, TokenKey))
	_, ok, err = store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
