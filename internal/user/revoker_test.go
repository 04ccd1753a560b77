package user

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisTokenRevoker_ExpiredTokenIsNotStored(t *testing.T) {
	revoker := NewRedisTokenRevoker(unreachableRedis(t))

	assert.NoError(t, revoker.Revoke(context.Background(), "jti-1", 0))
	assert.NoError(t, revoker.Revoke(context.Background(), "jti-1", -time.Second))
}

func TestRedisTokenRevoker_StoreFailure(t *testing.T) {
	revoker := NewRedisTokenRevoker(unreachableRedis(t))

	assert.Error(t, revoker.Revoke(context.Background(), "jti-1", time.Minute))
	revoked, err := revoker.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevoker_Key(t *testing.T) {
	assert.Equal(t, "revoked:abc", revokedKey("abc"))
}

// Runs against a live server when REDIS_TEST_ADDR is set.
func TestRedisTokenRevoker_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })
	ctx := context.Background()
	require.NoError(t, rdb.Ping(ctx).Err())

	revoker := NewRedisTokenRevoker(rdb)
	jti := uuid.NewString()
	t.Cleanup(func() { rdb.Del(ctx, revokedKey(jti)) })

	revoked, err := revoker.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, revoker.Revoke(ctx, jti, time.Minute))
	revoked, err = revoker.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := rdb.TTL(ctx, revokedKey(jti)).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}
