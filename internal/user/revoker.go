package user

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisTokenRevoker keeps revoked token ids until the token would have expired anyway.
type RedisTokenRevoker struct {
	db *redis.Client
}

func NewRedisTokenRevoker(db *redis.Client) *RedisTokenRevoker {
	return &RedisTokenRevoker{db: db}
}

func revokedKey(jti string) string {
	return fmt.Sprintf("revoked:%s", jti)
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.db.Set(ctx, revokedKey(jti), 1, ttl).Err()
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.db.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type NoopTokenRevoker struct{}

func (NoopTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return nil
}

func (NoopTokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}
