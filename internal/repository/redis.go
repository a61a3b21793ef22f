package repository

import (
	"context"
	"fmt"
	"time"

	"campusinfo/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps revoked token ids in Redis, keyed until the token
// would have expired anyway.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisClient builds a client from config.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func revokedKey(jti string) string {
	return "revoked_token:" + jti
}

func (r *RedisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if ttl <= 0 {
		// Token is already expired; nothing to track.
		return nil
	}
	if err := r.client.Set(ctx, revokedKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation in redis: %w", err)
	}
	return nil
}

func (r *RedisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if r.client == nil {
		return false, fmt.Errorf("redis client is nil")
	}
	_, err := r.client.Get(ctx, revokedKey(jti)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revocation in redis: %w", err)
	}
	return true, nil
}

// Ping verifies the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
