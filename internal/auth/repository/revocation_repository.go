package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

type redisRevocationRepository struct {
	client *redis.Client
}

// NewRedisRevocationRepository stores revoked token IDs as Redis keys that
// expire together with the token.
func NewRedisRevocationRepository(client *redis.Client) RevocationRepository {
	return &redisRevocationRepository{client: client}
}

func (r *redisRevocationRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(context.WithoutCancel(ctx), revokedKeyPrefix+tokenID, 1, ttl).Err()
}

func (r *redisRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type noopRevocationRepository struct{}

// NewNoopRevocationRepository is used when Redis is not configured: nothing
// is ever revoked and logout is a client-side discard.
func NewNoopRevocationRepository() RevocationRepository {
	return noopRevocationRepository{}
}

func (noopRevocationRepository) Revoke(context.Context, string, time.Time) error { return nil }

func (noopRevocationRepository) IsRevoked(context.Context, string) (bool, error) { return false, nil }
