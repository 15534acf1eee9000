package repository_test

import (
	"context"
	"testing"
	"time"

	"sociopedia-backend/internal/auth/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRevocation_RevokeAndExpire(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	repo := repository.NewRedisRevocationRepository(client)

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocation_AlreadyExpiredIsNoop(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	repo := repository.NewRedisRevocationRepository(client)

	require.NoError(t, repo.Revoke(ctx, "old", time.Now().Add(-time.Second)))
	assert.False(t, mr.Exists("auth:revoked:old"))
}

func TestRedisRevocation_ServerDown(t *testing.T) {
	mr, client := setupRedis(t)
	repo := repository.NewRedisRevocationRepository(client)
	mr.Close()

	_, err := repo.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}

func TestNoopRevocation(t *testing.T) {
	repo := repository.NewNoopRevocationRepository()
	require.NoError(t, repo.Revoke(context.Background(), "x", time.Now().Add(time.Hour)))
	revoked, err := repo.IsRevoked(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, revoked)
}
