// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-roller/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing. The
// miniredis handle is returned so tests can inspect keys and fast-forward TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

// CreateTestRedisClientWithContext creates an in-memory Redis client after
// letting the test populate initial data
func CreateTestRedisClientWithContext(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	client, mr := CreateTestRedisClient(t)
	if setupFunc != nil {
		setupFunc(mr)
	}
	return client, mr
}
