package ratelimiter

import (
	"context"
	redisrepo "medadmin-service/internal/app/services/shared/redis"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLimiter(t *testing.T, maxAttempts int) *AttemptLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := NewAttemptLimiter(redisrepo.NewRedisRepository(client), zap.NewNop(), "login", time.Minute, maxAttempts)
	fixed := time.Date(2026, 1, 1, 8, 0, 10, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }
	return limiter
}

func TestAttemptLimiter_BlocksAfterMaxFailures(t *testing.T) {
	limiter := newTestLimiter(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		blocked, _, err := limiter.Blocked(ctx, "doctor@yanyucloud.com")
		require.NoError(t, err)
		assert.False(t, blocked)
		require.NoError(t, limiter.RecordFailure(ctx, "doctor@yanyucloud.com"))
	}

	blocked, retryAfter, err := limiter.Blocked(ctx, " DOCTOR@yanyucloud.com ")
	require.NoError(t, err)
	assert.True(t, blocked)
	assert.Equal(t, 50*time.Second, retryAfter)

	blocked, _, err = limiter.Blocked(ctx, "admin@yanyucloud.com")
	require.NoError(t, err)
	assert.False(t, blocked, "other subjects keep their own quota")
}

func TestAttemptLimiter_BlockedDoesNotCount(t *testing.T) {
	limiter := newTestLimiter(t, 1)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		blocked, _, err := limiter.Blocked(ctx, "doctor@yanyucloud.com")
		require.NoError(t, err)
		assert.False(t, blocked)
	}
}

func TestAttemptLimiter_Reset(t *testing.T) {
	limiter := newTestLimiter(t, 1)
	ctx := context.Background()

	require.NoError(t, limiter.RecordFailure(ctx, "doctor@yanyucloud.com"))
	blocked, _, err := limiter.Blocked(ctx, "doctor@yanyucloud.com")
	require.NoError(t, err)
	require.True(t, blocked)

	require.NoError(t, limiter.Reset(ctx, "Doctor@yanyucloud.com"))
	blocked, _, err = limiter.Blocked(ctx, "doctor@yanyucloud.com")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestAttemptLimiter_Disabled(t *testing.T) {
	limiter := newTestLimiter(t, 0)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "x"))
		blocked, _, err := limiter.Blocked(ctx, "x")
		require.NoError(t, err)
		assert.False(t, blocked)
	}
}

func TestAttemptLimiter_NilSafe(t *testing.T) {
	var limiter *AttemptLimiter

	blocked, _, err := limiter.Blocked(context.Background(), "x")

	assert.NoError(t, err)
	assert.False(t, blocked)
	assert.NoError(t, limiter.RecordFailure(context.Background(), "x"))
	assert.NoError(t, limiter.Reset(context.Background(), "x"))
}
