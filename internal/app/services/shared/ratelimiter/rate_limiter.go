package ratelimiter

import (
	"context"
	"fmt"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttemptLimiter counts failed attempts per subject in fixed windows stored in redis.
type AttemptLimiter struct {
	redis       contracts.RedisRepository
	log         *zap.Logger
	group       string
	window      time.Duration
	maxAttempts int
	now         func() time.Time
}

func NewAttemptLimiter(redis contracts.RedisRepository, logger *zap.Logger, group string, window time.Duration, maxAttempts int) *AttemptLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &AttemptLimiter{
		redis:       redis,
		log:         logger,
		group:       strings.ToUpper(strings.TrimSpace(group)),
		window:      window,
		maxAttempts: maxAttempts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Blocked reports whether subject has used up its failures in the current
// window, together with the time left until the window ends. It does not
// count anything. A limiter with maxAttempts <= 0 never blocks.
func (l *AttemptLimiter) Blocked(ctx context.Context, subject string) (bool, time.Duration, error) {
	if l == nil || l.maxAttempts <= 0 {
		return false, 0, nil
	}

	key, retryAfter := l.windowKey(subject)
	raw, err := l.redis.Get(ctx, key)
	if err != nil {
		l.log.Error("AttemptLimiter.Blocked read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}
	if raw == "" {
		return false, 0, nil
	}

	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, 0, exceptions.ErrRedisGet(err)
	}
	if count >= int64(l.maxAttempts) {
		return true, retryAfter, nil
	}
	return false, 0, nil
}

// RecordFailure counts one failed attempt for subject in the current window.
func (l *AttemptLimiter) RecordFailure(ctx context.Context, subject string) error {
	if l == nil || l.maxAttempts <= 0 {
		return nil
	}

	key, _ := l.windowKey(subject)
	if _, err := l.redis.IncrementWithTTL(ctx, key, l.window+time.Second); err != nil {
		l.log.Error("AttemptLimiter.RecordFailure increment failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Reset forgets the failures of subject in the current window.
func (l *AttemptLimiter) Reset(ctx context.Context, subject string) error {
	if l == nil || l.maxAttempts <= 0 {
		return nil
	}

	key, _ := l.windowKey(subject)
	return l.redis.Delete(ctx, key)
}

func (l *AttemptLimiter) windowKey(subject string) (string, time.Duration) {
	subject = strings.ToLower(strings.TrimSpace(subject))
	now := l.now()
	windowSec := int64(l.window / time.Second)
	if windowSec <= 0 {
		windowSec = 1
	}
	windowID := now.Unix() / windowSec
	nextWindowStart := time.Unix((windowID+1)*windowSec, 0)
	return fmt.Sprintf("%s:%s:%d", l.group, subject, windowID), nextWindowStart.Sub(now)
}
