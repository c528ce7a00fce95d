package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LimiterConfig bounds failed logins per client key.
type LimiterConfig struct {
	MaxAttempts   int
	AttemptWindow time.Duration
	LockDuration  time.Duration
}

// LoginLimiter counts failed logins in Redis and locks a key out once the
// limit is reached inside the attempt window.
// Key format: login_attempts:<key> and login_lock:<key>
type LoginLimiter struct {
	client *redis.Client
	cfg    LimiterConfig
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client, cfg LimiterConfig) *LoginLimiter {
	return &LoginLimiter{client: client, cfg: cfg}
}

// LockedFor returns the remaining lock time for key, or zero.
func (l *LoginLimiter) LockedFor(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := l.client.PTTL(ctx, lockKey(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("login limiter: lock ttl: %w", err)
	}
	// PTTL reports -2 for a missing key and -1 for a key without expiry.
	if ttl <= 0 {
		return 0, nil
	}
	return ttl, nil
}

// RecordFailure increments the attempt counter. Reaching the limit sets the
// lock and clears the counter.
func (l *LoginLimiter) RecordFailure(ctx context.Context, key string) (int, error) {
	n, err := l.client.Incr(ctx, attemptsKey(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("login limiter: count attempt: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, attemptsKey(key), l.cfg.AttemptWindow).Err(); err != nil {
			return 0, fmt.Errorf("login limiter: set window: %w", err)
		}
	}

	remaining := l.cfg.MaxAttempts - int(n)
	if remaining > 0 {
		return remaining, nil
	}

	if err := l.client.Set(ctx, lockKey(key), "1", l.cfg.LockDuration).Err(); err != nil {
		return 0, fmt.Errorf("login limiter: set lock: %w", err)
	}
	if err := l.client.Del(ctx, attemptsKey(key)).Err(); err != nil {
		return 0, fmt.Errorf("login limiter: clear attempts: %w", err)
	}
	return 0, nil
}

// Reset forgets earlier failures for key. An active lock is kept.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, attemptsKey(key)).Err(); err != nil {
		return fmt.Errorf("login limiter: reset: %w", err)
	}
	return nil
}

func attemptsKey(key string) string { return "login_attempts:" + key }
func lockKey(key string) string     { return "login_lock:" + key }
