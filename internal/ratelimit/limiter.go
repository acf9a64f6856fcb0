package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed window: 10 requests per 15 minutes per purpose+IP.
const (
	maxRequests = 10
	window      = 15 * time.Minute
)

// Limiter is a Redis-backed fixed-window IP rate limiter used on the
// credential endpoints. Limiter failures must never block a request; callers
// log the error and continue.
type Limiter struct {
	client *redis.Client
}

func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client}
}

func requestKey(purpose, ip string) string {
	return fmt.Sprintf("ratelimit:%s:%s", purpose, ip)
}

// Check reports whether the given IP has exceeded the request budget for the
// purpose within the current window.
func (l *Limiter) Check(ctx context.Context, purpose, ip string) (bool, error) {
	count, err := l.client.Get(ctx, requestKey(purpose, ip)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read rate limit counter: %w", err)
	}

	return count >= maxRequests, nil
}

// Record counts one request against the IP's budget. The window TTL is set
// on first increment only so the window does not slide.
func (l *Limiter) Record(ctx context.Context, purpose, ip string) error {
	key := requestKey(purpose, ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			return fmt.Errorf("failed to set rate limit TTL: %w", err)
		}
	}

	return nil
}
