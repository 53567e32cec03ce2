package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCommander is the subset of redis.Client the limiter needs; narrowed
// for testability.
type redisCommander interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	PExpire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisLimiter is a fixed-window counter backed by a shared Redis instance,
// for multi-instance deployments where per-process memory would undercount.
// INCR is atomic across instances; the window starts at the first hit.
type RedisLimiter struct {
	client redisCommander
	max    int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, max: max, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:chat:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		// Fail open: a Redis outage should degrade rate limiting, not chat.
		log.Printf("rate limiter: redis INCR failed for %s: %v", key, err)
		return true, err
	}

	if count == 1 {
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			log.Printf("rate limiter: redis PEXPIRE failed for %s: %v", key, err)
		}
	} else if count > int64(l.max) {
		// A PEXPIRE failure at creation leaves the key without a TTL, which
		// would deny this client forever. Re-arm the window before denying.
		if ttl, err := l.client.PTTL(ctx, redisKey).Result(); err == nil && ttl < 0 {
			log.Printf("rate limiter: re-arming missing TTL for %s", key)
			if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
				return true, err
			}
		}
	}

	return count <= int64(l.max), nil
}
