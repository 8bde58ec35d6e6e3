package cache

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/obs"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisPlanCache stores computed plans under "plan:<fingerprint>" with a TTL.
type RedisPlanCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPlanCache(rdb *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{rdb: rdb, ttl: ttl}
}

// NewRedisPlanCacheFromURL connects using a redis:// URL.
func NewRedisPlanCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisPlanCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis plan cache: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis plan cache: ping: %w", err)
	}

	return NewRedisPlanCache(rdb, ttl), nil
}

func (c *RedisPlanCache) key(fingerprint string) string { return "plan:" + fingerprint }

func (c *RedisPlanCache) GetPlan(ctx context.Context, fingerprint string) (_ *domain.Plan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.redis.Get")(&err)

	b, err := c.rdb.Get(ctx, c.key(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}

	plan, err := decodePlan(b)
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}
	return plan, true, nil
}

func (c *RedisPlanCache) PutPlan(ctx context.Context, fingerprint string, plan *domain.Plan) error {
	b, err := encodePlan(plan)
	if err != nil {
		return fmt.Errorf("put plan cache: encode: %w", err)
	}

	if err := c.rdb.Set(ctx, c.key(fingerprint), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("put plan cache: %w", err)
	}
	return nil
}

func (c *RedisPlanCache) Close() error { return c.rdb.Close() }
