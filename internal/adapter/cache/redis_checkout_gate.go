package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/usecase"
)

// RedisCheckoutGate serializes checkout attempts across instances via
// SETNX. The TTL bounds how long a crashed workflow can keep a session
// locked.
type RedisCheckoutGate struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCheckoutGate(rdb *redis.Client, ttl time.Duration) *RedisCheckoutGate {
	return &RedisCheckoutGate{rdb: rdb, ttl: ttl}
}

func (g *RedisCheckoutGate) TryAcquire(ctx context.Context, sessionID string) (bool, error) {
	return g.rdb.SetNX(ctx, "checkout:gate:"+sessionID, "1", g.ttl).Result()
}

func (g *RedisCheckoutGate) Release(ctx context.Context, sessionID string) error {
	return g.rdb.Del(ctx, "checkout:gate:"+sessionID).Err()
}

var _ usecase.CheckoutGate = (*RedisCheckoutGate)(nil)
