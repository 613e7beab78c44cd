package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/cart"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
)

// RedisCartStore keeps one hash per session (field = product id,
// value = JSON cart line) so carts survive process restarts and are
// shared between instances. The TTL is refreshed on every write,
// expiring abandoned sessions.
type RedisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{rdb: rdb, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) ChangeQuantity(ctx context.Context, sessionID string, p domain.Product, delta int) (domain.Cart, error) {
	key := cartKey(sessionID)

	var current domain.CartLine
	raw, err := s.rdb.HGet(ctx, key, p.ID).Result()
	switch {
	case err == redis.Nil:
		// absent product counts as quantity zero
	case err != nil:
		return domain.Cart{}, fmt.Errorf("hget %s: %w", key, err)
	default:
		if err := json.Unmarshal([]byte(raw), &current); err != nil {
			return domain.Cart{}, fmt.Errorf("unmarshal line: %w", err)
		}
	}

	qty := current.Quantity + delta
	if qty <= 0 {
		if err := s.rdb.HDel(ctx, key, p.ID).Err(); err != nil {
			return domain.Cart{}, fmt.Errorf("hdel %s: %w", key, err)
		}
	} else {
		line, err := json.Marshal(domain.CartLine{Product: p, Quantity: qty})
		if err != nil {
			return domain.Cart{}, fmt.Errorf("marshal line: %w", err)
		}
		if err := s.rdb.HSet(ctx, key, p.ID, line).Err(); err != nil {
			return domain.Cart{}, fmt.Errorf("hset %s: %w", key, err)
		}
	}

	if s.ttl > 0 {
		_ = s.rdb.Expire(ctx, key, s.ttl).Err()
	}

	return s.Snapshot(ctx, sessionID)
}

func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("del %s: %w", cartKey(sessionID), err)
	}
	return nil
}

func (s *RedisCartStore) Snapshot(ctx context.Context, sessionID string) (domain.Cart, error) {
	fields, err := s.rdb.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("hgetall %s: %w", cartKey(sessionID), err)
	}

	lines := make([]domain.CartLine, 0, len(fields))
	for _, raw := range fields {
		var line domain.CartLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			return domain.Cart{}, fmt.Errorf("unmarshal line: %w", err)
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Product.ID < lines[j].Product.ID
	})

	return domain.Cart{Lines: lines}, nil
}

var _ cart.Store = (*RedisCartStore)(nil)
