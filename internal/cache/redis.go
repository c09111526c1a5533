package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fjod/go_pos/internal/catalog"
	"github.com/redis/go-redis/v9"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisCache) Get(ctx context.Context, category catalog.Category) ([]catalog.Item, error) {
	key := cacheKey(category)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []catalog.Item
	if err2 := json.Unmarshal(data, &items); err2 != nil {
		return nil, fmt.Errorf("unmarshal listing failed: %w", err2)
	}

	return items, nil
}

func (r RedisCache) Set(ctx context.Context, category catalog.Category, items []catalog.Item) error {
	key := cacheKey(category)
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal listing failed: %w", err)
	}

	// jitter spreads expiry so listings do not all fall out at once
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if ret := r.client.Set(ctx, key, string(data), ttl); ret.Err() != nil {
		return fmt.Errorf("redis set failed: %w", ret.Err())
	}
	return nil
}

func (r RedisCache) Delete(ctx context.Context, category catalog.Category) error {
	if err := r.client.Del(ctx, cacheKey(category)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(category catalog.Category) string {
	return fmt.Sprintf("catalog:%s", category)
}
