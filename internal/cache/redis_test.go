package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fjod/go_pos/internal/catalog"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func sampleListing() []catalog.Item {
	return []catalog.Item{
		{Name: "Milk", Price: decimal.NewFromFloat(25.00), Stock: 50, Category: catalog.CategoryDairy, BOGO: true, Variant: catalog.Perishable("2025-05-01")},
		{Name: "Cheese", Price: decimal.NewFromFloat(120.00), Stock: 30, Category: catalog.CategoryDairy, Variant: catalog.Standard()},
	}
}

func TestGet_Success(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	data, err := json.Marshal(sampleListing())
	require.NoError(t, err)
	require.NoError(t, mr.Set(cacheKey(catalog.CategoryDairy), string(data)))

	items, err := cache.Get(ctx, catalog.CategoryDairy)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.NewFromFloat(25.00)))
	assert.Equal(t, catalog.KindPerishable, items[0].Variant.Kind)
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	items, err := cache.Get(context.Background(), catalog.CategorySnacks)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, items)
}

func TestGet_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, mr.Set(cacheKey(catalog.CategoryDairy), "{not json"))

	_, err := cache.Get(context.Background(), catalog.CategoryDairy)
	require.ErrorContains(t, err, "unmarshal listing failed")
}

func TestSet_RoundTrip(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, catalog.CategoryDairy, sampleListing()))
	assert.True(t, mr.Exists(cacheKey(catalog.CategoryDairy)))

	items, err := cache.Get(ctx, catalog.CategoryDairy)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSet_HasTTL(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, cache.Set(context.Background(), catalog.CategoryAll, sampleListing()))

	ttl := mr.TTL(cacheKey(catalog.CategoryAll))
	assert.Greater(t, ttl.Minutes(), 14.0)
}

func TestDelete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, catalog.CategoryDairy, sampleListing()))
	require.NoError(t, cache.Delete(ctx, catalog.CategoryDairy))

	assert.False(t, mr.Exists(cacheKey(catalog.CategoryDairy)))
}
