package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	return s, redis.NewClient(&redis.Options{Addr: s.Addr()})
}

func TestJSONCache_GetMiss(t *testing.T) {
	_, client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "salon", time.Minute)

	result, err := cache.Get(context.Background(), "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestJSONCache_SetAndGet(t *testing.T) {
	_, client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "salon", time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "glam", &testItem{Name: "Glam", Value: 42}))

	result, err := cache.Get(ctx, "glam")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, testItem{Name: "Glam", Value: 42}, *result)
}

func TestJSONCache_TTL(t *testing.T) {
	s, client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "preview", 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "3", &testItem{Name: "x"}))
	assert.Equal(t, 5*time.Minute, s.TTL("preview:3"))

	s.FastForward(6 * time.Minute)

	result, err := cache.Get(ctx, "3")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestJSONCache_Delete(t *testing.T) {
	_, client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "salon", time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "glam", &testItem{Name: "Glam"}))
	require.NoError(t, cache.Delete(ctx, "glam"))

	result, err := cache.Get(ctx, "glam")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestJSONCache_CorruptValue(t *testing.T) {
	s, client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "salon", time.Minute)

	require.NoError(t, s.Set("salon:glam", "{not json"))

	_, err := cache.Get(context.Background(), "glam")
	assert.Error(t, err)
}

func TestJSONCache_RedisDown(t *testing.T) {
	s, client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "salon", time.Minute)
	s.Close()

	_, err := cache.Get(context.Background(), "glam")
	assert.Error(t, err)
}

func TestJSONCache_NilClient(t *testing.T) {
	cache := NewJSONCache[testItem](nil, "salon", time.Minute)
	ctx := context.Background()

	result, err := cache.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, cache.Set(ctx, "key", &testItem{}))
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestJSONCache_NilCache(t *testing.T) {
	var cache *JSONCache[testItem]
	ctx := context.Background()

	result, err := cache.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, cache.Set(ctx, "key", &testItem{}))
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestJSONCache_KeyFormat(t *testing.T) {
	_, client := setupTestRedis(t)
	cache := NewJSONCache[testItem](client, "template", time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "7", &testItem{Name: "elegant"}))

	val, err := client.Get(ctx, "template:7").Result()
	require.NoError(t, err)
	assert.Contains(t, val, "elegant")
}
