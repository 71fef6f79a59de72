package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "github.com/rahultadvi/chatflow/internal/adapters/redis"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

func newTestCache(t *testing.T, opts ...redisadapter.Option) (*redisadapter.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redisadapter.NewFromClient(client, opts...), mr
}

func TestCache_PutGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "an empty cache misses")

	listing := []*flow.Record{
		{ID: "a1", Name: "welcome", Trigger: "new_conversation"},
		{ID: "a2", Name: "follow-up", Trigger: "keyword_match"},
	}
	require.NoError(t, cache.Put(ctx, listing))

	got, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "welcome", got[0].Name)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, []*flow.Record{{ID: "a1", Name: "x"}}))
	require.NoError(t, cache.Invalidate(ctx))

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalidating an empty cache is fine too.
	require.NoError(t, cache.Invalidate(ctx))
}

func TestCache_TTL(t *testing.T) {
	cache, mr := newTestCache(t, redisadapter.WithTTL(30*time.Second), redisadapter.WithKey("listing:test"))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, []*flow.Record{{ID: "a1", Name: "x"}}))
	assert.Equal(t, 30*time.Second, mr.TTL("listing:test"))

	mr.FastForward(31 * time.Second)

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "an expired listing misses")
}

func TestCache_CorruptEntryBehavesLikeMiss(t *testing.T) {
	cache, mr := newTestCache(t, redisadapter.WithKey("listing:test"))

	require.NoError(t, mr.Set("listing:test", "not json"))

	_, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
