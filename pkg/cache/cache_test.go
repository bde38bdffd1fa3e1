package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentalease/pkg/cache"
)

func TestNilStoreIsNoop(t *testing.T) {
	var s *cache.Store
	ctx := context.Background()

	var dest string
	assert.False(t, s.Get(ctx, "k", &dest))
	assert.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, s.Del(ctx, "k"))
	assert.NoError(t, s.Close())
}

func TestRememberCallsLoaderOnMiss(t *testing.T) {
	var s *cache.Store
	calls := 0

	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := cache.Remember(context.Background(), s, "hostings:all", load)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, got)
	}
	assert.Equal(t, 2, calls)
}

func TestRememberPropagatesLoaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := cache.Remember(context.Background(), nil, "k", func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestUnreachableRedisDegradesToLoader(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := cache.New(rdb, time.Minute)
	defer s.Close()

	got, err := cache.Remember(context.Background(), s, "hosting:1", func(context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

// memClient serves Get, Set and Del from a map and records the calls.
type memClient struct {
	redis.UniversalClient

	mu   sync.Mutex
	data map[string]string
	ops  []string
}

func newMemClient() *memClient { return &memClient{data: map[string]string{}} }

func (c *memClient) Get(_ context.Context, key string) *redis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, "get "+key)
	v, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *memClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, "set "+key)
	c.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (c *memClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.ops = append(c.ops, "del "+k)
		delete(c.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (c *memClient) Close() error { return nil }

func TestRememberCachesOnMiss(t *testing.T) {
	rdb := newMemClient()
	s := cache.New(rdb, time.Minute)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := cache.Remember(ctx, s, "hostings:all", load)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, got)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"get hostings:all", "set hostings:all", "get hostings:all"}, rdb.ops)
}

func TestRememberVersionDropsFillRacedByWrite(t *testing.T) {
	rdb := newMemClient()
	s := cache.New(rdb, time.Minute)
	ctx := context.Background()
	var v cache.Version

	// A delete lands while the list is loading: it bumps the version and
	// invalidates before the stale snapshot is written.
	got, err := cache.RememberVersion(ctx, s, &v, "hostings:all", func(ctx context.Context) ([]string, error) {
		v.Bump()
		require.NoError(t, s.Del(ctx, "hostings:all"))
		return []string{"deleted-one"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"deleted-one"}, got)
	assert.NotContains(t, rdb.data, "hostings:all")
	assert.Equal(t, "del hostings:all", rdb.ops[len(rdb.ops)-1])

	// Without a concurrent write the fill stays.
	_, err = cache.RememberVersion(ctx, s, &v, "hostings:all", func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, `["fresh"]`, rdb.data["hostings:all"])
}
