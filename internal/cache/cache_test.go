package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/katalvlaran/algotrace/internal/cache"
	"github.com/katalvlaran/algotrace/internal/config"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises behaviour every backend must share.
func runStoreContract(t *testing.T, s cache.Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	got, _, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestKey(t *testing.T) {
	k := cache.Key("karatsuba", "4", "1234", "5678")
	assert.Equal(t, k, cache.Key("karatsuba", "4", "1234", "5678"))
	assert.Regexp(t, `^karatsuba:[0-9a-f]{16}$`, k)
	assert.NotEqual(t, cache.Key("x", "ab", "c"), cache.Key("x", "a", "bc"))
	assert.NotEqual(t, cache.Key("karatsuba", "1"), cache.Key("closest-pair", "1"))
}

func TestMemory_Contract(t *testing.T) {
	runStoreContract(t, cache.NewMemory(4))
}

func TestMemory_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(2)
	require.NoError(t, m.Set(ctx, "a", []byte("1")))
	require.NoError(t, m.Set(ctx, "b", []byte("2")))

	_, ok, _ := m.Get(ctx, "a") // a is now the most recent
	require.True(t, ok)
	require.NoError(t, m.Set(ctx, "c", []byte("3")))

	assert.Equal(t, 2, m.Len())
	_, ok, _ = m.Get(ctx, "b")
	assert.False(t, ok, "b should have been evicted")
	_, ok, _ = m.Get(ctx, "a")
	assert.True(t, ok)
}

func TestMemory_OverwriteRefreshesRecency(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(2)
	require.NoError(t, m.Set(ctx, "a", []byte("1")))
	require.NoError(t, m.Set(ctx, "b", []byte("2")))
	require.NoError(t, m.Set(ctx, "a", []byte("3")))
	require.NoError(t, m.Set(ctx, "c", []byte("4")))

	v, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("3"), v)
	_, ok, _ = m.Get(ctx, "b")
	assert.False(t, ok, "b should have been evicted")
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(0)
	buf := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", buf))
	buf[0] = 'X'

	got, _, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), got)
	got[1] = 'Y'
	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemory_Closed(t *testing.T) {
	m := cache.NewMemory(1)
	require.NoError(t, m.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, m.Close())
	assert.Zero(t, m.Len())
	_, _, err := m.Get(context.Background(), "k")
	assert.ErrorIs(t, err, cache.ErrClosed)
	assert.ErrorIs(t, m.Set(context.Background(), "k", nil), cache.ErrClosed)
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", (g+i)%16)
				_ = m.Set(ctx, key, []byte(key))
				if v, ok, err := m.Get(ctx, key); err == nil && ok {
					assert.Equal(t, key, string(v))
				}
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, m.Len(), 8)
}

func TestNop(t *testing.T) {
	var s cache.Store = cache.Nop{}
	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	_, ok, err := s.Get(context.Background(), "k")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, s.Close())
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedis_Contract(t *testing.T) {
	_, client := newMiniredis(t)
	s := cache.NewRedisFromClient(client)
	defer s.Close()

	require.NoError(t, s.Ping(context.Background()))
	runStoreContract(t, s)
}

func TestRedis_PrefixAndTTL(t *testing.T) {
	mr, client := newMiniredis(t)
	s := cache.NewRedisFromClient(client, cache.WithPrefix("custom:"), cache.WithTTL(time.Second))
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	assert.True(t, mr.Exists("custom:k"))
	assert.False(t, mr.Exists(cache.DefaultPrefix+"k"))

	mr.FastForward(2 * time.Second)
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry should have expired")
}

func TestRedis_DefaultPrefix(t *testing.T) {
	mr, client := newMiniredis(t)
	s := cache.NewRedisFromClient(client)
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	assert.True(t, mr.Exists("algotrace:trace:k"))
	assert.Zero(t, mr.TTL("algotrace:trace:k"))
}

func TestRedis_BackendDown(t *testing.T) {
	mr, client := newMiniredis(t)
	s := cache.NewRedisFromClient(client)
	defer s.Close()
	mr.Close()

	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, s.Set(context.Background(), "k", []byte("v")))
}

func TestOpen(t *testing.T) {
	mr, _ := newMiniredis(t)

	c := config.Default().Cache
	s, err := cache.Open(c)
	require.NoError(t, err)
	assert.IsType(t, &cache.Memory{}, s)

	c.Backend = config.CacheNone
	s, err = cache.Open(c)
	require.NoError(t, err)
	assert.IsType(t, cache.Nop{}, s)

	c.Backend = config.CacheRedis
	c.RedisAddr = mr.Addr()
	s, err = cache.Open(c)
	require.NoError(t, err)
	defer s.Close()
	runStoreContract(t, s)
	assert.True(t, mr.Exists(c.Prefix+"k"))
	assert.Equal(t, c.TTL.Std(), mr.TTL(c.Prefix+"k"))

	c.Backend = "disk"
	_, err = cache.Open(c)
	assert.Error(t, err)
}
