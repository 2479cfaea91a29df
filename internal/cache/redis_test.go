package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	orig := redisNewClient
	t.Cleanup(func() { redisNewClient = orig })

	t.Run("ping ok", func(t *testing.T) {
		var gotOpt *redis.Options
		fake := &FakeCache{
			PingFn: func(context.Context) *redis.StatusCmd {
				return redis.NewStatusResult("PONG", nil)
			},
		}
		redisNewClient = func(opt *redis.Options) Cache {
			gotOpt = opt
			return fake
		}
		client, err := NewRedisClient("localhost:6379", "pw", 2)
		require.NoError(t, err)
		require.Same(t, Cache(fake), client)
		require.Equal(t, "localhost:6379", gotOpt.Addr)
		require.Equal(t, "pw", gotOpt.Password)
		require.Equal(t, 2, gotOpt.DB)
	})

	t.Run("ping fails", func(t *testing.T) {
		redisNewClient = func(*redis.Options) Cache {
			return &FakeCache{
				PingFn: func(context.Context) *redis.StatusCmd {
					return redis.NewStatusResult("", errors.New("connection refused"))
				},
			}
		}
		_, err := NewRedisClient("localhost:6379", "", 0)
		require.ErrorContains(t, err, "connection refused")
	})
}

func TestFakeCache(t *testing.T) {
	// unset hooks panic so a test never silently swallows a call
	f := &FakeCache{}
	require.Panics(t, func() { f.Get(context.Background(), "k") })
	require.Panics(t, func() { f.Set(context.Background(), "k", "v", time.Second) })
	require.Panics(t, func() { f.Incr(context.Background(), "k") })
	require.Panics(t, func() { f.Ping(context.Background()) })
	require.NoError(t, f.Close())

	closed := false
	f.CloseFn = func() error { closed = true; return nil }
	require.NoError(t, f.Close())
	require.True(t, closed)
}
