package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisJSONRoundtrip(t *testing.T) {
	mr, rdb := testRedis(t)
	ctx := context.Background()

	type payload struct {
		Tip  string `json:"tip"`
		Rank int    `json:"rank"`
	}

	t.Run("set then get", func(t *testing.T) {
		in := payload{Tip: "stretch for a minute", Rank: 2}
		require.NoError(t, RedisSetJSON(ctx, rdb, "cache:tip", in, time.Minute))

		var out payload
		ok, err := RedisGetJSON(ctx, rdb, "cache:tip", &out)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, in, out)

		ttl := mr.TTL("cache:tip")
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("missing key", func(t *testing.T) {
		var out payload
		ok, err := RedisGetJSON(ctx, rdb, "cache:absent", &out)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt value", func(t *testing.T) {
		require.NoError(t, mr.Set("cache:bad", "{not json"))
		var out payload
		ok, err := RedisGetJSON(ctx, rdb, "cache:bad", &out)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
