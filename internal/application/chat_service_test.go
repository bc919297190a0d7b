package application

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

func TestDailyTipCache(t *testing.T) {
	ctx := context.Background()

	t.Run("cached tip wins over generation", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		entry := cachedTip{Tip: "Drink a glass of water.", GeneratedOn: "2026-08-30"}
		require.NoError(t, helpers.RedisSetJSON(ctx, rdb, tipCacheKey, entry, time.Minute))

		// nil genai client: any generation attempt would yield the fallback,
		// so getting the seeded tip proves the cache read path
		svc := NewChatService(nil, "", rdb, nil)
		tip, err := svc.DailyTip(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Drink a glass of water.", tip)
	})

	t.Run("empty cache and no client falls back", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		svc := NewChatService(nil, "", rdb, nil)
		tip, err := svc.DailyTip(ctx)
		require.NoError(t, err)
		assert.Equal(t, fallbackTip, tip)

		// fallback is not cached; the next generation attempt should retry
		assert.False(t, mr.Exists(tipCacheKey))
	})
}
