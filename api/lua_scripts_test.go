package api

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidThrottleScript(t *testing.T) {
	// 設置 miniredis
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	// 建立 Redis 客戶端
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	defer client.Close()

	ctx := context.Background()
	run := func(key string) int {
		status, err := BidThrottleScript.Run(ctx, client, []string{key}, 3, 10000).Int()
		require.NoError(t, err)
		return status
	}

	t.Run("窗口內前三次允許", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.Equal(t, 1, run("throttle:a"))
		}
		assert.Equal(t, 0, run("throttle:a"))
	})

	t.Run("第一次出價時設定過期時間", func(t *testing.T) {
		run("throttle:b")
		ttl := mr.TTL("throttle:b")
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, 10*time.Second)
	})

	t.Run("窗口過期後重新計數", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			run("throttle:c")
		}
		assert.Equal(t, 0, run("throttle:c"))
		mr.FastForward(11 * time.Second)
		assert.Equal(t, 1, run("throttle:c"))
	})

	t.Run("不同鍵各自計數", func(t *testing.T) {
		assert.Equal(t, 1, run("throttle:d"))
		assert.Equal(t, 1, run("throttle:e"))
	})
}
