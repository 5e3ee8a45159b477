package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// AutoRenewMutex 是帶自動續期的分散式鎖，用於讓同一時間只有一個節點執行拍賣排程
type AutoRenewMutex struct {
	mutex    *redsync.Mutex
	cancel   context.CancelFunc
	renewing bool
	mu       sync.Mutex
	wg       sync.WaitGroup
	options  autoRenewMutexOptions
}

type autoRenewMutexOptions struct {
	renewInterval  time.Duration
	retryDelay     time.Duration
	expiry         time.Duration
	acquireTimeout time.Duration
}

type AutoRenewMutexOption func(*autoRenewMutexOptions)

// WithAutoRenewMutexRenewInterval 設置自動續期間隔
func WithAutoRenewMutexRenewInterval(d time.Duration) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.renewInterval = d
	}
}

// WithAutoRenewMutexRetryDelay 設置重試延遲
func WithAutoRenewMutexRetryDelay(d time.Duration) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.retryDelay = d
	}
}

// WithAutoRenewMutexExpiry 設置鎖過期時間
func WithAutoRenewMutexExpiry(d time.Duration) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.expiry = d
	}
}

// WithAutoRenewMutexAcquireTimeout 設置等待取得鎖的上限，0 代表等到 context 結束
func WithAutoRenewMutexAcquireTimeout(d time.Duration) AutoRenewMutexOption {
	return func(o *autoRenewMutexOptions) {
		o.acquireTimeout = d
	}
}

// NewAutoRenewMutex 創建一個帶自動續期功能的互斥鎖
func NewAutoRenewMutex(client *redis.Client, key string, opts ...AutoRenewMutexOption) IAutoRenewMutex {
	// 默認選項
	options := autoRenewMutexOptions{
		expiry:         8 * time.Second,
		retryDelay:     500 * time.Millisecond,
		acquireTimeout: 0,
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	// 未設置續期間隔時使用過期時間的1/3
	if options.renewInterval <= 0 {
		options.renewInterval = options.expiry / 3
	}

	rs := redsync.New(goredis.NewPool(client))
	return &AutoRenewMutex{
		mutex: rs.NewMutex(
			key,
			redsync.WithExpiry(options.expiry),
			redsync.WithTries(1),
		),
		options: options,
	}
}

// Lock 在 acquireTimeout 內反覆嘗試取得鎖，成功後啟動自動續期
// 返回的 context 會在續期失敗或 Unlock 時被取消，持有鎖的工作應該以它為準
func (m *AutoRenewMutex) Lock(ctx context.Context) (context.Context, error) {
	acquireCtx := ctx
	if m.options.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, m.options.acquireTimeout)
		defer cancel()
	}

	for {
		err := m.mutex.LockContext(acquireCtx)
		if err == nil {
			// 續期只受呼叫端的 ctx 控制，不受取得鎖的逾時影響
			lockCtx, cancel := context.WithCancel(ctx)
			m.startAutoRenew(lockCtx, cancel)
			return lockCtx, nil
		}

		var redisErr *redsync.RedisError
		if errors.As(err, &redisErr) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		timer := time.NewTimer(m.options.retryDelay)
		select {
		case <-acquireCtx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %w", ErrLockNotAcquired, acquireCtx.Err())
		case <-timer.C:
		}
	}
}

// Unlock 停止自動續期並釋放鎖
func (m *AutoRenewMutex) Unlock() (bool, error) {
	m.stopAutoRenew()
	m.wg.Wait()
	return m.mutex.Unlock()
}

// Valid 檢查鎖是否仍在有效期內並持續續期中
func (m *AutoRenewMutex) Valid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renewing && time.Now().Before(m.mutex.Until())
}

func (m *AutoRenewMutex) startAutoRenew(ctx context.Context, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renewing {
		cancel()
		return
	}

	m.renewing = true
	m.cancel = cancel
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.options.renewInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ok, err := m.mutex.ExtendContext(ctx)
				if err != nil || !ok {
					m.stopAutoRenew()
					return
				}
			}
		}
	}()
}

func (m *AutoRenewMutex) stopAutoRenew() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.renewing {
		return
	}

	m.renewing = false
	if m.cancel != nil {
		m.cancel()
	}
}
