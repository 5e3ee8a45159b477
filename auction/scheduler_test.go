package auction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"r66slot/models"
)

func TestNewScheduler(t *testing.T) {
	engine, _ := setupEngine(t)

	_, err := NewScheduler(nil)
	assert.ErrorContains(t, err, "Engine is required")

	_, err = NewScheduler(engine, WithSchedulerInterval(0))
	assert.ErrorContains(t, err, "Interval must be positive")

	scheduler, err := NewScheduler(engine)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, scheduler.options.interval)
}

func TestScheduler_RunOnce(t *testing.T) {
	engine, db := setupEngine(t)
	scheduled := createAuction(t, db, func(a *models.Auction) {
		a.Status = models.AuctionStatusScheduled
		a.StartsAt = testNow.Add(-time.Minute)
		a.EndsAt = testNow.Add(time.Hour)
	})
	expired := createAuction(t, db, func(a *models.Auction) {
		a.EndsAt = testNow.Add(-time.Minute)
	})

	scheduler, err := NewScheduler(engine,
		WithSchedulerLogger(discardLog),
		WithSchedulerClock(func() time.Time { return testNow }),
	)
	require.NoError(t, err)

	result, err := scheduler.RunOnce(bg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Activated)
	assert.Equal(t, 1, result.Sweep.Closed)
	assert.False(t, result.Skipped)

	assert.Equal(t, models.AuctionStatusActive, reloadAuction(t, db, scheduled.ID).Status)
	assert.Equal(t, models.AuctionStatusUnsold, reloadAuction(t, db, expired.ID).Status)
}

func TestScheduler_RunOnceWithMutex(t *testing.T) {
	tests := []struct {
		name        string
		lockErr     error
		wantSkipped bool
	}{
		{
			name:        "取得鎖後執行",
			wantSkipped: false,
		},
		{
			name:        "鎖被其他節點持有時略過",
			lockErr:     context.DeadlineExceeded,
			wantSkipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mutex := NewMockMutex(ctrl)
			engine, db := setupEngine(t)
			expired := createAuction(t, db, func(a *models.Auction) {
				a.EndsAt = testNow.Add(-time.Minute)
			})

			if tt.lockErr != nil {
				mutex.EXPECT().Lock(gomock.Any()).Return(nil, tt.lockErr)
			} else {
				mutex.EXPECT().Lock(gomock.Any()).Return(context.Background(), nil)
				mutex.EXPECT().Unlock().Return(true, nil)
			}

			scheduler, err := NewScheduler(engine,
				WithSchedulerLogger(discardLog),
				WithSchedulerClock(func() time.Time { return testNow }),
				WithSchedulerMutex(func() Mutex { return mutex }),
			)
			require.NoError(t, err)

			result, err := scheduler.RunOnce(bg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkipped, result.Skipped)

			wantStatus := models.AuctionStatusUnsold
			if tt.wantSkipped {
				wantStatus = models.AuctionStatusActive
			}
			assert.Equal(t, wantStatus, reloadAuction(t, db, expired.ID).Status)
		})
	}
}

func TestScheduler_UnlockFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mutex := NewMockMutex(ctrl)
	engine, _ := setupEngine(t)

	mutex.EXPECT().Lock(gomock.Any()).Return(context.Background(), nil)
	mutex.EXPECT().Unlock().Return(false, errors.New("lock expired"))

	scheduler, err := NewScheduler(engine,
		WithSchedulerLogger(discardLog),
		WithSchedulerMutex(func() Mutex { return mutex }),
	)
	require.NoError(t, err)

	_, err = scheduler.RunOnce(bg)
	assert.NoError(t, err)
}

func TestScheduler_LostLeaseStopsWork(t *testing.T) {
	ctrl := gomock.NewController(t)
	mutex := NewMockMutex(ctrl)
	engine, db := setupEngine(t)
	scheduled := createAuction(t, db, func(a *models.Auction) {
		a.Status = models.AuctionStatusScheduled
		a.StartsAt = testNow.Add(-time.Minute)
	})
	expired := createAuction(t, db, func(a *models.Auction) {
		a.EndsAt = testNow.Add(-time.Minute)
	})

	// 鎖的續約已經失敗，Lock 回傳的 context 已被取消
	lockCtx, cancel := context.WithCancel(context.Background())
	cancel()
	mutex.EXPECT().Lock(gomock.Any()).Return(lockCtx, nil)
	mutex.EXPECT().Unlock().Return(false, nil)

	scheduler, err := NewScheduler(engine,
		WithSchedulerLogger(discardLog),
		WithSchedulerClock(func() time.Time { return testNow }),
		WithSchedulerMutex(func() Mutex { return mutex }),
	)
	require.NoError(t, err)

	result, err := scheduler.RunOnce(bg)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Skipped)
	assert.Zero(t, result.Activated)

	assert.Equal(t, models.AuctionStatusScheduled, reloadAuction(t, db, scheduled.ID).Status)
	assert.Equal(t, models.AuctionStatusActive, reloadAuction(t, db, expired.ID).Status)
}

func TestScheduler_StartAndClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreAnyFunction("database/sql.(*DB).connectionOpener"))

	engine, db := setupEngine(t)
	expired := createAuction(t, db, func(a *models.Auction) {
		a.EndsAt = testNow.Add(-time.Minute)
	})

	var (
		mu    sync.Mutex
		ticks []TickResult
		first = make(chan struct{})
		once  sync.Once
	)
	scheduler, err := NewScheduler(engine,
		WithSchedulerLogger(discardLog),
		WithSchedulerInterval(10*time.Millisecond),
		WithSchedulerClock(func() time.Time { return testNow }),
		WithSchedulerTickHook(func(result TickResult) {
			mu.Lock()
			ticks = append(ticks, result)
			mu.Unlock()
			once.Do(func() { close(first) })
		}),
	)
	require.NoError(t, err)

	scheduler.Start()
	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not tick")
	}
	scheduler.Close()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, ticks)
	assert.Equal(t, 1, ticks[0].Sweep.Closed)
	assert.Equal(t, models.AuctionStatusUnsold, reloadAuction(t, db, expired.ID).Status)
}
