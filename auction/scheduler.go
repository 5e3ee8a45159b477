package auction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// TickResult 是排程器單次執行的結果
type TickResult struct {
	Activated int64       `json:"activated"`
	Sweep     SweepResult `json:"sweep"`
	Skipped   bool        `json:"skipped"`
}

// Scheduler 定期啟用到達開始時間的拍賣並結束過期的拍賣
// 設定 mutex 時只有取得鎖的節點會執行，其他節點略過該次執行
type Scheduler struct {
	engine  *Engine
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	options schedulerOptions
}

type schedulerOptions struct {
	logger       *slog.Logger
	interval     time.Duration
	tickTimeout  time.Duration
	mutexFactory func() Mutex
	clock        func() time.Time
	onTick       func(TickResult)
}

type SchedulerOption func(*schedulerOptions)

func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

func WithSchedulerInterval(interval time.Duration) SchedulerOption {
	return func(o *schedulerOptions) {
		o.interval = interval
	}
}

// WithSchedulerTickTimeout 設定單次執行的逾時時間
func WithSchedulerTickTimeout(timeout time.Duration) SchedulerOption {
	return func(o *schedulerOptions) {
		o.tickTimeout = timeout
	}
}

// WithSchedulerMutex 設定跨節點互斥鎖，factory 每次執行都會被呼叫一次
// 取得鎖失敗時略過該次執行，Lock 應該在有限時間內返回
func WithSchedulerMutex(factory func() Mutex) SchedulerOption {
	return func(o *schedulerOptions) {
		o.mutexFactory = factory
	}
}

func WithSchedulerClock(clock func() time.Time) SchedulerOption {
	return func(o *schedulerOptions) {
		o.clock = clock
	}
}

// WithSchedulerTickHook 設定每次執行完成後的回呼
func WithSchedulerTickHook(hook func(TickResult)) SchedulerOption {
	return func(o *schedulerOptions) {
		o.onTick = hook
	}
}

func NewScheduler(engine *Engine, opts ...SchedulerOption) (*Scheduler, error) {
	const op = "NewScheduler"
	if engine == nil {
		return nil, fmt.Errorf("[%s] Engine is required", op)
	}

	// 默認選項
	options := schedulerOptions{
		logger:      slog.Default(),
		interval:    time.Minute,
		tickTimeout: 30 * time.Second,
		clock:       time.Now,
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	if options.interval <= 0 {
		return nil, fmt.Errorf("[%s] Interval must be positive, got %s", op, options.interval)
	}

	return &Scheduler{
		engine:  engine,
		options: options,
	}, nil
}

// Start 在背景啟動排程，啟動時會先執行一次
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.options.interval)
		defer ticker.Stop()

		for {
			s.tick(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Close 停止排程並等待執行中的工作結束
func (s *Scheduler) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) tick(ctx context.Context) {
	const op = "Scheduler.tick"

	tickCtx, cancel := context.WithTimeout(ctx, s.options.tickTimeout)
	defer cancel()

	result, err := s.RunOnce(tickCtx)
	if err != nil {
		s.options.logger.Error(
			"Fail to run auction schedule",
			slog.String("op", op),
			slog.Any("error", err),
		)
	}
	if s.options.onTick != nil {
		s.options.onTick(result)
	}
}

// RunOnce 執行一次啟用與結標，先啟用排程拍賣再結束過期拍賣
func (s *Scheduler) RunOnce(ctx context.Context) (TickResult, error) {
	const op = "RunOnce"

	if s.options.mutexFactory != nil {
		mutex := s.options.mutexFactory()
		lockCtx, err := mutex.Lock(ctx)
		if err != nil {
			s.options.logger.Debug(
				"Schedule lock held by another instance",
				slog.String("op", op),
				slog.Any("error", err),
			)
			return TickResult{Skipped: true}, nil
		}
		// 續約失敗時 lockCtx 會被取消，後續的資料庫操作隨之中止
		if lockCtx != nil {
			ctx = lockCtx
		}
		defer func() {
			if _, err := mutex.Unlock(); err != nil {
				s.options.logger.Warn(
					"Fail to release schedule lock",
					slog.String("op", op),
					slog.Any("error", err),
				)
			}
		}()
	}

	now := s.options.clock()

	var result TickResult
	activated, err := s.engine.ActivateScheduledAuctions(ctx, now)
	if err != nil {
		return result, fmt.Errorf("[%s] Fail to activate auctions, err=%w", op, err)
	}
	result.Activated = activated

	sweep, err := s.engine.CloseExpiredAuctions(ctx, now)
	result.Sweep = sweep
	if err != nil {
		return result, fmt.Errorf("[%s] Fail to close auctions, err=%w", op, err)
	}
	return result, nil
}
