package redis

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type consumerOptions[T any] struct {
	logger       *slog.Logger
	bufferSize   int
	batchSize    int64
	blockTimeout time.Duration
	retryDelay   time.Duration
	startID      string
	decodeFunc   func(map[string]any) (T, error)
}

type ConsumerOption[T any] func(*consumerOptions[T])

// WithConsumerLogger 設置日誌記錄器
func WithConsumerLogger[T any](logger *slog.Logger) ConsumerOption[T] {
	return func(o *consumerOptions[T]) {
		o.logger = logger
	}
}

// WithConsumerBufferSize 設置下游channel的緩衝大小
func WithConsumerBufferSize[T any](size int) ConsumerOption[T] {
	return func(o *consumerOptions[T]) {
		o.bufferSize = size
	}
}

// WithConsumerBatchSize 設置每次讀取的最大訊息數量
func WithConsumerBatchSize[T any](size int64) ConsumerOption[T] {
	return func(o *consumerOptions[T]) {
		o.batchSize = size
	}
}

// WithConsumerBlockTimeout 設置阻塞讀取超時時間
func WithConsumerBlockTimeout[T any](d time.Duration) ConsumerOption[T] {
	return func(o *consumerOptions[T]) {
		o.blockTimeout = d
	}
}

// WithConsumerRetryDelay 設置讀取失敗後的等待時間
func WithConsumerRetryDelay[T any](d time.Duration) ConsumerOption[T] {
	return func(o *consumerOptions[T]) {
		o.retryDelay = d
	}
}

// WithConsumerStartID 設置開始讀取的訊息編號，預設 "$" 只讀取啟動後的新訊息
func WithConsumerStartID[T any](id string) ConsumerOption[T] {
	return func(o *consumerOptions[T]) {
		o.startID = id
	}
}

// WithConsumerDecodeFunc 設置自定義解析函數
func WithConsumerDecodeFunc[T any](fn func(map[string]any) (T, error)) ConsumerOption[T] {
	return func(o *consumerOptions[T]) {
		o.decodeFunc = fn
	}
}

// Consumer 以 XREAD 追蹤 stream，每個節點都會收到全部訊息
type Consumer[T any] struct {
	client     *redis.Client
	stream     string
	lastID     string
	downStream chan T
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
	running    bool
	stopped    bool
	logger     *slog.Logger
	options    consumerOptions[T]
}

func NewConsumer[T any](client *redis.Client, stream string, opts ...ConsumerOption[T]) (IConsumer[T], error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if stream == "" {
		return nil, errors.New("stream cannot be empty")
	}

	// 默認選項
	options := consumerOptions[T]{
		logger:       slog.Default(),
		bufferSize:   100,
		batchSize:    10,
		blockTimeout: time.Second,
		retryDelay:   time.Second,
		startID:      "$",
		decodeFunc:   DecodeMessage[T],
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	if options.batchSize <= 0 {
		return nil, errors.New("batch size must be positive")
	}

	return &Consumer[T]{
		client:     client,
		stream:     stream,
		lastID:     options.startID,
		downStream: make(chan T, options.bufferSize),
		logger:     options.logger.With(slog.String("caller", "Consumer"), slog.String("stream", stream)),
		options:    options,
	}, nil
}

func (c *Consumer[T]) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	// 關閉後的消費者不能重新啟動，下游 channel 已經被關閉
	if c.running || c.stopped {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.running = true
	c.logger.Info("starting stream consumer")

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer c.logger.Info("consumer goroutine stopped")
		defer close(c.downStream)

		for ctx.Err() == nil {
			messages, err := c.fetch(ctx)
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				c.logger.Error("fetch message error", slog.Any("error", err))
				c.wait(ctx)
				continue
			}

			for _, message := range messages {
				data, err := c.options.decodeFunc(message.Values)
				if err != nil {
					c.logger.Error("failed to decode message",
						slog.String("messageId", message.ID),
						slog.Any("error", err))
					continue
				}

				select {
				case <-ctx.Done():
					return
				case c.downStream <- data:
				}
			}
		}
	}()
}

func (c *Consumer[T]) fetch(ctx context.Context) ([]redis.XMessage, error) {
	streams, err := c.client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{c.stream, c.lastID},
		Count:   c.options.batchSize,
		Block:   c.options.blockTimeout,
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, redis.Nil
	}

	messages := streams[0].Messages
	c.lastID = messages[len(messages)-1].ID
	c.logger.Debug("received messages",
		slog.Int("count", len(messages)),
		slog.String("lastId", c.lastID))
	return messages, nil
}

func (c *Consumer[T]) wait(ctx context.Context) {
	timer := time.NewTimer(c.options.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Subscribe 訂閱數據流，消費者關閉後 channel 會被關閉
func (c *Consumer[T]) Subscribe() <-chan T {
	return c.downStream
}

// Close 關閉消費者
func (c *Consumer[T]) Close() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	wasRunning := c.running
	c.running = false
	c.stopped = true
	c.mu.Unlock()

	if !wasRunning {
		close(c.downStream)
		return
	}

	c.logger.Info("closing stream consumer")
	c.cancel()
	c.wg.Wait()
	c.logger.Info("stream consumer closed")
}
