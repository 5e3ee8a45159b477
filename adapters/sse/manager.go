package sse

import (
	"errors"
	"log/slog"
	"sync"

	redisAdapter "r66slot/adapters/redis"
)

var ErrHubClosed = errors.New("hub is closed")

type hubOptions struct {
	logger     *slog.Logger
	bufferSize int
}

type HubOption func(*hubOptions)

// WithHubLogger 設置日誌記錄器
func WithHubLogger(logger *slog.Logger) HubOption {
	return func(o *hubOptions) {
		o.logger = logger
	}
}

// WithHubBufferSize 設置每個訂閱者的緩衝大小
func WithHubBufferSize(size int) HubOption {
	return func(o *hubOptions) {
		o.bufferSize = size
	}
}

// Hub 從 Redis stream 讀取事件，依主題分派給本節點的 SSE 連線
// 每個節點都讀取完整的 stream，因此連到任何節點的瀏覽器都能收到所有拍賣的即時出價
type Hub[T any] struct {
	source   redisAdapter.IConsumer[T]
	topicOf  func(T) string
	logger   *slog.Logger
	options  hubOptions
	mu       sync.RWMutex
	wg       sync.WaitGroup
	active   bool
	started  bool
	channels map[string]IChannel[T]
}

func NewHub[T any](source redisAdapter.IConsumer[T], topicOf func(T) string, opts ...HubOption) (*Hub[T], error) {
	if source == nil {
		return nil, errors.New("source cannot be nil")
	}
	if topicOf == nil {
		return nil, errors.New("topic function cannot be nil")
	}

	// 默認選項
	options := hubOptions{
		logger:     slog.Default(),
		bufferSize: 16,
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	return &Hub[T]{
		source:   source,
		topicOf:  topicOf,
		logger:   options.logger.With(slog.String("caller", "Hub")),
		options:  options,
		active:   true,
		channels: make(map[string]IChannel[T]),
	}, nil
}

func (h *Hub[T]) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.active || h.started {
		return
	}
	h.started = true
	h.source.Start()

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for message := range h.source.Subscribe() {
			h.dispatch(message)
		}
	}()
}

func (h *Hub[T]) dispatch(message T) {
	topic := h.topicOf(message)

	h.mu.RLock()
	channel, ok := h.channels[topic]
	h.mu.RUnlock()
	if !ok {
		return
	}

	if dropped := channel.Broadcast(message); dropped > 0 {
		h.logger.Warn("slow subscribers skipped a message",
			slog.String("topic", topic),
			slog.Int("dropped", dropped))
	}
}

// Close 關閉來源並結束所有訂閱，訂閱者的通道會被關閉
func (h *Hub[T]) Close() {
	h.mu.Lock()
	if !h.active {
		h.mu.Unlock()
		return
	}
	h.active = false
	h.mu.Unlock()

	h.source.Close()
	h.wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, channel := range h.channels {
		channel.UnsubscribeAll()
	}
	clear(h.channels)
}

func (h *Hub[T]) Subscribe(topic string) (<-chan T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.active {
		return nil, ErrHubClosed
	}

	channel, ok := h.channels[topic]
	if !ok {
		channel = NewChannel[T](h.options.bufferSize)
		h.channels[topic] = channel
	}
	return channel.Subscribe(), nil
}

func (h *Hub[T]) Unsubscribe(topic string, ch <-chan T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	channel, ok := h.channels[topic]
	if !ok {
		return
	}
	channel.Unsubscribe(ch)
	if channel.Len() == 0 {
		delete(h.channels, topic)
	}
}

func (h *Hub[T]) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if channel, ok := h.channels[topic]; ok {
		return channel.Len()
	}
	return 0
}
