package sse

import (
	"sync"
)

// Channel 管理同一主題的所有訂閱者
// 每個訂閱者都有自己的緩衝，緩衝已滿的訂閱者會漏掉該則訊息，不會拖慢其他人
type Channel[T any] struct {
	subscribers map[<-chan T]chan T
	bufferSize  int
	mu          sync.RWMutex
}

func NewChannel[T any](bufferSize int) IChannel[T] {
	return &Channel[T]{
		subscribers: make(map[<-chan T]chan T),
		bufferSize:  max(bufferSize, 0),
	}
}

func (c *Channel[T]) Subscribe() <-chan T {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan T, c.bufferSize)
	c.subscribers[ch] = ch
	return ch
}

func (c *Channel[T]) Unsubscribe(ch <-chan T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if writeCh, ok := c.subscribers[ch]; ok {
		delete(c.subscribers, ch)
		close(writeCh)
	}
}

func (c *Channel[T]) UnsubscribeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, writeCh := range c.subscribers {
		close(writeCh)
	}
	clear(c.subscribers)
}

func (c *Channel[T]) Broadcast(message T) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dropped := 0
	for _, writeCh := range c.subscribers {
		select {
		case writeCh <- message:
		default:
			dropped++
		}
	}
	return dropped
}

func (c *Channel[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subscribers)
}
