package sse_test

import (
	"sync"
)

// Message 表示測試用的推播訊息
type Message struct {
	Topic string `json:"topic"`
	Data  string `json:"data"`
}

func topicOf(m Message) string {
	return m.Topic
}

// fakeSource 以記憶體通道模擬 Redis stream 消費者
type fakeSource struct {
	ch      chan Message
	once    sync.Once
	started bool
	mu      sync.Mutex
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan Message, 16)}
}

func (s *fakeSource) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
}

func (s *fakeSource) Subscribe() <-chan Message {
	return s.ch
}

func (s *fakeSource) Close() {
	s.once.Do(func() { close(s.ch) })
}

func (s *fakeSource) isStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}
