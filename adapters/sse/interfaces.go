//go:generate mockgen -package=sse -destination=mock.go -source=interfaces.go

package sse

// IChannel 定義了單一主題的訂閱者集合
type IChannel[T any] interface {
	// Subscribe 建立一個新的訂閱並返回接收訊息的通道
	Subscribe() <-chan T
	// Unsubscribe 取消指定通道的訂閱並關閉該通道
	Unsubscribe(ch <-chan T)
	// UnsubscribeAll 取消所有訂閱
	UnsubscribeAll()
	// Broadcast 將訊息廣播給所有訂閱者，返回因為緩衝已滿而被略過的訂閱者數量
	Broadcast(message T) int
	// Len 返回目前的訂閱者數量
	Len() int
}

// IHub 定義了 SSE 推播中心的介面
type IHub[T any] interface {
	// Start 開始從來源讀取訊息並分派到各主題
	Start()
	// Close 停止推播中心並關閉所有訂閱
	Close()
	// Subscribe 訂閱指定主題
	Subscribe(topic string) (<-chan T, error)
	// Unsubscribe 取消訂閱指定主題
	Unsubscribe(topic string, ch <-chan T)
	// Subscribers 返回指定主題的訂閱者數量
	Subscribers(topic string) int
}
