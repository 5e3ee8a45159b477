//go:generate mockgen -package=auction -destination=mock.go -source=interfaces.go

package auction

import (
	"context"
)

// Publisher 定義了事件發布的操作介面，redis.Producer 即為其實作
type Publisher[T any] interface {
	Publish(data T) error
}

// Mutex 定義了跨節點互斥鎖的操作介面，用於讓同一時間只有一個節點執行排程掃描
type Mutex interface {
	Lock(ctx context.Context) (context.Context, error)
	Unlock() (bool, error)
}
