package auction

import (
	"time"

	"github.com/google/uuid"

	"r66slot/models"
)

// BidEvent 是出價成功後發布的事件，金額以字串表示避免序列化時失去精度
type BidEvent struct {
	AuctionID  uuid.UUID `json:"auction_id" msgpack:"auction_id"`
	BidID      uuid.UUID `json:"bid_id" msgpack:"bid_id"`
	BidderID   uuid.UUID `json:"bidder_id" msgpack:"bidder_id"`
	BidderName string    `json:"bidder_name" msgpack:"bidder_name"`
	Amount     string    `json:"amount" msgpack:"amount"`
	BidCount   int       `json:"bid_count" msgpack:"bid_count"`
	EndsAt     time.Time `json:"ends_at" msgpack:"ends_at"`
	Extended   bool      `json:"extended" msgpack:"extended"`
	CreatedAt  time.Time `json:"created_at" msgpack:"created_at"`
}

// NotificationEvent 是通知寫入資料庫後發布的事件
type NotificationEvent struct {
	NotificationID uuid.UUID               `json:"notification_id" msgpack:"notification_id"`
	BidderID       uuid.UUID               `json:"bidder_id" msgpack:"bidder_id"`
	AuctionID      *uuid.UUID              `json:"auction_id" msgpack:"auction_id"`
	Type           models.NotificationType `json:"type" msgpack:"type"`
	Title          string                  `json:"title" msgpack:"title"`
	Message        string                  `json:"message" msgpack:"message"`
	CreatedAt      time.Time               `json:"created_at" msgpack:"created_at"`
}

func newNotificationEvent(n *models.Notification) NotificationEvent {
	return NotificationEvent{
		NotificationID: n.ID,
		BidderID:       n.BidderID,
		AuctionID:      n.AuctionID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
	}
}
