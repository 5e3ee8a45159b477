package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType 代表通知的種類
type NotificationType string

const (
	NotificationTypeOutbid          NotificationType = "outbid"
	NotificationTypeWinner          NotificationType = "winner"
	NotificationTypeAuctionEnding   NotificationType = "auction_ending"
	NotificationTypePaymentReminder NotificationType = "payment_reminder"
)

// Notification 代表發送給競標者的通知
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	BidderID  uuid.UUID        `gorm:"type:uuid;not null;index;<-:create" json:"bidder_id"`
	AuctionID *uuid.UUID       `gorm:"type:uuid;<-:create" json:"auction_id"`
	Type      NotificationType `gorm:"type:varchar(32);not null;<-:create" json:"type"`
	Title     string           `gorm:"type:text;not null;<-:create" json:"title"`
	Message   string           `gorm:"type:text;not null;<-:create" json:"message"`
	Read      bool             `gorm:"not null" json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	return assignID(&n.ID)
}

// WatchlistItem 代表競標者關注的拍賣
type WatchlistItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	BidderID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_bidder_auction;<-:create" json:"bidder_id"`
	AuctionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_bidder_auction;<-:create" json:"auction_id"`
	CreatedAt time.Time `json:"created_at"`

	Auction *Auction `gorm:"foreignKey:AuctionID" json:"auction,omitempty"`
}

func (WatchlistItem) TableName() string {
	return "watchlist"
}

func (w *WatchlistItem) BeforeCreate(tx *gorm.DB) error {
	return assignID(&w.ID)
}
