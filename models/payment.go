package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus 代表得標付款的狀態
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// AuctionPayment 代表得標者需要支付的款項
// 拍賣結束且得標金額達到保留價時自動建立，每場拍賣最多一筆
type AuctionPayment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	AuctionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex;<-:create" json:"auction_id"`
	BidderID  uuid.UUID       `gorm:"type:uuid;not null;index;<-:create" json:"bidder_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null;<-:create" json:"amount"`
	Currency  string          `gorm:"type:varchar(3);not null" json:"currency"`
	Reference *string         `gorm:"type:text" json:"reference"`
	Status    PaymentStatus   `gorm:"type:varchar(16);not null;index" json:"status"`
	PaidAt    *time.Time      `json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// 外鍵關聯
	Auction *Auction       `gorm:"foreignKey:AuctionID" json:"-"`
	Bidder  *BidderProfile `gorm:"foreignKey:BidderID" json:"-"`
}

func (p *AuctionPayment) BeforeCreate(tx *gorm.DB) error {
	return assignID(&p.ID)
}
