package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bid 代表拍賣的出價紀錄
// 出價建立後只有 IsWinning 會被修改，同一場拍賣同時間最多只有一筆 IsWinning 為 true
type Bid struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	AuctionID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_bids_single_winner,where:is_winning = true;<-:create" json:"auction_id"`
	BidderID  uuid.UUID       `gorm:"type:uuid;not null;index;<-:create" json:"bidder_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null;<-:create" json:"amount"`
	IsWinning bool            `gorm:"not null;uniqueIndex:idx_bids_single_winner,where:is_winning = true" json:"is_winning"`
	CreatedAt time.Time       `json:"created_at"`

	// 外鍵關聯
	Auction *Auction       `gorm:"foreignKey:AuctionID" json:"-"`
	Bidder  *BidderProfile `gorm:"foreignKey:BidderID" json:"bidder,omitempty"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	return assignID(&b.ID)
}

// BidderProfile 代表競標者資料
// CustomerID 對應商店前台的顧客編號，被封鎖的競標者不能再出價
type BidderProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	CustomerID  string    `gorm:"type:text;not null;uniqueIndex;<-:create" json:"customer_id"`
	DisplayName string    `gorm:"type:text;not null" json:"display_name"`
	Email       string    `gorm:"type:text;not null" json:"email"`
	Phone       *string   `gorm:"type:text" json:"phone"`
	IsBanned    bool      `gorm:"not null" json:"is_banned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *BidderProfile) BeforeCreate(tx *gorm.DB) error {
	return assignID(&p.ID)
}
