package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuctionStatus 代表拍賣的狀態
type AuctionStatus string

const (
	AuctionStatusDraft     AuctionStatus = "draft"
	AuctionStatusScheduled AuctionStatus = "scheduled"
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusEnded     AuctionStatus = "ended"
	AuctionStatusSold      AuctionStatus = "sold"
	AuctionStatusCancelled AuctionStatus = "cancelled"
	AuctionStatusUnsold    AuctionStatus = "unsold"
)

// AuctionCondition 代表拍賣商品的品相
type AuctionCondition string

const (
	ConditionNewSealed   AuctionCondition = "new_sealed"
	ConditionNewOpenBox  AuctionCondition = "new_open_box"
	ConditionUsedLikeNew AuctionCondition = "used_like_new"
	ConditionUsedGood    AuctionCondition = "used_good"
	ConditionUsedFair    AuctionCondition = "used_fair"
	ConditionForParts    AuctionCondition = "for_parts"
)

// AuctionImage 是拍賣商品圖片的描述，存放在 Auction.Images 的 JSON 欄位中
type AuctionImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Auction 代表拍賣系統中的一場拍賣
// 包含商品資訊、起標價、保留價、目前價格、加價幅度、拍賣時間與防狙擊延長秒數
//
// EndsAt 會因為防狙擊機制被延長，OriginalEndTime 只在建立時寫入，作為原始結束時間的參考
type Auction struct {
	ID               uuid.UUID                          `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	Title            string                             `gorm:"type:text;not null" json:"title"`
	Slug             string                             `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Description      *string                            `gorm:"type:text" json:"description"`
	DescriptionHTML  *string                            `gorm:"type:text" json:"description_html"`
	CategoryID       *uuid.UUID                         `gorm:"type:uuid;index" json:"category_id"`
	Brand            *string                            `gorm:"type:text" json:"brand"`
	Scale            *string                            `gorm:"type:text" json:"scale"`
	Condition        AuctionCondition                   `gorm:"type:varchar(32);not null" json:"condition"`
	Images           datatypes.JSONType[[]AuctionImage] `json:"images"`
	StartingPrice    decimal.Decimal                    `gorm:"type:numeric(10,2);not null" json:"starting_price"`
	ReservePrice     *decimal.Decimal                   `gorm:"type:numeric(10,2)" json:"reserve_price"`
	CurrentPrice     decimal.Decimal                    `gorm:"type:numeric(10,2);not null" json:"current_price"`
	BidIncrement     decimal.Decimal                    `gorm:"type:numeric(10,2);not null" json:"bid_increment"`
	BidCount         int                                `gorm:"not null" json:"bid_count"`
	Status           AuctionStatus                      `gorm:"type:varchar(16);not null;index" json:"status"`
	StartsAt         time.Time                          `gorm:"not null" json:"starts_at"`
	EndsAt           time.Time                          `gorm:"not null;index" json:"ends_at"`
	OriginalEndTime  time.Time                          `gorm:"not null;<-:create" json:"original_end_time"`
	AntiSnipeSeconds int                                `gorm:"not null" json:"anti_snipe_seconds"`
	WinnerID         *uuid.UUID                         `gorm:"type:uuid" json:"winner_id"`
	WinnerNotified   bool                               `gorm:"not null" json:"winner_notified"`
	Featured         bool                               `gorm:"not null" json:"featured"`
	CreatedBy        string                             `gorm:"type:text;not null" json:"created_by"`
	CreatedAt        time.Time                          `json:"created_at"`
	UpdatedAt        time.Time                          `json:"updated_at"`

	// 外鍵關聯
	Category *AuctionCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Winner   *BidderProfile   `gorm:"foreignKey:WinnerID" json:"-"`
}

func (a *Auction) BeforeCreate(tx *gorm.DB) error {
	return assignID(&a.ID)
}

// MinimumBid 回傳下一次出價可接受的最低金額
func (a *Auction) MinimumBid() decimal.Decimal {
	return a.CurrentPrice.Add(a.BidIncrement)
}

// AntiSnipeWindow 回傳防狙擊的時間窗口
func (a *Auction) AntiSnipeWindow() time.Duration {
	return time.Duration(a.AntiSnipeSeconds) * time.Second
}

// AuctionCategory 代表拍賣商品的分類
type AuctionCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	Name        string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Slug        string    `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"not null" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *AuctionCategory) BeforeCreate(tx *gorm.DB) error {
	return assignID(&c.ID)
}
