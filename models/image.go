package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image 代表上傳到物件儲存的拍賣圖片紀錄
// 包含圖片 URL、所屬拍賣以及上傳時間，用來計算上傳頻率限制
type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	AuctionID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"auction_id"`
	Url       string    `gorm:"type:text;not null;<-:create" json:"url"`
	MIMEType  string    `gorm:"type:text;not null;<-:create" json:"mime_type"`
	Size      int64     `gorm:"not null;<-:create" json:"size"`
	CreatedAt time.Time `json:"created_at"`

	Auction *Auction `gorm:"foreignKey:AuctionID" json:"-"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	return assignID(&i.ID)
}

// All 回傳所有需要遷移的模型，依照外鍵相依順序排列
func All() []any {
	return []any{
		&AuctionCategory{},
		&BidderProfile{},
		&Auction{},
		&Bid{},
		&AuctionPayment{},
		&Notification{},
		&WatchlistItem{},
		&Image{},
	}
}
