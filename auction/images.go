package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"r66slot/models"
)

// UploadedImage 是已上傳到物件儲存的圖片
type UploadedImage struct {
	URL      string
	MIMEType string
	Size     int64
	Alt      string
}

// AttachImage 記錄拍賣的新圖片，並附加到拍賣的圖片列表最後
func (e *Engine) AttachImage(ctx context.Context, now time.Time, auctionID uuid.UUID, upload UploadedImage) (*models.Image, error) {
	const op = "AttachImage"
	now = now.UTC()

	image := models.Image{
		AuctionID: auctionID,
		Url:       upload.URL,
		MIMEType:  upload.MIMEType,
		Size:      upload.Size,
		CreatedAt: now,
	}
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setLockTimeout(tx, e.options.lockTimeout); err != nil {
			return err
		}

		var auction models.Auction
		if err := tx.Clauses(lockForUpdate).Take(&auction, "id = ?", auctionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}

		images := append(auction.Images.Data(), models.AuctionImage{URL: upload.URL, Alt: upload.Alt})
		return tx.Model(&models.Auction{}).Where("id = ?", auction.ID).Updates(map[string]any{
			"images":     datatypes.NewJSONType(images),
			"updated_at": now,
		}).Error
	})
	if err != nil {
		switch {
		case isLockTimeout(err):
			return nil, fmt.Errorf("%w: lock wait exceeded %s", ErrBusy, e.options.lockTimeout)
		case isDomainError(err):
			return nil, err
		}
		return nil, fmt.Errorf("[%s] Fail to attach image, err=%w", op, err)
	}
	return &image, nil
}

// CountRecentImages 計算拍賣在 since 之後上傳的圖片數量
func (e *Engine) CountRecentImages(ctx context.Context, auctionID uuid.UUID, since time.Time) (int64, error) {
	const op = "CountRecentImages"

	var count int64
	if err := e.db.WithContext(ctx).
		Model(&models.Image{}).
		Where("auction_id = ? AND created_at >= ?", auctionID, since.UTC()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("[%s] Fail to count images, err=%w", op, err)
	}
	return count, nil
}
