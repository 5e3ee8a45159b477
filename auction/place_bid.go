package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"r66slot/models"
)

const maxAmountDecimals = 2

// PlaceBidResult 是出價成功後的結果
type PlaceBidResult struct {
	BidID    uuid.UUID       `json:"bid_id"`
	Amount   decimal.Decimal `json:"amount"`
	NewPrice decimal.Decimal `json:"new_price"`
	BidCount int             `json:"bid_count"`
	EndsAt   time.Time       `json:"ends_at"`
	Extended bool            `json:"extended"`
}

// PlaceBid 對拍賣出價
//
// 檢查順序為拍賣是否存在、是否進行中、是否已過截止時間、金額是否達到最低出價、競標者是否被封鎖。
// 先以不加鎖的讀取快速拒絕，再於交易中鎖定拍賣列後重新檢查，
// 成功時會取消前一筆領先出價、寫入新出價、更新目前價格與出價次數，
// 距離結束不足防狙擊時間時將結束時間延後為 now 加上防狙擊秒數，並通知被超越的競標者。
func (e *Engine) PlaceBid(
	ctx context.Context,
	now time.Time,
	auctionID, bidderID uuid.UUID,
	amount decimal.Decimal,
) (PlaceBidResult, error) {
	const op = "PlaceBid"
	now = now.UTC()

	// 金額以分為單位，60.10 與 60.100 視為相同，60.005 則無法入帳
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(maxAmountDecimals)) {
		return PlaceBidResult{}, ErrInvalidAmount
	}

	// 未加鎖的快速檢查，避免明顯不合法的出價去競爭列鎖
	var snapshot models.Auction
	if err := e.db.WithContext(ctx).Take(&snapshot, "id = ?", auctionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PlaceBidResult{}, ErrNotFound
		}
		return PlaceBidResult{}, fmt.Errorf("[%s] Fail to load auction, err=%w", op, err)
	}
	if err := e.checkBid(&snapshot, now, amount); err != nil {
		return PlaceBidResult{}, err
	}

	var (
		result        PlaceBidResult
		event         BidEvent
		notifications []NotificationEvent
	)
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
		if err := e.checkBid(&auction, now, amount); err != nil {
			return err
		}

		var bidder models.BidderProfile
		if err := tx.Take(&bidder, "id = ?", bidderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: bidder profile does not exist", ErrForbidden)
			}
			return err
		}
		if bidder.IsBanned {
			return fmt.Errorf("%w: bidder is banned", ErrForbidden)
		}

		var previous models.Bid
		found := tx.Where("auction_id = ? AND is_winning = ?", auction.ID, true).Limit(1).Find(&previous)
		if found.Error != nil {
			return found.Error
		}
		if found.RowsAffected > 0 {
			if err := tx.Model(&models.Bid{}).
				Where("auction_id = ? AND is_winning = ?", auction.ID, true).
				Update("is_winning", false).Error; err != nil {
				return err
			}
		}

		bid := models.Bid{
			AuctionID: auction.ID,
			BidderID:  bidder.ID,
			Amount:    amount,
			IsWinning: true,
			CreatedAt: now,
		}
		if err := tx.Create(&bid).Error; err != nil {
			return err
		}

		endsAt := auction.EndsAt
		extended := false
		if window := auction.AntiSnipeWindow(); window > 0 && auction.EndsAt.Sub(now) < window {
			endsAt = now.Add(window)
			extended = true
		}
		updates := map[string]any{
			"current_price": amount,
			"bid_count":     gorm.Expr("bid_count + ?", 1),
			"updated_at":    now,
		}
		if extended {
			updates["ends_at"] = endsAt
		}
		if err := tx.Model(&models.Auction{}).Where("id = ?", auction.ID).Updates(updates).Error; err != nil {
			return err
		}

		// 自己超越自己不發送通知
		if found.RowsAffected > 0 && previous.BidderID != bidder.ID {
			notification := e.outbidNotification(previous.BidderID, &auction, amount, now)
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
			notifications = append(notifications, newNotificationEvent(&notification))
		}

		result = PlaceBidResult{
			BidID:    bid.ID,
			Amount:   amount,
			NewPrice: amount,
			BidCount: auction.BidCount + 1,
			EndsAt:   endsAt,
			Extended: extended,
		}
		event = BidEvent{
			AuctionID:  auction.ID,
			BidID:      bid.ID,
			BidderID:   bidder.ID,
			BidderName: bidder.DisplayName,
			Amount:     amount.StringFixed(2),
			BidCount:   result.BidCount,
			EndsAt:     endsAt,
			Extended:   extended,
			CreatedAt:  now,
		}
		return nil
	})
	if err != nil {
		switch {
		case isLockTimeout(err):
			return PlaceBidResult{}, fmt.Errorf("%w: lock wait exceeded %s", ErrBusy, e.options.lockTimeout)
		case isDomainError(err):
			return PlaceBidResult{}, err
		}
		return PlaceBidResult{}, fmt.Errorf("[%s] Fail to place bid, err=%w", op, err)
	}

	e.options.logger.Debug(
		"Bid placed",
		slog.String("op", op),
		slog.String("auction_id", auctionID.String()),
		slog.String("bid_id", result.BidID.String()),
		slog.String("amount", amount.StringFixed(2)),
		slog.Bool("extended", result.Extended),
	)

	// 交易提交後才發布事件，訂閱者看到的一定是已經生效的出價
	e.publishBid(event)
	e.publishNotifications(notifications)
	return result, nil
}

func (e *Engine) checkBid(auction *models.Auction, now time.Time, amount decimal.Decimal) error {
	if auction.Status != models.AuctionStatusActive {
		return fmt.Errorf("%w: status is %s", ErrNotActive, auction.Status)
	}
	if now.After(auction.EndsAt) {
		return ErrAuctionEnded
	}
	if minimum := auction.MinimumBid(); amount.LessThan(minimum) {
		return &BidTooLowError{Minimum: minimum, Symbol: e.options.currencySymbol}
	}
	return nil
}
