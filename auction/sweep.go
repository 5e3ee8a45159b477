package auction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"r66slot/models"
)

// SweepResult 是一次結標掃描的統計
// Closed 等於 Ended 加上 Unsold，Skipped 是被其他交易鎖定而略過的拍賣，會在下一次掃描重新處理
type SweepResult struct {
	Candidates int `json:"candidates"`
	Closed     int `json:"closed"`
	Ended      int `json:"ended"`
	Unsold     int `json:"unsold"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

type closeOutcome int

const (
	outcomeSkipped closeOutcome = iota
	outcomeEnded
	outcomeUnsold
)

// CloseExpiredAuctions 結束所有已過截止時間的進行中拍賣
//
// 每場拍賣在各自的交易中以 FOR UPDATE SKIP LOCKED 鎖定，正在出價中的拍賣會被略過。
// 有領先出價且達到保留價時狀態改為 ended，記錄得標者、通知得標者並建立待付款紀錄；
// 沒有出價或未達保留價時狀態改為 unsold。單場失敗只會記錄並繼續處理其他拍賣。
func (e *Engine) CloseExpiredAuctions(ctx context.Context, now time.Time) (SweepResult, error) {
	const op = "CloseExpiredAuctions"
	now = now.UTC()

	var ids []uuid.UUID
	if err := e.db.WithContext(ctx).
		Model(&models.Auction{}).
		Where("status = ? AND ends_at <= ?", models.AuctionStatusActive, now).
		Order("ends_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return SweepResult{}, fmt.Errorf("[%s] Fail to list expired auctions, err=%w", op, err)
	}

	result := SweepResult{Candidates: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("[%s] Sweep interrupted, err=%w", op, err)
		}

		outcome, err := e.closeAuction(ctx, id, now)
		if err != nil {
			result.Failed++
			e.options.logger.Error(
				"Fail to close auction",
				slog.String("op", op),
				slog.String("auction_id", id.String()),
				slog.Any("error", err),
			)
			continue
		}
		switch outcome {
		case outcomeEnded:
			result.Ended++
			result.Closed++
		case outcomeUnsold:
			result.Unsold++
			result.Closed++
		default:
			result.Skipped++
		}
	}

	if result.Candidates > 0 {
		e.options.logger.Info(
			"Expired auctions swept",
			slog.String("op", op),
			slog.Int("candidates", result.Candidates),
			slog.Int("ended", result.Ended),
			slog.Int("unsold", result.Unsold),
			slog.Int("skipped", result.Skipped),
			slog.Int("failed", result.Failed),
		)
	}
	return result, nil
}

func (e *Engine) closeAuction(ctx context.Context, auctionID uuid.UUID, now time.Time) (closeOutcome, error) {
	var (
		outcome      = outcomeSkipped
		notification *models.Notification
	)
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 鎖定後重新確認條件，其他節點可能已經處理過這場拍賣
		var auction models.Auction
		locked := tx.Clauses(lockForUpdateSkip).
			Where("id = ? AND status = ? AND ends_at <= ?", auctionID, models.AuctionStatusActive, now).
			Limit(1).
			Find(&auction)
		if locked.Error != nil {
			return locked.Error
		}
		if locked.RowsAffected == 0 {
			return nil
		}

		var winning models.Bid
		found := tx.Where("auction_id = ? AND is_winning = ?", auction.ID, true).Limit(1).Find(&winning)
		if found.Error != nil {
			return found.Error
		}

		reserveMet := auction.ReservePrice == nil || winning.Amount.GreaterThanOrEqual(*auction.ReservePrice)
		if found.RowsAffected == 0 || !reserveMet {
			outcome = outcomeUnsold
			return tx.Model(&models.Auction{}).Where("id = ?", auction.ID).Updates(map[string]any{
				"status":     models.AuctionStatusUnsold,
				"updated_at": now,
			}).Error
		}

		if err := tx.Model(&models.Auction{}).Where("id = ?", auction.ID).Updates(map[string]any{
			"status":          models.AuctionStatusEnded,
			"winner_id":       winning.BidderID,
			"winner_notified": true,
			"updated_at":      now,
		}).Error; err != nil {
			return err
		}

		n := e.winnerNotification(winning.BidderID, &auction, winning.Amount, now)
		if err := tx.Create(&n).Error; err != nil {
			return err
		}
		notification = &n

		payment := models.AuctionPayment{
			AuctionID: auction.ID,
			BidderID:  winning.BidderID,
			Amount:    winning.Amount,
			Currency:  e.options.currency,
			Status:    models.PaymentStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		outcome = outcomeEnded
		return nil
	})
	if err != nil {
		return outcomeSkipped, err
	}

	if notification != nil {
		e.publishNotifications([]NotificationEvent{newNotificationEvent(notification)})
	}
	return outcome, nil
}

// ActivateScheduledAuctions 將所有開始時間已到的排程拍賣改為進行中，回傳被啟用的數量
func (e *Engine) ActivateScheduledAuctions(ctx context.Context, now time.Time) (int64, error) {
	const op = "ActivateScheduledAuctions"
	now = now.UTC()

	result := e.db.WithContext(ctx).
		Model(&models.Auction{}).
		Where("status = ? AND starts_at <= ?", models.AuctionStatusScheduled, now).
		Updates(map[string]any{
			"status":     models.AuctionStatusActive,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("[%s] Fail to activate scheduled auctions, err=%w", op, result.Error)
	}

	if result.RowsAffected > 0 {
		e.options.logger.Info(
			"Scheduled auctions activated",
			slog.String("op", op),
			slog.Int64("count", result.RowsAffected),
		)
	}
	return result.RowsAffected, nil
}

