package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"r66slot/models"
)

const maxSlugBaseLength = 80

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug 由標題產生網址代稱，尾端附加毫秒時間戳的 36 進位表示以避免重複
func GenerateSlug(title string, now time.Time) string {
	base := slugInvalidChars.ReplaceAllString(strings.ToLower(title), "-")
	base = strings.Trim(base, "-")
	if len(base) > maxSlugBaseLength {
		base = strings.TrimRight(base[:maxSlugBaseLength], "-")
	}
	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

var transitions = map[models.AuctionStatus][]models.AuctionStatus{
	models.AuctionStatusDraft:     {models.AuctionStatusScheduled, models.AuctionStatusActive, models.AuctionStatusCancelled},
	models.AuctionStatusScheduled: {models.AuctionStatusActive, models.AuctionStatusCancelled},
	models.AuctionStatusActive:    {models.AuctionStatusEnded, models.AuctionStatusUnsold, models.AuctionStatusCancelled},
	models.AuctionStatusEnded:     {models.AuctionStatusSold},
}

// CanTransition 判斷拍賣狀態是否可以從 from 轉換為 to
func CanTransition(from, to models.AuctionStatus) bool {
	return lo.Contains(transitions[from], to)
}

// NewAuction 是建立拍賣所需的資料
type NewAuction struct {
	Title            string
	Description      *string
	DescriptionHTML  *string
	CategoryID       *uuid.UUID
	Brand            *string
	Scale            *string
	Condition        models.AuctionCondition
	Images           []models.AuctionImage
	StartingPrice    decimal.Decimal
	ReservePrice     *decimal.Decimal
	BidIncrement     decimal.Decimal
	StartsAt         time.Time
	EndsAt           time.Time
	AntiSnipeSeconds *int
	Featured         bool
	Draft            bool
	CreatedBy        string
}

var conditions = []models.AuctionCondition{
	models.ConditionNewSealed,
	models.ConditionNewOpenBox,
	models.ConditionUsedLikeNew,
	models.ConditionUsedGood,
	models.ConditionUsedFair,
	models.ConditionForParts,
}

func (n *NewAuction) validate() error {
	switch {
	case strings.TrimSpace(n.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidAuction)
	case !n.StartingPrice.IsPositive():
		return fmt.Errorf("%w: starting price must be positive", ErrInvalidAuction)
	case n.BidIncrement.IsNegative():
		return fmt.Errorf("%w: bid increment must be positive", ErrInvalidAuction)
	case n.ReservePrice != nil && !n.ReservePrice.IsPositive():
		return fmt.Errorf("%w: reserve price must be positive", ErrInvalidAuction)
	case n.StartsAt.IsZero() || n.EndsAt.IsZero():
		return fmt.Errorf("%w: start and end time are required", ErrInvalidAuction)
	case !n.EndsAt.After(n.StartsAt):
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidAuction)
	case n.AntiSnipeSeconds != nil && *n.AntiSnipeSeconds < 0:
		return fmt.Errorf("%w: anti-snipe seconds must not be negative", ErrInvalidAuction)
	case n.Condition != "" && !lo.Contains(conditions, n.Condition):
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidAuction, n.Condition)
	}
	return nil
}

// CreateAuction 建立拍賣
// 草稿維持 draft，開始時間已到的拍賣直接進入 active，否則為 scheduled
func (e *Engine) CreateAuction(ctx context.Context, now time.Time, input NewAuction) (*models.Auction, error) {
	const op = "CreateAuction"
	now = now.UTC()

	if err := input.validate(); err != nil {
		return nil, err
	}

	status := models.AuctionStatusScheduled
	switch {
	case input.Draft:
		status = models.AuctionStatusDraft
	case !input.StartsAt.After(now):
		status = models.AuctionStatusActive
	}

	increment := input.BidIncrement
	if increment.IsZero() {
		increment = decimal.NewFromInt(1)
	}
	antiSnipe := 30
	if input.AntiSnipeSeconds != nil {
		antiSnipe = *input.AntiSnipeSeconds
	}
	condition := input.Condition
	if condition == "" {
		condition = models.ConditionNewSealed
	}

	auction := models.Auction{
		Title:            strings.TrimSpace(input.Title),
		Slug:             GenerateSlug(input.Title, now),
		Description:      input.Description,
		DescriptionHTML:  input.DescriptionHTML,
		CategoryID:       input.CategoryID,
		Brand:            input.Brand,
		Scale:            input.Scale,
		Condition:        condition,
		StartingPrice:    input.StartingPrice,
		ReservePrice:     input.ReservePrice,
		CurrentPrice:     input.StartingPrice,
		BidIncrement:     increment,
		Status:           status,
		StartsAt:         input.StartsAt.UTC(),
		EndsAt:           input.EndsAt.UTC(),
		OriginalEndTime:  input.EndsAt.UTC(),
		Images:           datatypes.NewJSONType(lo.Ternary(input.Images == nil, []models.AuctionImage{}, input.Images)),
		AntiSnipeSeconds: antiSnipe,
		Featured:         input.Featured,
		CreatedBy:        input.CreatedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := e.db.WithContext(ctx).Create(&auction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: slug %s already exists", ErrInvalidAuction, auction.Slug)
		}
		return nil, fmt.Errorf("[%s] Fail to create auction, err=%w", op, err)
	}

	e.options.logger.Info(
		"Auction created",
		slog.String("op", op),
		slog.String("auction_id", auction.ID.String()),
		slog.String("status", string(auction.Status)),
	)
	return &auction, nil
}

// transitionAuction 在交易中鎖定拍賣並檢查狀態轉換是否合法，合法時執行 apply
func (e *Engine) transitionAuction(
	ctx context.Context,
	auctionID uuid.UUID,
	to models.AuctionStatus,
	apply func(tx *gorm.DB, auction *models.Auction) error,
) error {
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
		if !CanTransition(auction.Status, to) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, auction.Status, to)
		}
		return apply(tx, &auction)
	})
	if err != nil && isLockTimeout(err) {
		return fmt.Errorf("%w: lock wait exceeded %s", ErrBusy, e.options.lockTimeout)
	}
	return err
}

// CancelAuction 取消尚未結束的拍賣
func (e *Engine) CancelAuction(ctx context.Context, now time.Time, auctionID uuid.UUID) error {
	const op = "CancelAuction"
	now = now.UTC()

	err := e.transitionAuction(ctx, auctionID, models.AuctionStatusCancelled, func(tx *gorm.DB, auction *models.Auction) error {
		return tx.Model(&models.Auction{}).Where("id = ?", auction.ID).Updates(map[string]any{
			"status":     models.AuctionStatusCancelled,
			"updated_at": now,
		}).Error
	})
	if err != nil {
		if isDomainError(err) {
			return err
		}
		return fmt.Errorf("[%s] Fail to cancel auction, err=%w", op, err)
	}
	return nil
}

// DeleteAuction 刪除拍賣及其關聯資料，只允許刪除草稿或已取消的拍賣
func (e *Engine) DeleteAuction(ctx context.Context, auctionID uuid.UUID) error {
	const op = "DeleteAuction"

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var auction models.Auction
		if err := tx.Clauses(lockForUpdate).Take(&auction, "id = ?", auctionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if auction.Status != models.AuctionStatusDraft && auction.Status != models.AuctionStatusCancelled {
			return fmt.Errorf("%w: cannot delete auction in status %s", ErrInvalidTransition, auction.Status)
		}

		for _, model := range []any{&models.Bid{}, &models.WatchlistItem{}, &models.Notification{}, &models.Image{}} {
			if err := tx.Where("auction_id = ?", auction.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Auction{}, "id = ?", auction.ID).Error
	})
	if err != nil {
		if isDomainError(err) {
			return err
		}
		return fmt.Errorf("[%s] Fail to delete auction, err=%w", op, err)
	}
	return nil
}

// MarkPaymentSucceeded 記錄得標款項已付清，拍賣狀態由 ended 轉為 sold 並通知得標者
// 重複呼叫不會再次修改資料
func (e *Engine) MarkPaymentSucceeded(ctx context.Context, now time.Time, auctionID uuid.UUID, reference string) (*models.AuctionPayment, error) {
	const op = "MarkPaymentSucceeded"
	now = now.UTC()

	var (
		payment      models.AuctionPayment
		notification *models.Notification
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
		if err := tx.Take(&payment, "auction_id = ?", auction.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if payment.Status == models.PaymentStatusSucceeded {
			return nil
		}
		if !CanTransition(auction.Status, models.AuctionStatusSold) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, auction.Status, models.AuctionStatusSold)
		}

		updates := map[string]any{
			"status":     models.PaymentStatusSucceeded,
			"paid_at":    now,
			"updated_at": now,
		}
		if reference != "" {
			updates["reference"] = reference
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}
		payment.Status = models.PaymentStatusSucceeded
		payment.PaidAt = &now
		if reference != "" {
			payment.Reference = &reference
		}
		if err := tx.Model(&models.Auction{}).Where("id = ?", auction.ID).Updates(map[string]any{
			"status":     models.AuctionStatusSold,
			"updated_at": now,
		}).Error; err != nil {
			return err
		}

		n := e.paymentReceivedNotification(payment.BidderID, &auction, now)
		if err := tx.Create(&n).Error; err != nil {
			return err
		}
		notification = &n
		return nil
	})
	if err != nil {
		switch {
		case isLockTimeout(err):
			return nil, fmt.Errorf("%w: lock wait exceeded %s", ErrBusy, e.options.lockTimeout)
		case isDomainError(err):
			return nil, err
		}
		return nil, fmt.Errorf("[%s] Fail to mark payment succeeded, err=%w", op, err)
	}

	if notification != nil {
		e.publishNotifications([]NotificationEvent{newNotificationEvent(notification)})
	}
	return &payment, nil
}
