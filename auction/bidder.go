package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"r66slot/models"
)

// Customer 是商店前台登入後的顧客身分
type Customer struct {
	ID       string
	Email    string
	Username string
}

func (c Customer) displayName() string {
	if name := strings.TrimSpace(c.Username); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(c.Email, "@"); ok && local != "" {
		return local
	}
	return "Bidder"
}

// ResolveBidder 取得顧客對應的競標者資料，第一次出現的顧客會自動建立
func (e *Engine) ResolveBidder(ctx context.Context, customer Customer) (*models.BidderProfile, error) {
	const op = "ResolveBidder"
	if customer.ID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrForbidden)
	}

	profile := models.BidderProfile{
		CustomerID:  customer.ID,
		DisplayName: customer.displayName(),
		Email:       customer.Email,
	}
	// 同一位顧客同時發出多個請求時，以唯一索引保證只建立一筆
	if err := e.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "customer_id"}}, DoNothing: true}).
		Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to create bidder profile, err=%w", op, err)
	}

	var stored models.BidderProfile
	if err := e.db.WithContext(ctx).Take(&stored, "customer_id = ?", customer.ID).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to load bidder profile, err=%w", op, err)
	}
	return &stored, nil
}

// SetBidderBanned 封鎖或解除封鎖競標者
func (e *Engine) SetBidderBanned(ctx context.Context, bidderID uuid.UUID, banned bool) error {
	const op = "SetBidderBanned"

	result := e.db.WithContext(ctx).
		Model(&models.BidderProfile{}).
		Where("id = ?", bidderID).
		Update("is_banned", banned)
	if result.Error != nil {
		return fmt.Errorf("[%s] Fail to update bidder, err=%w", op, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBidderNotFound
	}

	e.options.logger.Info(
		"Bidder ban status changed",
		slog.String("op", op),
		slog.String("bidder_id", bidderID.String()),
		slog.Bool("banned", banned),
	)
	return nil
}

// GetBidder 依編號取得競標者資料
func (e *Engine) GetBidder(ctx context.Context, bidderID uuid.UUID) (*models.BidderProfile, error) {
	const op = "GetBidder"

	var profile models.BidderProfile
	if err := e.db.WithContext(ctx).Take(&profile, "id = ?", bidderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidderNotFound
		}
		return nil, fmt.Errorf("[%s] Fail to load bidder profile, err=%w", op, err)
	}
	return &profile, nil
}
