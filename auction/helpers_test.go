package auction

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"r66slot/models"
)

var (
	testNow    = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// setupDB 建立獨立的記憶體資料庫，單一連線讓交易依序執行
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupEngine(t *testing.T, opts ...EngineOption) (*Engine, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	engine, err := NewEngine(db, append([]EngineOption{WithEngineLogger(discardLog)}, opts...)...)
	require.NoError(t, err)
	return engine, db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createBidder(t *testing.T, db *gorm.DB, name string, banned bool) *models.BidderProfile {
	t.Helper()
	bidder := &models.BidderProfile{
		CustomerID:  "customer-" + name,
		DisplayName: name,
		Email:       name + "@example.com",
		IsBanned:    banned,
	}
	require.NoError(t, db.Create(bidder).Error)
	return bidder
}

// createAuction 建立起標價 50、加價幅度 5、一小時後結束的進行中拍賣
func createAuction(t *testing.T, db *gorm.DB, mutate ...func(*models.Auction)) *models.Auction {
	t.Helper()
	auction := &models.Auction{
		Title:            "Scalextric Ford GT40",
		Slug:             "scalextric-ford-gt40-" + uuid.NewString()[:8],
		Condition:        models.ConditionNewSealed,
		Images:           datatypes.NewJSONType([]models.AuctionImage{}),
		StartingPrice:    dec("50"),
		CurrentPrice:     dec("50"),
		BidIncrement:     dec("5"),
		Status:           models.AuctionStatusActive,
		StartsAt:         testNow.Add(-time.Hour),
		EndsAt:           testNow.Add(time.Hour),
		OriginalEndTime:  testNow.Add(time.Hour),
		AntiSnipeSeconds: 30,
		CreatedBy:        "admin",
	}
	for _, fn := range mutate {
		fn(auction)
	}
	require.NoError(t, db.Create(auction).Error)
	return auction
}

func reloadAuction(t *testing.T, db *gorm.DB, id uuid.UUID) *models.Auction {
	t.Helper()
	var auction models.Auction
	require.NoError(t, db.Take(&auction, "id = ?", id).Error)
	return &auction
}

func winningBids(t *testing.T, db *gorm.DB, auctionID uuid.UUID) []models.Bid {
	t.Helper()
	var bids []models.Bid
	require.NoError(t, db.Where("auction_id = ? AND is_winning = ?", auctionID, true).Find(&bids).Error)
	return bids
}

func notificationsOf(t *testing.T, db *gorm.DB, bidderID uuid.UUID) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, db.Where("bidder_id = ?", bidderID).Order("created_at ASC").Find(&notifications).Error)
	return notifications
}

var bg = context.Background()
