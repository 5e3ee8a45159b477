package auction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"r66slot/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
	historyLimit    = 50
)

// StatusAll 讓拍賣列表不限狀態
const StatusAll models.AuctionStatus = "all"

// AuctionSort 是拍賣列表的排序方式
type AuctionSort string

const (
	SortEndingSoon AuctionSort = "ending_soon"
	SortNewest     AuctionSort = "newly_listed"
	SortPriceLow   AuctionSort = "price_low"
	SortPriceHigh  AuctionSort = "price_high"
	SortMostBids   AuctionSort = "most_bids"
)

var sortColumns = map[AuctionSort]clause.OrderByColumn{
	SortEndingSoon: {Column: clause.Column{Name: "ends_at"}},
	SortNewest:     {Column: clause.Column{Name: "created_at"}, Desc: true},
	SortPriceLow:   {Column: clause.Column{Name: "current_price"}},
	SortPriceHigh:  {Column: clause.Column{Name: "current_price"}, Desc: true},
	SortMostBids:   {Column: clause.Column{Name: "bid_count"}, Desc: true},
}

// AuctionFilter 是拍賣列表的查詢條件，Status 為空時只列出進行中的拍賣，"all" 代表不限狀態
type AuctionFilter struct {
	Status    models.AuctionStatus
	Category  string
	Brand     string
	Condition models.AuctionCondition
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Search    string
	Featured  bool
	Sort      AuctionSort
	Page      int
	Limit     int
}

// AuctionPage 是分頁後的拍賣列表
type AuctionPage struct {
	Auctions   []models.Auction `json:"auctions"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

func (f *AuctionFilter) normalize() {
	if f.Status == "" {
		f.Status = models.AuctionStatusActive
	}
	if _, ok := sortColumns[f.Sort]; !ok {
		f.Sort = SortEndingSoon
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	f.Limit = min(f.Limit, MaxPageSize)
}

// ListAuctions 依條件分頁列出拍賣
func (e *Engine) ListAuctions(ctx context.Context, filter AuctionFilter) (AuctionPage, error) {
	const op = "ListAuctions"
	filter.normalize()

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Status != StatusAll {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.Category != "" {
			db = db.Where(
				"category_id IN (?)",
				e.db.Model(&models.AuctionCategory{}).Select("id").Where("slug = ?", filter.Category),
			)
		}
		if filter.Brand != "" {
			db = db.Where("LOWER(brand) = ?", strings.ToLower(filter.Brand))
		}
		if filter.Condition != "" {
			db = db.Where("condition = ?", filter.Condition)
		}
		if filter.MinPrice != nil {
			db = db.Where("current_price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("current_price <= ?", *filter.MaxPrice)
		}
		if filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			db = db.Where("LOWER(title) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern)
		}
		if filter.Featured {
			db = db.Where("featured = ?", true)
		}
		return db
	}

	var total int64
	if err := e.db.WithContext(ctx).Model(&models.Auction{}).Scopes(scope).Count(&total).Error; err != nil {
		return AuctionPage{}, fmt.Errorf("[%s] Fail to count auctions, err=%w", op, err)
	}

	auctions := []models.Auction{}
	if err := e.db.WithContext(ctx).
		Scopes(scope).
		Preload("Category").
		Order(sortColumns[filter.Sort]).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&auctions).Error; err != nil {
		return AuctionPage{}, fmt.Errorf("[%s] Fail to list auctions, err=%w", op, err)
	}

	return AuctionPage{
		Auctions:   auctions,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}, nil
}

// GetAuction 以編號或網址代稱取得拍賣
func (e *Engine) GetAuction(ctx context.Context, idOrSlug string) (*models.Auction, error) {
	const op = "GetAuction"

	query := e.db.WithContext(ctx).Preload("Category")
	if id, err := uuid.Parse(idOrSlug); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("slug = ?", idOrSlug)
	}

	var auction models.Auction
	if err := query.Take(&auction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("[%s] Fail to load auction, err=%w", op, err)
	}
	return &auction, nil
}

// ListBids 列出拍賣金額最高的出價
func (e *Engine) ListBids(ctx context.Context, auctionID uuid.UUID) ([]models.Bid, error) {
	const op = "ListBids"

	bids := []models.Bid{}
	if err := e.db.WithContext(ctx).
		Preload("Bidder").
		Where("auction_id = ?", auctionID).
		Order("amount DESC").
		Limit(historyLimit).
		Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list bids, err=%w", op, err)
	}
	return bids, nil
}

// BidderBid 是競標者出價紀錄與對應拍賣的組合
type BidderBid struct {
	models.Bid
	AuctionTitle  string               `json:"auction_title"`
	AuctionSlug   string               `json:"auction_slug"`
	AuctionStatus models.AuctionStatus `json:"auction_status"`
	CurrentPrice  decimal.Decimal      `json:"current_price"`
	EndsAt        time.Time            `json:"ends_at"`
}

// ListBidderBids 列出競標者最近的出價
func (e *Engine) ListBidderBids(ctx context.Context, bidderID uuid.UUID) ([]BidderBid, error) {
	const op = "ListBidderBids"

	var bids []models.Bid
	if err := e.db.WithContext(ctx).
		Preload("Auction").
		Where("bidder_id = ?", bidderID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list bidder bids, err=%w", op, err)
	}

	result := make([]BidderBid, 0, len(bids))
	for _, bid := range bids {
		item := BidderBid{Bid: bid}
		if bid.Auction != nil {
			item.AuctionTitle = bid.Auction.Title
			item.AuctionSlug = bid.Auction.Slug
			item.AuctionStatus = bid.Auction.Status
			item.CurrentPrice = bid.Auction.CurrentPrice
			item.EndsAt = bid.Auction.EndsAt
		}
		result = append(result, item)
	}
	return result, nil
}

// ListNotifications 列出競標者最近的通知
func (e *Engine) ListNotifications(ctx context.Context, bidderID uuid.UUID) ([]models.Notification, error) {
	const op = "ListNotifications"

	notifications := []models.Notification{}
	if err := e.db.WithContext(ctx).
		Where("bidder_id = ?", bidderID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list notifications, err=%w", op, err)
	}
	return notifications, nil
}

// MarkNotificationRead 將通知標記為已讀，只能標記自己的通知
func (e *Engine) MarkNotificationRead(ctx context.Context, bidderID, notificationID uuid.UUID) error {
	const op = "MarkNotificationRead"

	result := e.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND bidder_id = ?", notificationID, bidderID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("[%s] Fail to mark notification read, err=%w", op, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Watch 將拍賣加入競標者的關注清單，重複加入不會報錯
func (e *Engine) Watch(ctx context.Context, now time.Time, bidderID, auctionID uuid.UUID) error {
	const op = "Watch"

	var count int64
	if err := e.db.WithContext(ctx).Model(&models.Auction{}).Where("id = ?", auctionID).Count(&count).Error; err != nil {
		return fmt.Errorf("[%s] Fail to check auction, err=%w", op, err)
	}
	if count == 0 {
		return ErrNotFound
	}

	item := models.WatchlistItem{BidderID: bidderID, AuctionID: auctionID, CreatedAt: now.UTC()}
	if err := e.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bidder_id"}, {Name: "auction_id"}},
			DoNothing: true,
		}).
		Create(&item).Error; err != nil {
		return fmt.Errorf("[%s] Fail to watch auction, err=%w", op, err)
	}
	return nil
}

// Unwatch 將拍賣移出競標者的關注清單
func (e *Engine) Unwatch(ctx context.Context, bidderID, auctionID uuid.UUID) error {
	const op = "Unwatch"

	if err := e.db.WithContext(ctx).
		Where("bidder_id = ? AND auction_id = ?", bidderID, auctionID).
		Delete(&models.WatchlistItem{}).Error; err != nil {
		return fmt.Errorf("[%s] Fail to unwatch auction, err=%w", op, err)
	}
	return nil
}

// ListWatchlist 列出競標者關注的拍賣
func (e *Engine) ListWatchlist(ctx context.Context, bidderID uuid.UUID) ([]models.WatchlistItem, error) {
	const op = "ListWatchlist"

	items := []models.WatchlistItem{}
	if err := e.db.WithContext(ctx).
		Preload("Auction").
		Where("bidder_id = ?", bidderID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list watchlist, err=%w", op, err)
	}
	return items, nil
}

// Stats 是後台儀表板的統計資料
type Stats struct {
	TotalAuctions  int64           `json:"total_auctions"`
	ActiveAuctions int64           `json:"active_auctions"`
	TotalBids      int64           `json:"total_bids"`
	Revenue        decimal.Decimal `json:"revenue"`
}

// Stats 統計拍賣數量、出價數量與已付款的營收
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	const op = "Stats"
	db := e.db.WithContext(ctx)

	var stats Stats
	if err := db.Model(&models.Auction{}).Count(&stats.TotalAuctions).Error; err != nil {
		return Stats{}, fmt.Errorf("[%s] Fail to count auctions, err=%w", op, err)
	}
	if err := db.Model(&models.Auction{}).
		Where("status = ?", models.AuctionStatusActive).
		Count(&stats.ActiveAuctions).Error; err != nil {
		return Stats{}, fmt.Errorf("[%s] Fail to count active auctions, err=%w", op, err)
	}
	if err := db.Model(&models.Bid{}).Count(&stats.TotalBids).Error; err != nil {
		return Stats{}, fmt.Errorf("[%s] Fail to count bids, err=%w", op, err)
	}

	var amounts []decimal.Decimal
	if err := db.Model(&models.AuctionPayment{}).
		Where("status = ?", models.PaymentStatusSucceeded).
		Pluck("amount", &amounts).Error; err != nil {
		return Stats{}, fmt.Errorf("[%s] Fail to sum revenue, err=%w", op, err)
	}
	stats.Revenue = decimal.Sum(decimal.Zero, amounts...)
	return stats, nil
}

// ListCategories 依排序列出所有分類
func (e *Engine) ListCategories(ctx context.Context) ([]models.AuctionCategory, error) {
	const op = "ListCategories"

	categories := []models.AuctionCategory{}
	if err := e.db.WithContext(ctx).Order("sort_order ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list categories, err=%w", op, err)
	}
	return categories, nil
}

var defaultCategories = []models.AuctionCategory{
	{Name: "1:32 Slot Cars", Slug: "1-32-slot-cars", SortOrder: 1},
	{Name: "1:24 Slot Cars", Slug: "1-24-slot-cars", SortOrder: 2},
	{Name: "Parts & Accessories", Slug: "parts-accessories", SortOrder: 3},
	{Name: "Track & Sets", Slug: "track-sets", SortOrder: 4},
	{Name: "Controllers", Slug: "controllers", SortOrder: 5},
	{Name: "Collectibles", Slug: "collectibles", SortOrder: 6},
}

// SeedCategories 寫入預設分類，已存在的分類不會被覆蓋
func (e *Engine) SeedCategories(ctx context.Context) error {
	const op = "SeedCategories"

	for _, category := range defaultCategories {
		if err := e.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
			Create(&category).Error; err != nil {
			return fmt.Errorf("[%s] Fail to seed category %s, err=%w", op, category.Slug, err)
		}
	}
	return nil
}
