package auction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"r66slot/models"
)

func TestListAuctions(t *testing.T) {
	engine, db := setupEngine(t)
	require.NoError(t, engine.SeedCategories(bg))

	categories, err := engine.ListCategories(bg)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "1-32-slot-cars", categories[0].Slug)
	assert.Equal(t, "collectibles", categories[5].Slug)

	slotCars := categories[0].ID
	soon := createAuction(t, db, func(a *models.Auction) {
		a.Title = "Fly Porsche 917"
		a.EndsAt = testNow.Add(10 * time.Minute)
		a.CategoryID = &slotCars
		a.CurrentPrice = dec("300")
		a.Featured = true
	})
	later := createAuction(t, db, func(a *models.Auction) {
		a.Title = "SCX Seat Leon"
		a.EndsAt = testNow.Add(5 * time.Hour)
		a.CurrentPrice = dec("80")
		a.Brand = lo.ToPtr("SCX")
	})
	createAuction(t, db, func(a *models.Auction) {
		a.Status = models.AuctionStatusSold
	})

	tests := []struct {
		name    string
		filter  AuctionFilter
		wantIDs []uuid.UUID
		total   int64
	}{
		{
			name:    "預設列出進行中並依結束時間排序",
			filter:  AuctionFilter{},
			wantIDs: []uuid.UUID{soon.ID, later.ID},
			total:   2,
		},
		{
			name:    "依價格由低到高",
			filter:  AuctionFilter{Sort: SortPriceLow},
			wantIDs: []uuid.UUID{later.ID, soon.ID},
			total:   2,
		},
		{
			name:    "依分類篩選",
			filter:  AuctionFilter{Category: "1-32-slot-cars"},
			wantIDs: []uuid.UUID{soon.ID},
			total:   1,
		},
		{
			name:    "搜尋品牌不分大小寫",
			filter:  AuctionFilter{Search: "scx"},
			wantIDs: []uuid.UUID{later.ID},
			total:   1,
		},
		{
			name:    "依品牌篩選",
			filter:  AuctionFilter{Brand: "scx"},
			wantIDs: []uuid.UUID{later.ID},
			total:   1,
		},
		{
			name:    "依價格區間篩選",
			filter:  AuctionFilter{MinPrice: lo.ToPtr(dec("100")), MaxPrice: lo.ToPtr(dec("300"))},
			wantIDs: []uuid.UUID{soon.ID},
			total:   1,
		},
		{
			name:    "不限狀態",
			filter:  AuctionFilter{Status: StatusAll, Sort: SortMostBids},
			total:   3,
		},
		{
			name:    "只列出精選",
			filter:  AuctionFilter{Featured: true},
			wantIDs: []uuid.UUID{soon.ID},
			total:   1,
		},
		{
			name:    "分頁",
			filter:  AuctionFilter{Page: 2, Limit: 1},
			wantIDs: []uuid.UUID{later.ID},
			total:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := engine.ListAuctions(bg, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
			if tt.wantIDs == nil {
				return
			}
			assert.Equal(t, tt.wantIDs, lo.Map(page.Auctions, func(a models.Auction, _ int) uuid.UUID { return a.ID }))
		})
	}

	page, err := engine.ListAuctions(bg, AuctionFilter{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
}

func TestGetAuction(t *testing.T) {
	engine, db := setupEngine(t)
	auction := createAuction(t, db)

	byID, err := engine.GetAuction(bg, auction.ID.String())
	require.NoError(t, err)
	assert.Equal(t, auction.Slug, byID.Slug)

	bySlug, err := engine.GetAuction(bg, auction.Slug)
	require.NoError(t, err)
	assert.Equal(t, auction.ID, bySlug.ID)

	_, err = engine.GetAuction(bg, "missing-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBidHistory(t *testing.T) {
	engine, db := setupEngine(t)
	auction := createAuction(t, db)
	sam := createBidder(t, db, "sam", false)
	tina := createBidder(t, db, "tina", false)

	_, err := engine.PlaceBid(bg, testNow, auction.ID, sam.ID, dec("55"))
	require.NoError(t, err)
	_, err = engine.PlaceBid(bg, testNow.Add(time.Second), auction.ID, tina.ID, dec("65"))
	require.NoError(t, err)

	bids, err := engine.ListBids(bg, auction.ID)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	assert.True(t, bids[0].Amount.Equal(dec("65")))
	assert.True(t, bids[0].IsWinning)
	require.NotNil(t, bids[0].Bidder)
	assert.Equal(t, "tina", bids[0].Bidder.DisplayName)
	assert.False(t, bids[1].IsWinning)

	mine, err := engine.ListBidderBids(bg, sam.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, auction.Title, mine[0].AuctionTitle)
	assert.True(t, mine[0].CurrentPrice.Equal(dec("65")))
}

func TestNotifications(t *testing.T) {
	engine, db := setupEngine(t)
	auction := createAuction(t, db)
	uma := createBidder(t, db, "uma", false)
	victor := createBidder(t, db, "victor", false)

	_, err := engine.PlaceBid(bg, testNow, auction.ID, uma.ID, dec("55"))
	require.NoError(t, err)
	_, err = engine.PlaceBid(bg, testNow, auction.ID, victor.ID, dec("60"))
	require.NoError(t, err)

	notifications, err := engine.ListNotifications(bg, uma.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)

	// 不能標記別人的通知
	assert.ErrorIs(t, engine.MarkNotificationRead(bg, victor.ID, notifications[0].ID), ErrNotFound)
	require.NoError(t, engine.MarkNotificationRead(bg, uma.ID, notifications[0].ID))

	notifications, err = engine.ListNotifications(bg, uma.ID)
	require.NoError(t, err)
	assert.True(t, notifications[0].Read)
}

func TestWatchlist(t *testing.T) {
	engine, db := setupEngine(t)
	auction := createAuction(t, db)
	wendy := createBidder(t, db, "wendy", false)

	require.NoError(t, engine.Watch(bg, testNow, wendy.ID, auction.ID))
	require.NoError(t, engine.Watch(bg, testNow, wendy.ID, auction.ID))
	assert.ErrorIs(t, engine.Watch(bg, testNow, wendy.ID, uuid.New()), ErrNotFound)

	items, err := engine.ListWatchlist(bg, wendy.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Auction)
	assert.Equal(t, auction.ID, items[0].Auction.ID)

	require.NoError(t, engine.Unwatch(bg, wendy.ID, auction.ID))
	items, err = engine.ListWatchlist(bg, wendy.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStats(t *testing.T) {
	engine, db := setupEngine(t)
	createAuction(t, db)
	auction := createAuction(t, db)
	createAuction(t, db, func(a *models.Auction) { a.Status = models.AuctionStatusDraft })
	xena := createBidder(t, db, "xena", false)
	_, err := engine.PlaceBid(bg, testNow, auction.ID, xena.ID, dec("55"))
	require.NoError(t, err)

	stats, err := engine.Stats(bg)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalAuctions)
	assert.Equal(t, int64(2), stats.ActiveAuctions)
	assert.Equal(t, int64(1), stats.TotalBids)
	assert.True(t, stats.Revenue.IsZero())
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	engine, _ := setupEngine(t)
	require.NoError(t, engine.SeedCategories(bg))
	require.NoError(t, engine.SeedCategories(bg))

	categories, err := engine.ListCategories(bg)
	require.NoError(t, err)
	assert.Len(t, categories, len(defaultCategories))
}
