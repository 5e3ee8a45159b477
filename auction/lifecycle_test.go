package auction

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"r66slot/models"
)

func TestGenerateSlug(t *testing.T) {
	suffix := strconv.FormatInt(testNow.UnixMilli(), 36)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "一般標題",
			title: "Scalextric Ford GT40",
			want:  "scalextric-ford-gt40-" + suffix,
		},
		{
			name:  "比例與符號",
			title: "  1:32 Ninco -- Porsche 911 (Boxed!) ",
			want:  "1-32-ninco-porsche-911-boxed-" + suffix,
		},
		{
			name:  "只有符號",
			title: "!!!",
			want:  suffix,
		},
		{
			name:  "過長的標題會被截斷",
			title: strings.Repeat("a", 120),
			want:  strings.Repeat("a", maxSlugBaseLength) + "-" + suffix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title, testNow))
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from models.AuctionStatus
		to   models.AuctionStatus
		want bool
	}{
		{models.AuctionStatusDraft, models.AuctionStatusScheduled, true},
		{models.AuctionStatusDraft, models.AuctionStatusActive, true},
		{models.AuctionStatusScheduled, models.AuctionStatusActive, true},
		{models.AuctionStatusScheduled, models.AuctionStatusCancelled, true},
		{models.AuctionStatusActive, models.AuctionStatusEnded, true},
		{models.AuctionStatusActive, models.AuctionStatusUnsold, true},
		{models.AuctionStatusActive, models.AuctionStatusCancelled, true},
		{models.AuctionStatusEnded, models.AuctionStatusSold, true},
		{models.AuctionStatusEnded, models.AuctionStatusActive, false},
		{models.AuctionStatusSold, models.AuctionStatusCancelled, false},
		{models.AuctionStatusUnsold, models.AuctionStatusActive, false},
		{models.AuctionStatusCancelled, models.AuctionStatusActive, false},
		{models.AuctionStatusActive, models.AuctionStatusSold, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCreateAuction(t *testing.T) {
	base := func() NewAuction {
		return NewAuction{
			Title:         "Carrera Ferrari 312",
			StartingPrice: dec("120"),
			StartsAt:      testNow.Add(time.Hour),
			EndsAt:        testNow.Add(48 * time.Hour),
			CreatedBy:     "admin",
		}
	}

	tests := []struct {
		name       string
		mutate     func(*NewAuction)
		wantStatus models.AuctionStatus
		wantErr    error
	}{
		{
			name:       "未來開始的拍賣為排程",
			wantStatus: models.AuctionStatusScheduled,
		},
		{
			name:       "開始時間已到直接進行",
			mutate:     func(n *NewAuction) { n.StartsAt = testNow },
			wantStatus: models.AuctionStatusActive,
		},
		{
			name:       "草稿",
			mutate:     func(n *NewAuction) { n.Draft = true; n.StartsAt = testNow },
			wantStatus: models.AuctionStatusDraft,
		},
		{
			name:    "缺少標題",
			mutate:  func(n *NewAuction) { n.Title = " " },
			wantErr: ErrInvalidAuction,
		},
		{
			name:    "起標價為零",
			mutate:  func(n *NewAuction) { n.StartingPrice = dec("0") },
			wantErr: ErrInvalidAuction,
		},
		{
			name:    "結束時間早於開始時間",
			mutate:  func(n *NewAuction) { n.EndsAt = n.StartsAt.Add(-time.Minute) },
			wantErr: ErrInvalidAuction,
		},
		{
			name:    "負的防狙擊秒數",
			mutate:  func(n *NewAuction) { n.AntiSnipeSeconds = lo.ToPtr(-1) },
			wantErr: ErrInvalidAuction,
		},
		{
			name:    "未知的品相",
			mutate:  func(n *NewAuction) { n.Condition = "mint" },
			wantErr: ErrInvalidAuction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, db := setupEngine(t)
			input := base()
			if tt.mutate != nil {
				tt.mutate(&input)
			}

			auction, err := engine.CreateAuction(bg, testNow, input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, auction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, auction.Status)

			stored := reloadAuction(t, db, auction.ID)
			assert.Equal(t, tt.wantStatus, stored.Status)
			assert.True(t, stored.CurrentPrice.Equal(dec("120")))
			assert.True(t, stored.BidIncrement.Equal(dec("1")))
			assert.Equal(t, 30, stored.AntiSnipeSeconds)
			assert.Equal(t, models.ConditionNewSealed, stored.Condition)
			assert.True(t, stored.EndsAt.Equal(stored.OriginalEndTime))
			assert.True(t, strings.HasPrefix(stored.Slug, "carrera-ferrari-312-"))
			assert.Empty(t, stored.Images.Data())
		})
	}
}

func TestCancelAuction(t *testing.T) {
	engine, db := setupEngine(t)
	active := createAuction(t, db)
	sold := createAuction(t, db, func(a *models.Auction) { a.Status = models.AuctionStatusSold })

	require.NoError(t, engine.CancelAuction(bg, testNow, active.ID))
	assert.Equal(t, models.AuctionStatusCancelled, reloadAuction(t, db, active.ID).Status)

	assert.ErrorIs(t, engine.CancelAuction(bg, testNow, sold.ID), ErrInvalidTransition)
	assert.ErrorIs(t, engine.CancelAuction(bg, testNow, uuid.New()), ErrNotFound)

	// 取消後不能再出價
	olga := createBidder(t, db, "olga", false)
	_, err := engine.PlaceBid(bg, testNow, active.ID, olga.ID, dec("100"))
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestDeleteAuction(t *testing.T) {
	engine, db := setupEngine(t)
	active := createAuction(t, db)
	pat := createBidder(t, db, "pat", false)
	_, err := engine.PlaceBid(bg, testNow, active.ID, pat.ID, dec("55"))
	require.NoError(t, err)

	assert.ErrorIs(t, engine.DeleteAuction(bg, active.ID), ErrInvalidTransition)

	require.NoError(t, engine.CancelAuction(bg, testNow, active.ID))
	require.NoError(t, engine.DeleteAuction(bg, active.ID))

	var count int64
	require.NoError(t, db.Model(&models.Auction{}).Where("id = ?", active.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Bid{}).Where("auction_id = ?", active.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, engine.DeleteAuction(bg, active.ID), ErrNotFound)
}

func TestMarkPaymentSucceeded(t *testing.T) {
	engine, db := setupEngine(t)
	auction := createAuction(t, db)
	quinn := createBidder(t, db, "quinn", false)
	_, err := engine.PlaceBid(bg, testNow, auction.ID, quinn.ID, dec("150"))
	require.NoError(t, err)

	// 還沒有付款紀錄
	_, err = engine.MarkPaymentSucceeded(bg, testNow, auction.ID, "pi_123")
	require.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = engine.CloseExpiredAuctions(bg, testNow.Add(2*time.Hour))
	require.NoError(t, err)

	paidAt := testNow.Add(3 * time.Hour)
	payment, err := engine.MarkPaymentSucceeded(bg, paidAt, auction.ID, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
	require.NotNil(t, payment.Reference)
	assert.Equal(t, "pi_123", *payment.Reference)

	assert.Equal(t, models.AuctionStatusSold, reloadAuction(t, db, auction.ID).Status)

	notifications := notificationsOf(t, db, quinn.ID)
	require.Len(t, notifications, 2)
	assert.Equal(t, models.NotificationTypePaymentReminder, notifications[1].Type)
	assert.Equal(t, "Payment Received!", notifications[1].Title)
	assert.Equal(t, `Your payment for "Scalextric Ford GT40" has been confirmed. Thank you!`, notifications[1].Message)

	// 重複通知不會再次寫入
	_, err = engine.MarkPaymentSucceeded(bg, paidAt, auction.ID, "pi_123")
	require.NoError(t, err)
	assert.Len(t, notificationsOf(t, db, quinn.ID), 2)

	stats, err := engine.Stats(bg)
	require.NoError(t, err)
	assert.True(t, stats.Revenue.Equal(dec("150")))
}

func TestResolveBidder(t *testing.T) {
	engine, _ := setupEngine(t)

	first, err := engine.ResolveBidder(bg, Customer{ID: "cust-1", Email: "racer@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "racer", first.DisplayName)

	again, err := engine.ResolveBidder(bg, Customer{ID: "cust-1", Email: "racer@example.com", Username: "Racer X"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "racer", again.DisplayName)

	named, err := engine.ResolveBidder(bg, Customer{ID: "cust-2", Email: "b@example.com", Username: "Speed Racer"})
	require.NoError(t, err)
	assert.Equal(t, "Speed Racer", named.DisplayName)
	assert.NotEqual(t, first.ID, named.ID)

	_, err = engine.ResolveBidder(bg, Customer{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetBidderBanned(t *testing.T) {
	engine, db := setupEngine(t)
	auction := createAuction(t, db)
	rex := createBidder(t, db, "rex", false)

	require.NoError(t, engine.SetBidderBanned(bg, rex.ID, true))
	_, err := engine.PlaceBid(bg, testNow, auction.ID, rex.ID, dec("55"))
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, engine.SetBidderBanned(bg, rex.ID, false))
	_, err = engine.PlaceBid(bg, testNow, auction.ID, rex.ID, dec("55"))
	assert.NoError(t, err)

	assert.ErrorIs(t, engine.SetBidderBanned(bg, uuid.New(), true), ErrBidderNotFound)
}

func TestAttachImage(t *testing.T) {
	engine, db := setupEngine(t)
	auction := createAuction(t, db)

	image, err := engine.AttachImage(bg, testNow, auction.ID, UploadedImage{
		URL:      "https://cdn.example.com/auctions/a.png",
		MIMEType: "image/png",
		Size:     2048,
		Alt:      "front",
	})
	require.NoError(t, err)
	assert.Equal(t, auction.ID, image.AuctionID)

	stored := reloadAuction(t, db, auction.ID)
	require.Len(t, stored.Images.Data(), 1)
	assert.Equal(t, "https://cdn.example.com/auctions/a.png", stored.Images.Data()[0].URL)

	count, err := engine.CountRecentImages(bg, auction.ID, testNow.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = engine.AttachImage(bg, testNow, uuid.New(), UploadedImage{URL: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
