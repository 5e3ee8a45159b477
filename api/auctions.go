package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"r66slot/api/openapi"
	"r66slot/auction"
	"r66slot/models"
)

var listableStatuses = []models.AuctionStatus{
	auction.StatusAll,
	models.AuctionStatusScheduled,
	models.AuctionStatusActive,
	models.AuctionStatusEnded,
	models.AuctionStatusSold,
	models.AuctionStatusUnsold,
}

func parseOptionalDecimal(value *string) (*decimal.Decimal, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Check service health
// (GET /health)
func (impl *ServerImpl) GetHealth(ctx context.Context, request openapi.GetHealthRequestObject) (openapi.GetHealthResponseObject, error) {
	const op = "GetHealth"
	sqlDB, err := impl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		impl.logger.Error("Database is unreachable", slog.String("op", op), slog.Any("error", err))
		return openapi.GetHealth503JSONResponse{Status: "unavailable"}, nil
	}
	return openapi.GetHealth200JSONResponse{Status: "ok"}, nil
}

// List auctions
// (GET /auctions)
func (impl *ServerImpl) GetAuctions(ctx context.Context, request openapi.GetAuctionsRequestObject) (openapi.GetAuctionsResponseObject, error) {
	params := request.Params
	filter := auction.AuctionFilter{
		Status:    models.AuctionStatus(lo.FromPtr(params.Status)),
		Category:  lo.FromPtr(params.Category),
		Brand:     lo.FromPtr(params.Brand),
		Condition: models.AuctionCondition(lo.FromPtr(params.Condition)),
		Search:    lo.FromPtr(params.Search),
		Featured:  lo.FromPtr(params.Featured),
		Sort:      auction.AuctionSort(lo.FromPtr(params.Sort)),
		Page:      lo.FromPtr(params.Page),
		Limit:     lo.FromPtr(params.Limit),
	}
	if filter.Status != "" && !lo.Contains(listableStatuses, filter.Status) {
		return openapi.GetAuctions400JSONResponse{Error: "Invalid status"}, nil
	}
	var err error
	if filter.MinPrice, err = parseOptionalDecimal(params.MinPrice); err != nil {
		return openapi.GetAuctions400JSONResponse{Error: "Invalid min_price"}, nil
	}
	if filter.MaxPrice, err = parseOptionalDecimal(params.MaxPrice); err != nil {
		return openapi.GetAuctions400JSONResponse{Error: "Invalid max_price"}, nil
	}

	page, err := impl.engine.ListAuctions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return openapi.GetAuctions200JSONResponse(page), nil
}

// List auction categories
// (GET /auctions/categories)
func (impl *ServerImpl) GetCategories(ctx context.Context, request openapi.GetCategoriesRequestObject) (openapi.GetCategoriesResponseObject, error) {
	categories, err := impl.engine.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.GetCategories200JSONResponse(categories), nil
}

// Get auction details by id or slug
// (GET /auctions/{auctionID})
func (impl *ServerImpl) GetAuction(ctx context.Context, request openapi.GetAuctionRequestObject) (openapi.GetAuctionResponseObject, error) {
	a, err := impl.engine.GetAuction(ctx, request.AuctionID)
	if err != nil {
		return nil, err
	}
	return openapi.GetAuction200JSONResponse(*a), nil
}

// List the highest bids of an auction
// (GET /auctions/{auctionID}/bids)
func (impl *ServerImpl) GetAuctionBids(ctx context.Context, request openapi.GetAuctionBidsRequestObject) (openapi.GetAuctionBidsResponseObject, error) {
	a, err := impl.engine.GetAuction(ctx, request.AuctionID)
	if err != nil {
		return nil, err
	}
	bids, err := impl.engine.ListBids(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	// 只揭露競標者的顯示名稱
	return openapi.GetAuctionBids200JSONResponse(lo.Map(bids, func(bid models.Bid, _ int) openapi.BidView {
		view := openapi.BidView{
			ID:        bid.ID,
			Amount:    bid.Amount,
			IsWinning: bid.IsWinning,
			CreatedAt: bid.CreatedAt,
			Bidder:    openapi.BidderView{ID: bid.BidderID},
		}
		if bid.Bidder != nil {
			view.Bidder.DisplayName = bid.Bidder.DisplayName
		}
		return view
	})), nil
}

// Track live bids of an auction
// (GET /auctions/{auctionID}/events)
func (impl *ServerImpl) GetAuctionEvents(ctx context.Context, request openapi.GetAuctionEventsRequestObject) (openapi.GetAuctionEventsResponseObject, error) {
	const op = "GetAuctionEvents"
	c := ctx.(*gin.Context)

	a, err := impl.engine.GetAuction(ctx, request.AuctionID)
	if err != nil {
		return nil, err
	}
	// 只有尚未結束的拍賣可以訂閱
	if a.Status != models.AuctionStatusActive && a.Status != models.AuctionStatusScheduled {
		return openapi.GetAuctionEvents410JSONResponse{Error: "Auction has ended"}, nil
	}

	topic := a.ID.String()
	ch, err := impl.bidHub.Subscribe(topic)
	if err != nil {
		impl.logger.Warn("Fail to subscribe auction events", slog.String("op", op), slog.Any("error", err))
		return openapi.GetAuctionEvents503JSONResponse{Error: "Live feed is unavailable"}, nil
	}
	defer impl.bidHub.Unsubscribe(topic, ch)

	// SSE請求合法，開始初始化串流
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	heartbeat := time.NewTicker(impl.heartbeat)
	defer heartbeat.Stop()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("bid", event)
			return true
		// 一段時間沒有事件就發送註解行，確保瀏覽器和Cloudflare不會斷開連線
		case <-heartbeat.C:
			_, err := fmt.Fprint(w, ": ping\n\n")
			return err == nil
		}
	})
	return openapi.GetAuctionEvents200Response{}, nil
}

// Activate scheduled auctions and close expired ones
// (POST /auctions/cron)
func (impl *ServerImpl) PostAuctionCron(ctx context.Context, request openapi.PostAuctionCronRequestObject) (openapi.PostAuctionCronResponseObject, error) {
	result, err := impl.runCron(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.PostAuctionCron200JSONResponse(result), nil
}

// Activate scheduled auctions and close expired ones
// (GET /auctions/cron)
func (impl *ServerImpl) GetAuctionCron(ctx context.Context, request openapi.GetAuctionCronRequestObject) (openapi.GetAuctionCronResponseObject, error) {
	result, err := impl.runCron(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.GetAuctionCron200JSONResponse(result), nil
}

func (impl *ServerImpl) runCron(ctx context.Context) (openapi.CronResult, error) {
	now := impl.clock()
	activated, err := impl.engine.ActivateScheduledAuctions(ctx, now)
	if err != nil {
		return openapi.CronResult{}, err
	}
	sweep, err := impl.engine.CloseExpiredAuctions(ctx, now)
	if err != nil {
		return openapi.CronResult{}, err
	}
	return openapi.CronResult{
		Activated: activated,
		Closed:    sweep.Closed,
		Timestamp: now.UTC().Format(time.RFC3339),
	}, nil
}
