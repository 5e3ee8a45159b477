package api

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"r66slot/api/openapi"
)

// allowBid 檢查出價頻率，Redis 無法使用時不阻擋出價
func (impl *ServerImpl) allowBid(ctx context.Context, auctionID, bidderID uuid.UUID) bool {
	const op = "allowBid"
	throttle := impl.config.Throttle
	if throttle.Limit <= 0 || throttle.Window <= 0 {
		return true
	}
	key := fmt.Sprintf("%sbid:throttle:%s:%s", impl.config.Redis.KeyPrefix, auctionID, bidderID)
	status, err := BidThrottleScript.Run(
		ctx,
		impl.redisClient,
		[]string{key},
		throttle.Limit,
		throttle.Window.Milliseconds(),
	).Int()
	if err != nil {
		impl.logger.Warn("Fail to check bid throttle", slog.String("op", op), slog.Any("error", err))
		return true
	}
	return status == 1
}

// Place a bid on an auction
// (POST /auctions/{auctionID}/bids)
func (impl *ServerImpl) PostAuctionBid(ctx context.Context, request openapi.PostAuctionBidRequestObject) (openapi.PostAuctionBidResponseObject, error) {
	bidder := bidderID(ctx)

	if !impl.allowBid(ctx, request.AuctionID, bidder) {
		return openapi.PostAuctionBid429JSONResponse{
			Body: openapi.ErrorResponse{Error: "Too many bids, slow down"},
			Headers: openapi.PostAuctionBid429ResponseHeaders{
				RetryAfter: int(math.Ceil(impl.config.Throttle.Window.Seconds())),
			},
		}, nil
	}

	result, err := impl.engine.PlaceBid(ctx, impl.clock(), request.AuctionID, bidder, request.Body.Amount)
	if err != nil {
		return nil, err
	}
	impl.logger.Info(
		"Higher bid occurs",
		slog.String("bidder", bidder.String()),
		slog.String("auction_id", request.AuctionID.String()),
		slog.String("amount", result.Amount.String()),
		slog.Bool("extended", result.Extended),
	)
	return openapi.PostAuctionBid200JSONResponse(result), nil
}

// Watch an auction
// (POST /auctions/{auctionID}/watch)
func (impl *ServerImpl) PostAuctionWatch(ctx context.Context, request openapi.PostAuctionWatchRequestObject) (openapi.PostAuctionWatchResponseObject, error) {
	if err := impl.engine.Watch(ctx, impl.clock(), bidderID(ctx), request.AuctionID); err != nil {
		return nil, err
	}
	return openapi.PostAuctionWatch200JSONResponse{Watching: true}, nil
}

// Stop watching an auction
// (DELETE /auctions/{auctionID}/watch)
func (impl *ServerImpl) DeleteAuctionWatch(ctx context.Context, request openapi.DeleteAuctionWatchRequestObject) (openapi.DeleteAuctionWatchResponseObject, error) {
	if err := impl.engine.Unwatch(ctx, bidderID(ctx), request.AuctionID); err != nil {
		return nil, err
	}
	return openapi.DeleteAuctionWatch200JSONResponse{Watching: false}, nil
}

// List my bids
// (GET /me/bids)
func (impl *ServerImpl) GetMyBids(ctx context.Context, request openapi.GetMyBidsRequestObject) (openapi.GetMyBidsResponseObject, error) {
	bids, err := impl.engine.ListBidderBids(ctx, bidderID(ctx))
	if err != nil {
		return nil, err
	}
	return openapi.GetMyBids200JSONResponse(bids), nil
}

// List my notifications
// (GET /me/notifications)
func (impl *ServerImpl) GetMyNotifications(ctx context.Context, request openapi.GetMyNotificationsRequestObject) (openapi.GetMyNotificationsResponseObject, error) {
	notifications, err := impl.engine.ListNotifications(ctx, bidderID(ctx))
	if err != nil {
		return nil, err
	}
	return openapi.GetMyNotifications200JSONResponse(notifications), nil
}

// Mark a notification as read
// (PUT /me/notifications/{notificationID}/read)
func (impl *ServerImpl) PutMyNotificationRead(ctx context.Context, request openapi.PutMyNotificationReadRequestObject) (openapi.PutMyNotificationReadResponseObject, error) {
	if err := impl.engine.MarkNotificationRead(ctx, bidderID(ctx), request.NotificationID); err != nil {
		return nil, err
	}
	return openapi.PutMyNotificationRead204Response{}, nil
}

// List my watchlist
// (GET /me/watchlist)
func (impl *ServerImpl) GetMyWatchlist(ctx context.Context, request openapi.GetMyWatchlistRequestObject) (openapi.GetMyWatchlistResponseObject, error) {
	items, err := impl.engine.ListWatchlist(ctx, bidderID(ctx))
	if err != nil {
		return nil, err
	}
	return openapi.GetMyWatchlist200JSONResponse(items), nil
}
