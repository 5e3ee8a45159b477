package auction

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"r66slot/models"
)

func formatPrice(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

func (e *Engine) price(amount decimal.Decimal) string {
	return formatPrice(e.options.currencySymbol, amount)
}

func (e *Engine) outbidNotification(bidderID uuid.UUID, auction *models.Auction, amount decimal.Decimal, now time.Time) models.Notification {
	return models.Notification{
		BidderID:  bidderID,
		AuctionID: &auction.ID,
		Type:      models.NotificationTypeOutbid,
		Title:     "You have been outbid!",
		Message:   fmt.Sprintf("Someone bid %s on \"%s\"", e.price(amount), auction.Title),
		CreatedAt: now,
	}
}

func (e *Engine) winnerNotification(bidderID uuid.UUID, auction *models.Auction, amount decimal.Decimal, now time.Time) models.Notification {
	return models.Notification{
		BidderID:  bidderID,
		AuctionID: &auction.ID,
		Type:      models.NotificationTypeWinner,
		Title:     "You won the auction!",
		Message:   fmt.Sprintf("You won \"%s\" with a bid of %s. Please complete payment.", auction.Title, e.price(amount)),
		CreatedAt: now,
	}
}

func (e *Engine) paymentReceivedNotification(bidderID uuid.UUID, auction *models.Auction, now time.Time) models.Notification {
	return models.Notification{
		BidderID:  bidderID,
		AuctionID: &auction.ID,
		Type:      models.NotificationTypePaymentReminder,
		Title:     "Payment Received!",
		Message:   fmt.Sprintf("Your payment for \"%s\" has been confirmed. Thank you!", auction.Title),
		CreatedAt: now,
	}
}
