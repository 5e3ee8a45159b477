package auction

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// 出價與拍賣生命週期的錯誤，呼叫端以 errors.Is 判斷
var (
	ErrNotFound          = errors.New("auction not found")
	ErrNotActive         = errors.New("auction is not active")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrBidTooLow         = errors.New("bid is too low")
	ErrForbidden         = errors.New("bidder is not allowed to bid")
	ErrBusy              = errors.New("auction is busy, retry later")
	ErrInvalidAmount     = errors.New("bid amount must be positive with at most 2 decimal places")
	ErrInvalidAuction    = errors.New("invalid auction")
	ErrInvalidTransition = errors.New("invalid auction status transition")
	ErrBidderNotFound    = errors.New("bidder not found")
	ErrPaymentNotFound   = errors.New("payment not found")
)

// BidTooLowError 表示出價低於目前價格加上加價幅度，Minimum 是可接受的最低金額
type BidTooLowError struct {
	Minimum decimal.Decimal
	Symbol  string
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid must be at least %s", formatPrice(e.Symbol, e.Minimum))
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// IsRetryable 判斷錯誤是否可以原封不動地重試
func IsRetryable(err error) bool {
	return errors.Is(err, ErrBusy)
}

// isDomainError 判斷錯誤是否為需要直接回傳給呼叫端的業務錯誤
func isDomainError(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrNotActive, ErrAuctionEnded, ErrBidTooLow, ErrForbidden, ErrBusy,
		ErrInvalidAmount, ErrInvalidAuction, ErrInvalidTransition, ErrBidderNotFound, ErrPaymentNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
