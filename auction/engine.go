package auction

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// Engine 是拍賣出價與結標的核心，所有會修改拍賣狀態的操作都透過資料庫交易加上列鎖完成
type Engine struct {
	db      *gorm.DB
	options engineOptions
}

type engineOptions struct {
	logger                *slog.Logger
	lockTimeout           time.Duration
	currency              string
	currencySymbol        string
	bidPublisher          Publisher[BidEvent]
	notificationPublisher Publisher[NotificationEvent]
}

type EngineOption func(*engineOptions)

func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithLockTimeout 設定等待拍賣列鎖的上限，超過時回傳 ErrBusy，0 代表不限制
func WithLockTimeout(timeout time.Duration) EngineOption {
	return func(o *engineOptions) {
		o.lockTimeout = timeout
	}
}

func WithCurrency(currency string) EngineOption {
	return func(o *engineOptions) {
		o.currency = currency
	}
}

func WithCurrencySymbol(symbol string) EngineOption {
	return func(o *engineOptions) {
		o.currencySymbol = symbol
	}
}

// WithBidPublisher 設定出價成功後的事件發布者，用於即時推播
func WithBidPublisher(publisher Publisher[BidEvent]) EngineOption {
	return func(o *engineOptions) {
		o.bidPublisher = publisher
	}
}

// WithNotificationPublisher 設定通知寫入後的事件發布者
func WithNotificationPublisher(publisher Publisher[NotificationEvent]) EngineOption {
	return func(o *engineOptions) {
		o.notificationPublisher = publisher
	}
}

func NewEngine(db *gorm.DB, opts ...EngineOption) (*Engine, error) {
	const op = "NewEngine"
	if db == nil {
		return nil, fmt.Errorf("[%s] Database is required", op)
	}

	// 默認選項
	options := engineOptions{
		logger:         slog.Default(),
		lockTimeout:    3 * time.Second,
		currency:       "ZAR",
		currencySymbol: "R",
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	if options.lockTimeout < 0 {
		return nil, fmt.Errorf("[%s] Lock timeout must not be negative, got %s", op, options.lockTimeout)
	}
	if len(options.currency) != 3 {
		return nil, fmt.Errorf("[%s] Currency must be an ISO 4217 code, got %q", op, options.currency)
	}

	return &Engine{
		db:      db,
		options: options,
	}, nil
}

// Currency 回傳引擎使用的幣別代碼
func (e *Engine) Currency() string {
	return e.options.currency
}

func (e *Engine) publishBid(event BidEvent) {
	if e.options.bidPublisher == nil {
		return
	}
	if err := e.options.bidPublisher.Publish(event); err != nil {
		e.options.logger.Error(
			"Fail to publish bid event",
			slog.String("op", "publishBid"),
			slog.String("auction_id", event.AuctionID.String()),
			slog.Any("error", err),
		)
	}
}

func (e *Engine) publishNotifications(events []NotificationEvent) {
	if e.options.notificationPublisher == nil {
		return
	}
	for _, event := range events {
		if err := e.options.notificationPublisher.Publish(event); err != nil {
			e.options.logger.Error(
				"Fail to publish notification event",
				slog.String("op", "publishNotifications"),
				slog.String("bidder_id", event.BidderID.String()),
				slog.Any("error", err),
			)
		}
	}
}
