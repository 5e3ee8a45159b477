package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	lru "github.com/hashicorp/golang-lru"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	redisAdapter "r66slot/adapters/redis"
	internalS3 "r66slot/adapters/s3"
	"r66slot/adapters/sse"
	"r66slot/auction"
	"r66slot/models"
)

const (
	bidderCacheSize   = 4096
	sseHeartbeat      = 30 * time.Second
	sweepLockTimeout  = time.Second
	imageUploadWindow = time.Hour
	imageUploadLimit  = 20
)

type ServerImpl struct {
	engine               *auction.Engine
	scheduler            *auction.Scheduler
	bidProducer          redisAdapter.IProducer[auction.BidEvent]
	notificationProducer redisAdapter.IProducer[auction.NotificationEvent]
	bidHub               sse.IHub[auction.BidEvent]
	uploader             IImageUploader
	htmlChecker          *bluemonday.Policy
	redisClient          *redis.Client
	bidderCache          *lru.Cache
	db                   *gorm.DB
	logger               *slog.Logger
	heartbeat            time.Duration
	clock                func() time.Time

	config ServerConfig
}

func NewServer(config ServerConfig) (*ServerImpl, error) {
	const op = "NewServer"

	// 初始化S3客戶端
	s3Cfg, err := awsCfg.LoadDefaultConfig(
		context.Background(),
		awsCfg.WithBaseEndpoint(config.S3.Endpoint),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.S3.AccessKeyID, config.S3.SecretAccessKey, "")),
		awsCfg.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to load AWS config, err=%w", op, err)
	}
	uploader, err := internalS3.NewImageUploader(
		s3.NewFromConfig(s3Cfg, func(o *s3.Options) { o.UsePathStyle = true }),
		config.S3.Bucket,
		config.S3.PublicBaseURL,
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create image uploader, err=%w", op, err)
	}

	// 初始化資料庫連線
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s", config.DB.User, config.DB.Password, config.DB.Host, config.DB.Port, config.DB.Database, config.DB.Schema)
	namingStrategy := schema.NamingStrategy{}
	if config.DB.Schema != "" {
		namingStrategy.TablePrefix = config.DB.Schema + "."
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		NamingStrategy: namingStrategy,
	})
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}
	if config.DB.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("[%s] Fail to migrate database, err=%w", op, err)
		}
	}

	// 初始化Redis連線
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	return newServer(config, db, redisClient, uploader, slog.Default())
}

// newServer 組裝拍賣引擎與 Redis 上的事件管線
func newServer(config ServerConfig, db *gorm.DB, redisClient *redis.Client, uploader IImageUploader, logger *slog.Logger) (*ServerImpl, error) {
	const op = "newServer"
	logger = logger.With(slog.String("instance", config.ID))

	// 初始化事件發布者
	bidProducer, err := redisAdapter.NewProducer[auction.BidEvent](
		redisClient,
		config.Redis.StreamKeys.Bids,
		redisAdapter.WithProducerLogger[auction.BidEvent](logger),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create bid producer, err=%w", op, err)
	}
	notificationProducer, err := redisAdapter.NewProducer[auction.NotificationEvent](
		redisClient,
		config.Redis.StreamKeys.Notifications,
		redisAdapter.WithProducerLogger[auction.NotificationEvent](logger),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create notification producer, err=%w", op, err)
	}

	// 初始化SSE推播中心
	consumer, err := redisAdapter.NewConsumer[auction.BidEvent](
		redisClient,
		config.Redis.StreamKeys.Bids,
		redisAdapter.WithConsumerLogger[auction.BidEvent](logger),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create bid consumer, err=%w", op, err)
	}
	bidHub, err := sse.NewHub[auction.BidEvent](
		consumer,
		func(event auction.BidEvent) string { return event.AuctionID.String() },
		sse.WithHubLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create sse hub, err=%w", op, err)
	}

	// 初始化拍賣引擎
	engineOpts := []auction.EngineOption{
		auction.WithEngineLogger(logger),
		auction.WithBidPublisher(bidProducer),
		auction.WithNotificationPublisher(notificationProducer),
	}
	if config.Auction.LockTimeout > 0 {
		engineOpts = append(engineOpts, auction.WithLockTimeout(config.Auction.LockTimeout))
	}
	if config.Auction.Currency != "" {
		engineOpts = append(engineOpts, auction.WithCurrency(config.Auction.Currency))
	}
	if config.Auction.CurrencySymbol != "" {
		engineOpts = append(engineOpts, auction.WithCurrencySymbol(config.Auction.CurrencySymbol))
	}
	engine, err := auction.NewEngine(db, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create auction engine, err=%w", op, err)
	}

	// 初始化結標排程，多個節點時只有取得鎖的節點會執行
	lockKey := config.Redis.KeyPrefix + "auction:sweep:lock"
	schedulerOpts := []auction.SchedulerOption{
		auction.WithSchedulerLogger(logger),
		auction.WithSchedulerMutex(func() auction.Mutex {
			return redisAdapter.NewAutoRenewMutex(
				redisClient,
				lockKey,
				redisAdapter.WithAutoRenewMutexAcquireTimeout(sweepLockTimeout),
			)
		}),
	}
	if config.Auction.SweepInterval > 0 {
		schedulerOpts = append(schedulerOpts, auction.WithSchedulerInterval(config.Auction.SweepInterval))
	}
	scheduler, err := auction.NewScheduler(engine, schedulerOpts...)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create scheduler, err=%w", op, err)
	}

	bidderCache, err := lru.New(bidderCacheSize)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create bidder cache, err=%w", op, err)
	}

	return &ServerImpl{
		engine:               engine,
		scheduler:            scheduler,
		bidProducer:          bidProducer,
		notificationProducer: notificationProducer,
		bidHub:               bidHub,
		uploader:             uploader,
		htmlChecker:          bluemonday.UGCPolicy(),
		redisClient:          redisClient,
		bidderCache:          bidderCache,
		db:                   db,
		logger:               logger,
		heartbeat:            sseHeartbeat,
		clock:                time.Now,
		config:               config,
	}, nil
}

// Engine 回傳伺服器使用的拍賣引擎
func (impl *ServerImpl) Engine() *auction.Engine {
	return impl.engine
}

func (impl *ServerImpl) Start() {
	// 啟動事件發布者
	impl.bidProducer.Start()
	impl.notificationProducer.Start()
	// 啟動sse推播中心
	impl.bidHub.Start()
	// 啟動結標排程
	impl.logger.Info("Start auction scheduler")
	impl.scheduler.Start()
}

func (impl *ServerImpl) Close() {
	// 關閉結標排程
	impl.scheduler.Close()
	impl.logger.Info("Auction scheduler stopped")
	// 關閉sse推播中心
	impl.bidHub.Close()
	// 關閉事件發布者
	impl.bidProducer.Close()
	impl.notificationProducer.Close()
}
