package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	internalS3 "r66slot/adapters/s3"
	"r66slot/auction"
	"r66slot/models"
)

const (
	testJWTSecret  = "customer-secret"
	testAdminToken = "admin-token"
	testCronSecret = "cron-secret"
)

var (
	testNow    = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakePutter 在記憶體中記錄上傳的物件
type fakePutter struct {
	keys []string
}

func (f *fakePutter) PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	f.keys = append(f.keys, *params.Key)
	return &awss3.PutObjectOutput{}, nil
}

type testServer struct {
	impl   *ServerImpl
	router *gin.Engine
	db     *gorm.DB
	redis  *redis.Client
	mr     *miniredis.Miniredis
	putter *fakePutter
}

func testConfig() ServerConfig {
	return ServerConfig{
		ID: "test",
		Redis: RedisConfig{
			KeyPrefix: "test:",
			StreamKeys: RedisStreamKeys{
				Bids:          "test:bids",
				Notifications: "test:notifications",
			},
		},
		Auth: AuthConfig{
			CustomerJWTSecret: testJWTSecret,
			AdminToken:        testAdminToken,
			CronSecret:        testCronSecret,
		},
		Auction: AuctionConfig{
			SweepInterval: time.Hour,
		},
		Throttle: ThrottleConfig{
			Limit:  5,
			Window: 10 * time.Second,
		},
	}
}

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

func setupServer(t *testing.T, mutate ...func(*ServerConfig)) *testServer {
	t.Helper()
	config := testConfig()
	for _, fn := range mutate {
		fn(&config)
	}

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	putter := &fakePutter{}
	uploader, err := internalS3.NewImageUploader(putter, "auction-images", "https://cdn.example.com", internalS3.WithUploaderMaxSize(1024))
	require.NoError(t, err)

	db := setupDB(t)
	impl, err := newServer(config, db, client, uploader, discardLog)
	require.NoError(t, err)
	impl.clock = func() time.Time { return testNow }

	router := gin.New()
	router.ContextWithFallback = true
	impl.RegisterHandlers(router)
	return &testServer{
		impl:   impl,
		router: router,
		db:     db,
		redis:  client,
		mr:     mr,
		putter: putter,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// createAuction 透過引擎建立標題不重複、起標價 50、加價幅度 5、一小時後結束的進行中拍賣
func (s *testServer) createAuction(t *testing.T, mutate ...func(*auction.NewAuction)) *models.Auction {
	t.Helper()
	input := auction.NewAuction{
		Title:         "Scalextric Ford GT40 " + uuid.NewString()[:8],
		StartingPrice: dec("50"),
		BidIncrement:  dec("5"),
		StartsAt:      testNow.Add(-time.Hour),
		EndsAt:        testNow.Add(time.Hour),
		CreatedBy:     "test",
	}
	for _, fn := range mutate {
		fn(&input)
	}
	created, err := s.impl.engine.CreateAuction(context.Background(), testNow, input)
	require.NoError(t, err)
	return created
}

func customerTokenFor(t *testing.T, customerID, email, username string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomerClaims{
		CustomerID: customerID,
		Email:      email,
		Username:   username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// do 送出請求，body 為 nil 以外的值會被編碼成 JSON
func (s *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// fakeSource 以記憶體通道模擬 Redis stream 消費者
type fakeSource struct {
	ch   chan auction.BidEvent
	once sync.Once
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan auction.BidEvent, 16)}
}

func (s *fakeSource) Start() {}

func (s *fakeSource) Subscribe() <-chan auction.BidEvent {
	return s.ch
}

func (s *fakeSource) Close() {
	s.once.Do(func() { close(s.ch) })
}

type jsonBody = map[string]any
