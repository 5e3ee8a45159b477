package api

import "time"

type ServerConfig struct {
	ID       string
	DB       DBConfig
	Redis    RedisConfig
	S3       S3Config
	Auth     AuthConfig
	Auction  AuctionConfig
	Throttle ThrottleConfig
	CORS     CORSConfig
}

type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Bucket          string
	PublicBaseURL   string
}

type DBConfig struct {
	User        string
	Password    string
	Host        string
	Port        int
	Database    string
	Schema      string
	AutoMigrate bool
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string

	StreamKeys RedisStreamKeys
}

type RedisStreamKeys struct {
	Bids          string
	Notifications string
}

// AuthConfig 包含三種身分的驗證資訊
//   - CustomerJWTSecret: 商店前台簽發 customer_token 的 HS256 金鑰
//   - AdminToken: 後台管理 API 使用的 Bearer token
//   - CronSecret: 排程觸發端點使用的 Bearer token
type AuthConfig struct {
	CustomerJWTSecret string
	AdminToken        string
	CronSecret        string
}

type AuctionConfig struct {
	LockTimeout    time.Duration
	SweepInterval  time.Duration
	Currency       string
	CurrencySymbol string
}

// ThrottleConfig 是出價頻率限制，Limit 為 0 時不限制
type ThrottleConfig struct {
	Limit  int
	Window time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}
