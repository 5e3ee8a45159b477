package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"r66slot/api"
)

func ParseArgs() Args {
	// 本機開發時從 .env 載入環境變數，檔案不存在時略過
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")
	pflag.String("instance-id", "", "")
	pflag.StringSlice("cors-allowed-origins", []string{"http://localhost:3000"}, "")

	// auth config
	pflag.String("auth-customer-jwt-secret", "", "")
	pflag.String("auth-admin-token", "", "")
	pflag.String("auth-cron-secret", "", "")

	// s3 config
	pflag.String("s3-endpoint", "", "")
	pflag.String("s3-bucket", "", "")
	pflag.String("s3-public-base-url", "", "")
	pflag.String("s3-access-key-id", "", "")
	pflag.String("s3-secret-access-key", "", "")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-schema", "", "")
	pflag.Bool("db-auto-migrate", false, "")

	// redis config
	pflag.String("redis-addr", "", "")
	pflag.String("redis-password", "", "")
	pflag.Int("redis-db", 15, "")
	pflag.String("redis-key-prefix", "r66:", "")

	// redis stream keys
	pflag.String("redis-stream-key-for-bids", "r66-shared-bid-stream", "")
	pflag.String("redis-stream-key-for-notifications", "r66-notification-stream", "")

	// auction config
	pflag.Duration("auction-lock-timeout", 0, "")
	pflag.Duration("auction-sweep-interval", 0, "")
	pflag.String("auction-currency", "", "")
	pflag.String("auction-currency-symbol", "", "")

	// bid throttle config
	pflag.Int("bid-throttle-limit", 10, "")
	pflag.Duration("bid-throttle-window", 10*time.Second, "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("R66")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL: viper.GetString("server-url"),
		ServerConfig: api.ServerConfig{
			ID: viper.GetString("instance-id"),
			Auth: api.AuthConfig{
				CustomerJWTSecret: viper.GetString("auth-customer-jwt-secret"),
				AdminToken:        viper.GetString("auth-admin-token"),
				CronSecret:        viper.GetString("auth-cron-secret"),
			},
			S3: api.S3Config{
				Endpoint:        viper.GetString("s3-endpoint"),
				Bucket:          viper.GetString("s3-bucket"),
				PublicBaseURL:   viper.GetString("s3-public-base-url"),
				AccessKeyID:     viper.GetString("s3-access-key-id"),
				SecretAccessKey: viper.GetString("s3-secret-access-key"),
			},
			DB: api.DBConfig{
				User:        viper.GetString("db-user"),
				Password:    viper.GetString("db-password"),
				Host:        viper.GetString("db-host"),
				Port:        viper.GetInt("db-port"),
				Database:    viper.GetString("db-database"),
				Schema:      viper.GetString("db-schema"),
				AutoMigrate: viper.GetBool("db-auto-migrate"),
			},
			Redis: api.RedisConfig{
				Addr:      viper.GetString("redis-addr"),
				Password:  viper.GetString("redis-password"),
				DB:        viper.GetInt("redis-db"),
				KeyPrefix: viper.GetString("redis-key-prefix"),
				StreamKeys: api.RedisStreamKeys{
					Bids:          viper.GetString("redis-stream-key-for-bids"),
					Notifications: viper.GetString("redis-stream-key-for-notifications"),
				},
			},
			Auction: api.AuctionConfig{
				LockTimeout:    viper.GetDuration("auction-lock-timeout"),
				SweepInterval:  viper.GetDuration("auction-sweep-interval"),
				Currency:       viper.GetString("auction-currency"),
				CurrencySymbol: viper.GetString("auction-currency-symbol"),
			},
			Throttle: api.ThrottleConfig{
				Limit:  viper.GetInt("bid-throttle-limit"),
				Window: viper.GetDuration("bid-throttle-window"),
			},
			CORS: api.CORSConfig{
				AllowedOrigins: viper.GetStringSlice("cors-allowed-origins"),
			},
		},
	}
}

type Args struct {
	ServerURL    string
	ServerConfig api.ServerConfig
}

func (args Args) Validate() bool {
	return args.ServerURL != "" && args.ServerConfig.DB.Host != "" && args.ServerConfig.Auth.CustomerJWTSecret != ""
}
