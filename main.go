package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"r66slot/api"
)

const shutdownTimeout = 10 * time.Second

func main() {
	args := ParseArgs()
	if !args.Validate() {
		panic("missing arguments")
	}
	server, err := api.NewServer(args.ServerConfig)
	if err != nil {
		panic(err)
	}
	server.Start()
	defer server.Close()

	router := gin.Default()
	// 讓 strict handler 收到的 *gin.Context 跟隨請求的取消
	router.ContextWithFallback = true
	router.Use(cors.New(cors.Config{
		AllowOrigins:     args.ServerConfig.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Location", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.RegisterHandlers(router)

	httpServer := &http.Server{
		Addr:    args.ServerURL,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("HTTP server listening", slog.String("addr", args.ServerURL))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// SSE 連線在 ctx 結束前不會返回，超時後強制關閉
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Fail to shutdown HTTP server gracefully", slog.Any("error", err))
			return httpServer.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", slog.Any("error", err))
	}
}
