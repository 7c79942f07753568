package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"shareit/config"
	"shareit/internal/gateway"
	"shareit/internal/httpserver"
	"shareit/internal/middleware"
	"shareit/pkg/log"
	"shareit/pkg/ratelimit"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	gin.SetMode(cfg.HTTPServer.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShareIt gateway...")
	logger.Infof(ctx, "Forwarding to %s", cfg.Gateway.ServerURL)

	// 3. Rate limiter (optional, shared through Redis when configured)
	limiter, closeLimiter, err := ratelimit.New(ctx, ratelimit.Options{
		Enabled:       cfg.RateLimit.Enabled,
		PerMin:        cfg.RateLimit.PerMin,
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize rate limiter: ", err)
		return
	}
	defer closeLimiter()

	// 4. Gateway
	gw, err := gateway.New(gateway.Config{
		Logger:    logger,
		ServerURL: cfg.Gateway.ServerURL,
		Timeout:   cfg.Gateway.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gateway: ", err)
		return
	}
	handler := gw.Handler(middleware.New(logger, limiter), cfg.CORS.AllowedOrigins)

	// 5. Run
	if err := httpserver.Serve(ctx, logger, cfg.Gateway.Port, handler); err != nil {
		logger.Error(ctx, "Failed to run gateway: ", err)
		return
	}

	logger.Info(ctx, "Gateway stopped gracefully")
}
