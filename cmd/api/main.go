package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shareit/config"
	_ "shareit/docs" // Swagger docs
	"shareit/internal/httpserver"
	"shareit/pkg/log"
	"shareit/pkg/postgres"
	"shareit/pkg/ratelimit"
)

// @title       ShareIt API
// @description Peer-to-peer item sharing: users, items, bookings, comments and item requests.
// @version     1
// @host        localhost:9090
// @schemes     http
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShareIt server...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to apply schema: ", err)
		return
	}
	logger.Info(ctx, "PostgreSQL schema ready")

	// 4. Rate limiter (optional)
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

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		PostgresDB:     db,
		Limiter:        limiter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
