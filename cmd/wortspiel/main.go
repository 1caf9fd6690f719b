package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wortwerk/wortspiel/internal/api"
	"github.com/wortwerk/wortspiel/internal/cleanup"
	"github.com/wortwerk/wortspiel/internal/config"
	"github.com/wortwerk/wortspiel/internal/puzzle"
	"github.com/wortwerk/wortspiel/internal/storage"
	"github.com/wortwerk/wortspiel/internal/store"
	"github.com/wortwerk/wortspiel/internal/wordlist"
	"github.com/wortwerk/wortspiel/internal/words"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting wortspiel",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"language", cfg.Game.Language,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	// Run database migrations
	slog.Info("running database migrations", "dir", cfg.Database.MigrationsDir)
	if err := storage.MigrateFromDSN(initCtx, cfg.Database.DSN, cfg.Database.MigrationsDir); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize results archive
	archive, err := storage.NewPostgresRepository(initCtx, storage.PostgresConfig{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: int32(cfg.Database.MaxOpenConns),
		MaxIdleConns: int32(cfg.Database.MaxIdleConns),
	})
	if err != nil {
		slog.Error("failed to create results archive", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected successfully")

	// Initialize key-value store
	kv, err := store.NewRedisStore(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.Info("redis connected successfully")

	// Load starter word lists
	starter := wordlist.NewLoader()
	if err := starter.LoadFromDir(cfg.Wordlist.Dir); err != nil {
		slog.Warn("failed to load word lists from dir", "dir", cfg.Wordlist.Dir, "error", err)
	}

	// External word providers, tried in order during enrichment
	datamuse := words.NewDatamuseProvider(cfg.Providers.DatamuseURL, cfg.Providers.Topics, cfg.Providers.Timeout)
	providers := words.Chain{
		datamuse,
		words.NewRandomWordProvider(cfg.Providers.RandomWordURL, cfg.Providers.Timeout),
	}

	pool := words.NewPool(kv, providers, datamuse, starter, cfg.Game.Language)
	sessions := puzzle.NewService(kv, pool, starter, cfg.Game.Language)

	// Initialize session pruner
	cleaner := cleanup.NewCleaner(kv, cfg.Cleanup.Interval, cfg.Cleanup.Retention)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start session pruner
	cleaner.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg.Server, cfg.Game, kv, pool, sessions, archive)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := kv.Close(); err != nil {
		slog.Error("redis close error", "error", err)
	}
	if err := archive.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("wortspiel stopped")
}
