package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	natsbroker "github.com/coliin8/book-explorer/internal/adapters/eventbroker/nats"
	"github.com/coliin8/book-explorer/internal/adapters/notifier/webhook"
	"github.com/coliin8/book-explorer/internal/adapters/repository/postgres"
	"github.com/coliin8/book-explorer/internal/adapters/storage/minio"
	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/port"
	"github.com/coliin8/book-explorer/internal/core/service/cleanup"
	"github.com/coliin8/book-explorer/internal/core/service/taskrunner"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// Initialize database
	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	minioAdapter, err := minio.NewAdapter(cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized")

	// Initialize repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	// Initialize services
	webhookNotifier := webhook.NewWebhookNotifier(cfg.Notifier, logger)
	runner := taskrunner.NewTaskRunner(unitOfWork, minioAdapter, webhookNotifier, cfg.Tasks, logger)
	cleanupService := cleanup.NewCleanupService(unitOfWork, logger)

	// Initialize NATS consumer
	natsConsumer, err := natsbroker.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := natsConsumer.Close(); err != nil {
			logger.Error("failed to close NATS consumer", "error", err)
		}
	}()
	logger.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, runner); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS subscription active")

	// init cleanup task
	go initCleanupTask(ctx, cleanupService, cfg.Tasks, logger)

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down worker")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Close NATS consumer
	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}

	// Wait for shutdown context or completion
	<-shutdownCtx.Done()
	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		logger.Info("shutdown timeout exceeded")
	}

	logger.Info("worker shutdown complete")
}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, cfg config.TaskConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.CleanupEvery)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", cfg.CleanupEvery, "ttl", cfg.ResolvedTTL)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			err := service.CleanupResolvedTasks(ctx, time.Now().UTC().Add(-cfg.ResolvedTTL))
			if err != nil {
				logger.Error("failed to cleanup resolved tasks", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
