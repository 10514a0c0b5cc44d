package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	natsbroker "github.com/coliin8/book-explorer/internal/adapters/eventbroker/nats"
	"github.com/coliin8/book-explorer/internal/adapters/handlers/http/chi"
	booklisthandler "github.com/coliin8/book-explorer/internal/adapters/handlers/http/chi/v1/booklist"
	"github.com/coliin8/book-explorer/internal/adapters/repository/postgres"
	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/service/booklist"
	"github.com/coliin8/book-explorer/internal/core/service/gateway"
	"github.com/coliin8/book-explorer/internal/core/service/validation"

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

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//task publisher
	publisher, err := natsbroker.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close nats publisher", "error", err)
		}
	}()
	logger.Info("nats publisher initialized")

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	//services
	validator := validation.NewValidationService(unitOfWork.BookFileRepo(), cfg.Upload, cfg.Minio)
	storageGateway := gateway.NewStorageGateway(unitOfWork, publisher, cfg.Tasks, logger)
	bookListService := booklist.NewBookListService(unitOfWork, validator, storageGateway, cfg.Tasks, logger)

	//http
	bookListHandler := booklisthandler.NewBookListHandlerV1(bookListService, logger)

	router := chi.NewRouter(logger, bookListHandler, cfg.Upload.MaxSizeBytes, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

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
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
