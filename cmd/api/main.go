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

	"media-vault/internal/adapters/eventbroker/nats"
	"media-vault/internal/adapters/handlers/http/chi"
	assethandler "media-vault/internal/adapters/handlers/http/chi/v1/asset"
	folderhandler "media-vault/internal/adapters/handlers/http/chi/v1/folder"
	uploadhandler "media-vault/internal/adapters/handlers/http/chi/v1/upload"
	"media-vault/internal/adapters/hash"
	"media-vault/internal/adapters/repository/postgres"
	"media-vault/internal/adapters/storage/minio"
	"media-vault/internal/config"
	"media-vault/internal/core/port"
	"media-vault/internal/core/service/folder"
	"media-vault/internal/core/service/reaper"
	"media-vault/internal/core/service/registry"
	"media-vault/internal/core/service/upload"
	"media-vault/internal/core/service/usage"
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

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//events
	publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close nats publisher", "error", err)
		}
	}()

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)
	hasher := hash.NewSHA256()

	//services
	registryService := registry.NewRegistryService(unitOfWork, minioAdapter, publisher, logger)
	uploadService := upload.NewUploadService(unitOfWork, minioAdapter, registryService, hasher, cfg.Upload, logger)
	folderService := folder.NewFolderService(unitOfWork, logger)
	usageService := usage.NewUsageService(unitOfWork)
	reaperService := reaper.NewReaperService(unitOfWork, minioAdapter, logger)

	//http
	uploadHandler := uploadhandler.NewUploadHandlerV1(uploadService, cfg.Upload.MaxChunkSize, logger)
	assetHandler := assethandler.NewAssetHandlerV1(registryService, usageService, hasher, logger, cfg.Upload.MaxChunkSize)
	folderHandler := folderhandler.NewFolderHandlerV1(folderService, logger)

	router := chi.NewRouter(logger, uploadHandler, assetHandler, folderHandler, cfg.Env.Env, cfg.Upload.MaxChunkSize+(1<<20))
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

	// init reaper task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initReaperTask(ctx, reaperService, cfg.Upload.ReapEvery, logger)
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

func initReaperTask(ctx context.Context, service port.ReaperService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("reaper task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("reaper sweep starting")
			err := service.ReapExpiredSessions(ctx, time.Now())
			if err != nil {
				logger.Error("failed to reap expired sessions", "error", err)
			} else {
				logger.Info("reaper sweep completed successfully")
			}
		case <-ctx.Done():
			logger.Info("reaper task stopped")
			return
		}
	}

}
