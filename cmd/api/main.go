package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nani454554/portfolio/docs"
	"github.com/nani454554/portfolio/internal/config"
	"github.com/nani454554/portfolio/internal/handler"
	"github.com/nani454554/portfolio/internal/logger"
	"github.com/nani454554/portfolio/internal/queue"
	"github.com/nani454554/portfolio/internal/queue/sqs"
	"github.com/nani454554/portfolio/internal/repository"
	"github.com/nani454554/portfolio/internal/repository/clickhouse"
	"github.com/nani454554/portfolio/internal/resume"
	"github.com/nani454554/portfolio/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Portfolio API
// @version 1.0
// @description Contact form, resume download and visitor analytics for the portfolio site
// @host localhost:8001
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		_ = log.Sync()
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort),
		zap.String("store", cfg.Store.Driver))

	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open record store", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error("Failed to close record store", zap.Error(err))
		}
	}()

	if err := store.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize record store schema", zap.Error(err))
	}
	log.Info("Record store schema initialized")

	var publisher queue.TrackingPublisher = queue.NopPublisher{}
	if cfg.SQS.Enabled() {
		sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
		if err != nil {
			log.Fatal("Failed to create SQS client", zap.Error(err))
		}
		publisher = sqsClient
	} else {
		log.Info("SQS not configured, tracking stream disabled")
	}

	var timeline repository.TimelineReader
	if cfg.ClickHouse.Enabled() {
		chClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
		if err != nil {
			log.Fatal("Failed to create ClickHouse client", zap.Error(err))
		}
		defer func() {
			if err := chClient.Close(); err != nil {
				log.Error("Failed to close ClickHouse client", zap.Error(err))
			}
		}()
		timeline = clickhouse.NewRepository(chClient, log)
	} else {
		log.Info("ClickHouse not configured, timeline analytics disabled")
	}

	portfolioService := service.NewPortfolioService(store, publisher, timeline, resume.Generate, log)

	h := handler.NewHandler(portfolioService, handler.Options{
		CORSOrigins:    cfg.Service.CORSOrigins,
		ResumeFilename: cfg.Resume.Filename,
	}, log)

	server := &http.Server{
		Addr:              ":" + cfg.Service.APIPort,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API server starting", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("Shutting down API server", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("API server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down API server", zap.Error(err))
	}
}
