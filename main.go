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

	"github.com/samber/lo"

	"github.com/1230harry/commercial-db-api/internal/auth"
	"github.com/1230harry/commercial-db-api/internal/config"
	delivery "github.com/1230harry/commercial-db-api/internal/delivery/http"
	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/messaging"
	"github.com/1230harry/commercial-db-api/internal/messaging/kafka"
	"github.com/1230harry/commercial-db-api/internal/repository/sqlstore"
	"github.com/1230harry/commercial-db-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	// --- Database ---
	db, err := sqlstore.Open(cfg.Dialect, cfg.DSN(), cfg.MaxConns)
	if err != nil {
		slog.Error("Failed to init database", "driver", cfg.Dialect.Name(), "err", err)
		os.Exit(1)
	}
	defer db.Close()

	store := sqlstore.NewStore(db, cfg.Dialect)

	// --- Change feed ---
	var publisher messaging.Publisher = messaging.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		slog.Info("Publishing change events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("Failed to close publisher", "err", err)
		}
	}()

	// --- Services ---
	resources := lo.Map(entity.Resources(), func(res entity.Resource, _ int) delivery.ResourceService {
		return service.NewResourceService(res, sqlstore.NewResourceRepository(store, res), publisher)
	})
	tokens := auth.NewTokens(cfg.JWTSecret)
	authSvc := service.NewAuthService(sqlstore.NewUserRepository(store), tokens)

	// --- HTTP API ---
	handler := delivery.NewHandler(resources, sqlstore.NewDetailsRepository(store), authSvc, tokens, db)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "err", err)
	}
}
