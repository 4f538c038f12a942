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

	"github.com/BarkinBalci/email-analytics-dashboard/docs"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/cache"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/cache/memory"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/cache/valkey"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/config"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/dashboard"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/handler"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/logger"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/metrics"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository/backend"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Email Analytics Dashboard API
// @version 1.0
// @description Outreach email analytics computed over a selectable date range.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New("api", cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting dashboard service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort),
		zap.String("store", cfg.Store.Driver),
		zap.String("cache", cfg.Cache.Driver))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize repository
	repo, err := backend.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open email store", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error("Failed to close email store", zap.Error(err))
		}
	}()

	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}
	log.Info("Database schema initialized")

	// Initialize snapshot cache
	snapshotCache, err := newSnapshotCache(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to create snapshot cache", zap.Error(err))
	}
	defer func() {
		if err := snapshotCache.Close(); err != nil {
			log.Error("Failed to close snapshot cache", zap.Error(err))
		}
	}()

	// Initialize dashboard service
	dashboardService := service.NewDashboardService(repo, snapshotCache, service.DashboardOptions{
		Metrics: metrics.Options{
			TargetTitles: cfg.Metrics.TargetTitles,
			TopCompanies: cfg.Metrics.TopCompanies,
		},
		Location:         cfg.Dashboard.Location(),
		DefaultRangeDays: cfg.Dashboard.DefaultRangeDays,
	}, log)

	// Initialize handler
	h, err := handler.NewHandler(dashboardService, handler.Options{
		DefaultTheme:    dashboard.ParseTheme(cfg.Dashboard.DefaultTheme, dashboard.ThemeLight),
		RefreshInterval: cfg.Dashboard.RefreshInterval(),
		TopCompanies:    cfg.Metrics.TopCompanies,
	}, log)
	if err != nil {
		log.Fatal("Failed to create handler", zap.Error(err))
	}

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("API server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down API server gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down API server", zap.Error(err))
	}
}

func newSnapshotCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.SnapshotCache, error) {
	switch cfg.Cache.Driver {
	case config.CacheValkey:
		client, err := valkey.NewClient(ctx, &cfg.Valkey, log)
		if err != nil {
			return nil, err
		}
		return valkey.New(client, cfg.Cache.TTL(), log), nil
	default:
		return memory.New(cfg.Cache.Size, cfg.Cache.TTL()), nil
	}
}
