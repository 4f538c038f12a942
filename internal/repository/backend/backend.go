package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/config"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository/clickhouse"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository/postgres"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/repository/sqlite"
)

// Open connects the repository selected by cfg.Store.Driver
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.EmailRepository, error) {
	log.Info("Opening email store", zap.String("driver", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.StoreClickHouse:
		client, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
		if err != nil {
			return nil, err
		}
		return clickhouse.NewRepository(client, log), nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, &cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepository(pool, log), nil

	case config.StoreSQLite:
		repo, err := sqlite.Open(cfg.SQLite.Path, log)
		if err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}
