package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/config"
	"github.com/nani454554/portfolio/internal/repository"
	"github.com/nani454554/portfolio/internal/repository/mongo"
	"github.com/nani454554/portfolio/internal/repository/postgres"
)

// openStore connects the record store selected by STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.RecordStore, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := mongo.NewClient(ctx, &cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return mongo.NewRepository(client, log), nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, &cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepository(pool, log), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
