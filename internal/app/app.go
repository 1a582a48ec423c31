// Package app assembles the campaign store from configuration. Both the
// HTTP server and the campaignctl CLI start through it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-manager/internal/adapter/file"
	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/adapter/persistence"
	"campaign-manager/internal/adapter/postgres"
	redisadapter "campaign-manager/internal/adapter/redis"
	"campaign-manager/internal/adapter/sqlite"
	"campaign-manager/internal/adapter/usecase"
	"campaign-manager/internal/config"
	"campaign-manager/internal/config/configs"
	"campaign-manager/internal/core/port"
	"campaign-manager/internal/db"
)

// OpenStorage connects the slot storage selected by cfg.Storage.Backend.
// The returned close func releases the connection and is never nil.
func OpenStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.SlotStorage, func(), error) {
	noop := func() {}
	switch cfg.Storage.Backend {
	case configs.BackendFile:
		return file.NewStorage(cfg.File.Dir), noop, nil

	case configs.BackendMemory:
		return memory.NewStorage(), noop, nil

	case configs.BackendPostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, noop, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, noop, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewSlotRepository(pool), pool.Close, nil

	case configs.BackendRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, noop, err
		}
		return redisadapter.NewStorage(client), func() { _ = client.Close() }, nil

	case configs.BackendSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		return sqlite.NewStorage(sqlDB), func() { _ = sqlDB.Close() }, nil
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// NewStore opens storage, loads the campaign store from it and, when
// cfg.SeedDemo is set, fills an empty store with demo campaigns.
func NewStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*usecase.CampaignStore, func(), error) {
	storage, closeFn, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, closeFn, err
	}

	adapter := persistence.NewAdapter(storage, cfg.Storage.Slot, logger)
	store := usecase.NewCampaignStore(adapter, logger)
	store.Load(ctx)

	if cfg.SeedDemo {
		n, err := db.Seed(ctx, store, db.DemoCampaigns)
		if err != nil {
			closeFn()
			return nil, func() {}, fmt.Errorf("seed demo campaigns: %w", err)
		}
		if n > 0 {
			logger.Info("demo campaigns added", slog.Int("count", n))
		}
	}
	return store, closeFn, nil
}
