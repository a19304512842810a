package main

import (
	"fmt"
	"log/slog"

	"github.com/terraincognita07/medlifequest/internal/config"
	"github.com/terraincognita07/medlifequest/internal/db"
	"github.com/terraincognita07/medlifequest/internal/kv"
)

// openStore opens the configured state backend. The returned func releases it
// and logs, rather than returns, a close failure.
func openStore(cfg *config.Config, appLogger *slog.Logger) (kv.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		database, err := db.OpenSQLite(cfg.Store.Path, appLogger)
		if err != nil {
			return nil, nil, fmt.Errorf("database init failed: %w", err)
		}
		return db.NewStateRepository(database), func() {
			if err := db.CloseSQLite(database); err != nil {
				appLogger.Warn("close sqlite failed", slog.String("error", err.Error()))
			}
		}, nil
	case config.BackendRedis:
		store, err := db.OpenRedis(db.RedisOptions{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("redis init failed: %w", err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				appLogger.Warn("close redis failed", slog.String("error", err.Error()))
			}
		}, nil
	case config.BackendMemory:
		appLogger.Warn("memory backend selected, state is lost on exit")
		return kv.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
