package store

import (
	"context"
	"fmt"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/config"
)

// Open connects to the backend selected by cfg.Backend. Callers run
// Migrate before use.
func Open(ctx context.Context, cfg *config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		s, err := NewPostgresStore(ctx, cfg.Postgres.DSN(), cfg.Postgres.PoolSize)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		s, err := NewSQLiteStore(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendRedis:
		s, err := DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
