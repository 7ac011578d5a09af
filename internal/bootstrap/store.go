package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/FightBet_Go/internal/config"
	"github.com/osse101/FightBet_Go/internal/database"
	"github.com/osse101/FightBet_Go/internal/database/bolt"
	"github.com/osse101/FightBet_Go/internal/database/memory"
	"github.com/osse101/FightBet_Go/internal/database/postgres"
	"github.com/osse101/FightBet_Go/internal/database/sqlite"
	"github.com/osse101/FightBet_Go/internal/logger"
	"github.com/osse101/FightBet_Go/internal/repository"
)

// OpenStore opens the fight store selected by STORE_BACKEND. Postgres is migrated
// to the latest schema when migrate is true.
func OpenStore(ctx context.Context, cfg *config.Config, migrate bool) (repository.Fights, error) {
	var (
		store repository.Fights
		err   error
	)

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		store, err = openPostgres(ctx, cfg, migrate)
	case config.StoreBackendSQLite:
		if err = ensureDir(cfg.SQLitePath); err == nil {
			store, err = sqlite.Open(cfg.SQLitePath)
		}
	case config.StoreBackendBolt:
		if err = ensureDir(cfg.BoltPath); err == nil {
			store, err = bolt.Open(cfg.BoltPath)
		}
	case config.StoreBackendMemory:
		store = memory.NewFightStore()
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, cfg.StoreBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	logger.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, migrate bool) (repository.Fights, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
	}
	return postgres.NewFightRepository(pool), nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateStoreDir, err)
	}
	return nil
}
