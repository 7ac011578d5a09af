package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/FightBet_Go/migrations"
)

// Migration commands accepted by RunMigrations
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// Migrate applies all pending migrations
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return RunMigrations(ctx, pool, MigrateUp)
}

// RunMigrations runs a goose command against the embedded migrations
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, command string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	slog.Default().Info(LogMsgRunningMigrations, "command", command)
	if err := goose.RunContext(ctx, command, db, MigrationDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}
	slog.Default().Info(LogMsgMigrationsComplete, "command", command)

	return nil
}
