package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	_ "github.com/osse101/FightBet_Go/docs"
	"github.com/osse101/FightBet_Go/internal/bootstrap"
	"github.com/osse101/FightBet_Go/internal/config"
	"github.com/osse101/FightBet_Go/internal/database"
	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/logger"
)

const defaultListLimit = 20

func runServer(ctx context.Context, cmd *cli.Command) error {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.IsSet("port") {
		cfg.Port = int(cmd.Int("port"))
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		logger.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return bootstrap.Run(ctx, cfg)
}

func runMigrate(ctx context.Context, cmd *cli.Command) error {
	command := database.MigrateUp
	if cmd.Args().Present() {
		command = cmd.Args().First()
	}
	switch command {
	case database.MigrateUp, database.MigrateDown, database.MigrateStatus, database.MigrateVersion:
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.StoreBackend != config.StoreBackendPostgres {
		return errors.New("migrations only apply to the postgres store backend")
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.RunMigrations(ctx, pool, command)
}

func listFights(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := bootstrap.OpenStore(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer store.Close()

	fights, err := store.ListFights(ctx, int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "P1 bets", "P2 bets", "Winner", "Created")
	for _, f := range fights {
		winner := "-"
		if f.Winner != nil {
			winner = string(*f.Winner)
		}
		table.Append(
			f.ID,
			string(f.Status),
			fmt.Sprintf("%d", f.Bets.Player1),
			fmt.Sprintf("%d", f.Bets.Player2),
			winner,
			time.UnixMilli(f.CreatedAt).UTC().Format(time.RFC3339),
		)
	}
	table.Render()

	return nil
}

func listDeadLetters(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	entries, err := event.ReadDeadLetters(cfg.EventDeadLetterPath, cmd.String("fight"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Dead at", "Fight", "Type", "Attempts", "Last error")
	for _, e := range entries {
		table.Append(
			e.DeadAt.Format(time.RFC3339),
			e.FightID,
			string(e.Type),
			fmt.Sprintf("%d", e.Attempts),
			e.LastError,
		)
	}
	table.Render()

	return nil
}

// @title FightBet API
// @version 1.0
// @description Fight lifecycle and betting coordinator.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cmd := &cli.Command{
		Name:  "fightbet",
		Usage: "fight lifecycle and betting coordinator",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Value:   8080,
						Sources: cli.EnvVars("PORT"),
					},
				},
				Action: runServer,
			},
			{
				Name:      "migrate",
				Usage:     "run database migrations",
				ArgsUsage: "[up|down|status|version]",
				Action:    runMigrate,
			},
			{
				Name:  "fights",
				Usage: "list recent fights",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: defaultListLimit,
					},
				},
				Action: listFights,
			},
			{
				Name:  "deadletters",
				Usage: "list fight events that could not be delivered",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "fight",
						Usage: "only show events for this fight id",
					},
				},
				Action: listDeadLetters,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
