package bootstrap

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/FightBet_Go/internal/config"
	"github.com/osse101/FightBet_Go/internal/logger"
)

// Run builds the application, serves until ctx is cancelled or the listener fails,
// then shuts everything down
func Run(ctx context.Context, cfg *config.Config) error {
	app, err := ResolveApp(NewContainer(ctx, cfg))
	if err != nil {
		return err
	}

	subs, err := RegisterEventHandlers(app)
	if err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()
		GracefulShutdown(shutdownCtx, app, subs)
		return err
	}

	app.Hub.Start()
	app.Pool.Start()
	if subs.BettingWindow != nil {
		subs.BettingWindow.Start(ctx)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			logger.Error(LogMsgServerFailed, "error", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	GracefulShutdown(shutdownCtx, app, subs)

	return runErr
}
