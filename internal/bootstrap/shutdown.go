package bootstrap

import (
	"context"

	"github.com/osse101/FightBet_Go/internal/logger"
)

type shutdownable interface {
	Shutdown(context.Context) error
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Betting window timers and running match processes
// 3. Worker pool and live stream clients
// 4. Event publisher (flush pending retries)
// 5. Fight store
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, app App, subs Subscribers) {
	logger.Info(LogMsgShuttingDownServer)

	if err := app.Server.Stop(ctx); err != nil {
		logger.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if subs.BettingWindow != nil {
		shutdownComponent(ctx, ComponentBettingWindow, subs.BettingWindow)
	}
	shutdownComponent(ctx, ComponentController, app.Controller)

	app.Pool.Stop()
	app.Hub.Stop()

	if subs.DiscordSession != nil {
		_ = subs.DiscordSession.Close()
	}

	logger.Info(LogMsgShuttingDownEventPublisher)
	if err := app.Publisher.Shutdown(ctx); err != nil {
		logger.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	if err := app.Store.Close(); err != nil {
		logger.Error(LogMsgStoreCloseFailed, "error", err)
	}

	logger.Info(LogMsgServerStopped)
}

func shutdownComponent(ctx context.Context, name string, c shutdownable) {
	if err := c.Shutdown(ctx); err != nil {
		logger.Error(name+LogMsgComponentShutdownFailed, "error", err)
	}
}
