package bootstrap

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/FightBet_Go/internal/discord"
	"github.com/osse101/FightBet_Go/internal/logger"
	"github.com/osse101/FightBet_Go/internal/metrics"
	"github.com/osse101/FightBet_Go/internal/sse"
	"github.com/osse101/FightBet_Go/internal/worker"
)

// Subscribers holds the optional event consumers created at startup. Nil fields are disabled.
type Subscribers struct {
	BettingWindow  *worker.BettingWindowWorker
	DiscordSession *discordgo.Session
}

// RegisterEventHandlers attaches every consumer of fight events to the bus:
// metrics, the live SSE stream, and when configured the betting window and Discord announcer.
func RegisterEventHandlers(app App) (Subscribers, error) {
	var subs Subscribers

	metrics.NewEventMetricsCollector().Register(app.Bus)
	logger.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(app.Hub, app.Bus).Subscribe()
	logger.Info(LogMsgSSESubscriberRegistered)

	if app.Config.BettingWindow > 0 {
		subs.BettingWindow = worker.NewBettingWindowWorker(app.Fights, app.Controller, app.Pool, app.Config.BettingWindow)
		subs.BettingWindow.Subscribe(app.Bus)
		logger.Info(LogMsgBettingWindowEnabled, "window", app.Config.BettingWindow)
	}

	if app.Config.DiscordEnabled() {
		session, err := discord.NewSession(app.Config.DiscordToken)
		if err != nil {
			return subs, fmt.Errorf("%s: %w", ErrMsgFailedOpenDiscord, err)
		}
		subs.DiscordSession = session
		discord.NewAnnouncer(session, app.Config.DiscordChannelID, app.Pool).Subscribe(app.Bus)
		logger.Info(LogMsgDiscordAnnouncerEnabled)
	}

	return subs, nil
}
