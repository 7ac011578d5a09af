package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/logger"
	"github.com/osse101/FightBet_Go/internal/worker"
)

// Sender is the part of a discordgo session the announcer needs
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts fight start and result embeds to a Discord channel.
// Sends go through the worker pool so event publishers never wait on Discord.
type Announcer struct {
	sender    Sender
	channelID string
	pool      *worker.Pool
}

// NewSession opens a bot session for token
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}
	return s, nil
}

// NewAnnouncer creates an announcer posting to channelID
func NewAnnouncer(sender Sender, channelID string, pool *worker.Pool) *Announcer {
	return &Announcer{sender: sender, channelID: channelID, pool: pool}
}

// Subscribe registers the announcer for fight start and end events
func (a *Announcer) Subscribe(bus event.Bus) {
	bus.Subscribe(event.FightStarted, a.handle)
	bus.Subscribe(event.FightCompleted, a.handle)
	bus.Subscribe(event.FightFailed, a.handle)
	logger.Info(LogMsgAnnouncerEnabled, "channel_id", a.channelID)
}

func (a *Announcer) handle(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.FightEventPayload](evt.Payload)
	if err != nil {
		return err
	}
	embed := BuildEmbed(evt.Type, p)
	if embed == nil {
		return nil
	}

	ok := a.pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
		return a.send(ctx, p.FightID, embed)
	}))
	if !ok {
		logger.Warn(LogMsgAnnouncerBusy, logger.AttrKeyFightID, p.FightID)
	}
	return nil
}

func (a *Announcer) send(ctx context.Context, fightID string, embed *discordgo.MessageEmbed) error {
	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		logger.FromContext(ctx).Error(LogMsgAnnouncementError, logger.AttrKeyFightID, fightID, "error", err)
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgAnnouncementSent, logger.AttrKeyFightID, fightID)
	return nil
}

// BuildEmbed renders the announcement for a lifecycle event, or nil if the event is not announced
func BuildEmbed(eventType event.Type, p domain.FightEventPayload) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: FieldFight, Value: "`" + p.FightID + "`"},
		{Name: FieldPool, Value: formatPool(p.Bets), Inline: true},
	}

	switch eventType {
	case event.FightStarted:
		if p.StreamURL != nil {
			fields = append(fields, &discordgo.MessageEmbedField{Name: FieldStream, Value: *p.StreamURL})
		}
		return &discordgo.MessageEmbed{
			Title:       TitleFightStarted,
			Description: MsgFightStarted,
			Color:       ColorStarted,
			Fields:      fields,
		}

	case event.FightCompleted:
		if p.CurrentState != nil {
			fields = append(fields,
				&discordgo.MessageEmbedField{Name: FieldRound, Value: fmt.Sprint(p.CurrentState.Round), Inline: true},
				&discordgo.MessageEmbedField{Name: FieldHealth, Value: fmt.Sprintf("%d / %d", p.CurrentState.P1Health, p.CurrentState.P2Health), Inline: true},
			)
		}
		if p.Winner == nil {
			return &discordgo.MessageEmbed{
				Title:       TitleFightCompleted,
				Description: MsgFightDraw,
				Color:       ColorDraw,
				Fields:      fields,
			}
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: FieldWinner, Value: SideName(*p.Winner), Inline: true})
		return &discordgo.MessageEmbed{
			Title:       TitleFightCompleted,
			Description: MsgFightCompleted,
			Color:       ColorCompleted,
			Fields:      fields,
		}

	case event.FightFailed:
		if p.FailureReason != nil {
			fields = append(fields, &discordgo.MessageEmbedField{Name: FieldReason, Value: *p.FailureReason, Inline: true})
		}
		return &discordgo.MessageEmbed{
			Title:       TitleFightFailed,
			Description: MsgFightFailed,
			Color:       ColorFailed,
			Fields:      fields,
		}
	}
	return nil
}

// SideName renders player1 as "Player 1"
func SideName(side domain.Side) string {
	name := strings.Replace(string(side), "player", "player ", 1)
	return cases.Title(language.English).String(name)
}

func formatPool(b domain.Bets) string {
	return fmt.Sprintf("%s: %d | %s: %d", SideName(domain.SidePlayer1), b.Player1, SideName(domain.SidePlayer2), b.Player2)
}
