package metrics

import (
	"context"
	"time"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/logger"
)

// EventMetricsCollector subscribes to fight events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all fight events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllFightTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.FightCreated:
		FightsCreated.Inc()
		FightsActive.Inc()

	case event.FightBetPlaced:
		p, err := event.DecodePayload[domain.BetPlacedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		BetsPlaced.WithLabelValues(string(p.Side)).Inc()
		BetAmount.WithLabelValues(string(p.Side)).Add(float64(p.Amount))

	case event.FightStateUpdated:
		StateUpdates.Inc()

	case event.FightCompleted, event.FightFailed:
		p, err := event.DecodePayload[domain.FightEventPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		winner := LabelValueDraw
		if p.Winner != nil {
			winner = string(*p.Winner)
		} else if p.Status == domain.FightStatusFailed {
			winner = ""
		}
		FightsFinished.WithLabelValues(string(p.Status), winner).Inc()
		FightsActive.Dec()
		if p.CreatedAt > 0 {
			FightDuration.WithLabelValues(string(p.Status)).Observe(
				time.Since(time.UnixMilli(p.CreatedAt)).Seconds())
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
