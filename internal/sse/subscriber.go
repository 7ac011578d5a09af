package sse

import (
	"context"

	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every fight lifecycle event to connected clients
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.AllFightTypes))
	for _, t := range event.AllFightTypes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	logger.Info(LogMsgSubscribed, "types", types)
}

// forward relays the bus payload as is. Fight payloads never carry the secure id.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.FightID(), evt.Payload)
	logger.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "fight_id", evt.FightID())
	return nil
}
