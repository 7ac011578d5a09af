package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/FightBet_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Fight event types
const (
	FightCreated      Type = domain.EventTypeFightCreated
	FightBetPlaced    Type = domain.EventTypeBetPlaced
	FightStarted      Type = domain.EventTypeFightStarted
	FightStateUpdated Type = domain.EventTypeStateUpdated
	FightCompleted    Type = domain.EventTypeFightCompleted
	FightFailed       Type = domain.EventTypeFightFailed
)

// AllFightTypes lists every fight lifecycle event type, for subscribers that want them all
var AllFightTypes = []Type{
	FightCreated,
	FightBetPlaced,
	FightStarted,
	FightStateUpdated,
	FightCompleted,
	FightFailed,
}

// Type-safe event constructors

// NewFightEvent creates a lifecycle event for f. The event type follows the fight status.
func NewFightEvent(eventType Type, f *domain.Fight) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.NewFightEventPayload(f),
		Metadata: map[string]interface{}{
			MetadataKeyFightID: f.ID,
			"published_at":     time.Now().UnixMilli(),
		},
	}
}

// NewStatusEvent picks the event type that matches the fight's new status
func NewStatusEvent(f *domain.Fight) Event {
	switch f.Status {
	case domain.FightStatusInProgress:
		return NewFightEvent(FightStarted, f)
	case domain.FightStatusCompleted:
		return NewFightEvent(FightCompleted, f)
	case domain.FightStatusFailed:
		return NewFightEvent(FightFailed, f)
	default:
		return NewFightEvent(FightCreated, f)
	}
}

// NewBetPlacedEvent creates a bet placed event with the post-increment totals
func NewBetPlacedEvent(fightID string, side domain.Side, amount int64, totals domain.Bets) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FightBetPlaced,
		Payload: domain.BetPlacedPayload{
			FightID: fightID,
			Side:    side,
			Amount:  amount,
			Totals:  totals,
		},
		Metadata: map[string]interface{}{
			MetadataKeyFightID: fightID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
