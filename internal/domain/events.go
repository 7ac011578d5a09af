package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "fight.created")
const (
	// EventTypeFightCreated is published when a new fight opens for betting
	EventTypeFightCreated = "fight.created"

	// EventTypeBetPlaced is published after a bet has been added to a side's total
	EventTypeBetPlaced = "fight.bet_placed"

	// EventTypeFightStarted is published when betting closes and the match process launches
	EventTypeFightStarted = "fight.started"

	// EventTypeStateUpdated is published for each accepted game state snapshot
	EventTypeStateUpdated = "fight.state_updated"

	// EventTypeFightCompleted is published when a fight ends normally, with or without a winner
	EventTypeFightCompleted = "fight.completed"

	// EventTypeFightFailed is published when a fight ends abnormally
	EventTypeFightFailed = "fight.failed"
)

// FightEventPayload is the common payload of fight lifecycle events
type FightEventPayload struct {
	FightID       string        `json:"fight_id"`
	Status        FightStatus   `json:"status"`
	Bets          Bets          `json:"bets"`
	CurrentState  *CurrentState `json:"current_state,omitempty"`
	StreamURL     *string       `json:"stream_url,omitempty"`
	Winner        *Side         `json:"winner,omitempty"`
	FailureReason *string       `json:"failure_reason,omitempty"`
	Timestamp     int64         `json:"timestamp"`
	CreatedAt     int64         `json:"created_at"`
}

// NewFightEventPayload builds the public event payload for f
func NewFightEventPayload(f *Fight) FightEventPayload {
	return FightEventPayload{
		FightID:       f.ID,
		Status:        f.Status,
		Bets:          f.Bets,
		CurrentState:  f.CurrentState,
		StreamURL:     f.StreamURL,
		Winner:        f.Winner,
		FailureReason: f.FailureReason,
		Timestamp:     f.Timestamp,
		CreatedAt:     f.CreatedAt,
	}
}

// BetPlacedPayload is published with EventTypeBetPlaced
type BetPlacedPayload struct {
	FightID string `json:"fight_id"`
	Side    Side   `json:"side"`
	Amount  int64  `json:"amount"`
	Totals  Bets   `json:"totals"`
}
