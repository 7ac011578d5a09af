package domain

// FightStatus represents the current state of a fight
type FightStatus string

const (
	FightStatusBettingOpen FightStatus = "betting_open"
	FightStatusInProgress  FightStatus = "in_progress"
	FightStatusCompleted   FightStatus = "completed"
	FightStatusFailed      FightStatus = "failed"

	// FightStatusNoFight is returned when there is no fight to report
	FightStatusNoFight FightStatus = "no_fight"
)

// Side identifies one of the two competitors
type Side string

const (
	SidePlayer1 Side = "player1"
	SidePlayer2 Side = "player2"
)

// Default fight state values
const (
	DefaultHealth = 120
	DefaultRound  = 0
)

// Failure reasons recorded on failed fights
const (
	FailureReasonTimeout     = "Timeout"
	FailureReasonLaunchError = "LaunchError"
)

// IsValid reports whether s is one of the two known sides
func (s Side) IsValid() bool {
	return s == SidePlayer1 || s == SidePlayer2
}

// IsTerminal reports whether no further transitions are possible from s
func (s FightStatus) IsTerminal() bool {
	return s == FightStatusCompleted || s == FightStatusFailed
}

// IsActive reports whether the fight is still open for betting or running
func (s FightStatus) IsActive() bool {
	return s == FightStatusBettingOpen || s == FightStatusInProgress
}

// transitions lists every allowed status change. Terminal states have no entry.
var transitions = map[FightStatus][]FightStatus{
	FightStatusBettingOpen: {FightStatusInProgress, FightStatusFailed},
	FightStatusInProgress:  {FightStatusCompleted, FightStatusFailed},
}

// CanTransition reports whether a fight may move from one status to another
func CanTransition(from, to FightStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Bets holds the accumulated wager per side
type Bets struct {
	Player1 int64 `json:"player1"`
	Player2 int64 `json:"player2"`
}

// For returns the total wagered on side
func (b Bets) For(side Side) int64 {
	if side == SidePlayer2 {
		return b.Player2
	}
	return b.Player1
}

// Total returns the combined pool
func (b Bets) Total() int64 {
	return b.Player1 + b.Player2
}

// CurrentState is the latest game snapshot reported by the match process
type CurrentState struct {
	Round     int   `json:"round"`
	P1Health  int   `json:"p1_health"`
	P2Health  int   `json:"p2_health"`
	Timestamp int64 `json:"timestamp"`
}

// Leader returns the side with strictly more health, or nil on a draw
func (s CurrentState) Leader() *Side {
	var side Side
	switch {
	case s.P1Health > s.P2Health:
		side = SidePlayer1
	case s.P2Health > s.P1Health:
		side = SidePlayer2
	default:
		return nil
	}
	return &side
}

// DefaultState returns the snapshot a fresh fight starts with
func DefaultState(now int64) *CurrentState {
	return &CurrentState{
		Round:     DefaultRound,
		P1Health:  DefaultHealth,
		P2Health:  DefaultHealth,
		Timestamp: now,
	}
}

// Fight represents one betting round tied to an emulator match.
// Timestamps are Unix milliseconds.
type Fight struct {
	ID            string        `json:"fight_id"`
	SecureID      string        `json:"secure_id"`
	Status        FightStatus   `json:"status"`
	Timestamp     int64         `json:"timestamp"`
	CreatedAt     int64         `json:"created_at"`
	Bets          Bets          `json:"bets"`
	CurrentState  *CurrentState `json:"current_state,omitempty"`
	StreamURL     *string       `json:"stream_url"`
	Winner        *Side         `json:"winner"`
	FailureReason *string       `json:"failure_reason,omitempty"`

	// Version is bumped on every write and used for put-if-match updates
	Version int64 `json:"-"`
}

// Clone returns a deep copy so callers can mutate without touching shared state
func (f *Fight) Clone() *Fight {
	if f == nil {
		return nil
	}
	c := *f
	if f.CurrentState != nil {
		s := *f.CurrentState
		c.CurrentState = &s
	}
	if f.StreamURL != nil {
		u := *f.StreamURL
		c.StreamURL = &u
	}
	if f.Winner != nil {
		w := *f.Winner
		c.Winner = &w
	}
	if f.FailureReason != nil {
		r := *f.FailureReason
		c.FailureReason = &r
	}
	return &c
}

// FightPatch carries optional field updates applied with a status change
type FightPatch struct {
	CurrentState  *CurrentState
	StreamURL     *string
	ClearStream   bool
	Winner        *Side
	FailureReason *string
	// InferWinner picks the leader of the state stored by this update when Winner is nil
	InferWinner   bool
}

// FightView is the public projection of a fight. It omits the secure ID.
type FightView struct {
	ID            string        `json:"fight_id"`
	Status        FightStatus   `json:"status"`
	Timestamp     int64         `json:"timestamp"`
	CreatedAt     int64         `json:"created_at"`
	Bets          Bets          `json:"bets"`
	CurrentState  *CurrentState `json:"current_state,omitempty"`
	StreamURL     *string       `json:"stream_url"`
	Winner        *Side         `json:"winner"`
	FailureReason *string       `json:"failure_reason,omitempty"`
}

// View returns the public projection of f
func (f *Fight) View() FightView {
	return FightView{
		ID:            f.ID,
		Status:        f.Status,
		Timestamp:     f.Timestamp,
		CreatedAt:     f.CreatedAt,
		Bets:          f.Bets,
		CurrentState:  f.CurrentState,
		StreamURL:     f.StreamURL,
		Winner:        f.Winner,
		FailureReason: f.FailureReason,
	}
}
