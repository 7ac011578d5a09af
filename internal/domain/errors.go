package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound = "fight not found"

	// Capability errors
	ErrMsgUnauthorized = "secure id does not match"

	// State machine errors
	ErrMsgInvalidTransition = "invalid status transition"

	// Betting errors
	ErrMsgBettingClosed = "fight is not open for betting"
	ErrMsgInvalidSide   = "side must be player1 or player2"
	ErrMsgInvalidAmount = "amount must be positive"

	// Process errors
	ErrMsgLaunch = "failed to launch fight process"

	// Settlement errors
	ErrMsgNotCompleted = "fight must be completed before cashing out"
	ErrMsgNoWinner     = "no winner declared for this fight"

	// Database/System errors
	ErrMsgStore    = "store error"
	ErrMsgTxClosed = "tx is closed"
)

// Error kinds exposed to API callers. They are stable and never change wording.
const (
	KindNotFound          = "NotFound"
	KindUnauthorized      = "Unauthorized"
	KindInvalidTransition = "InvalidTransition"
	KindBettingClosed     = "BettingClosed"
	KindInvalidSide       = "InvalidSide"
	KindInvalidAmount     = "InvalidAmount"
	KindLaunchError       = "LaunchError"
	KindNotCompleted      = "NotCompleted"
	KindNoWinner          = "NoWinner"
	KindStoreError        = "StoreError"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrUnauthorized      = errors.New(ErrMsgUnauthorized)
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)
	ErrBettingClosed     = errors.New(ErrMsgBettingClosed)
	ErrInvalidSide       = errors.New(ErrMsgInvalidSide)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrLaunch            = errors.New(ErrMsgLaunch)
	ErrNotCompleted      = errors.New(ErrMsgNotCompleted)
	ErrNoWinner          = errors.New(ErrMsgNoWinner)
	ErrStore             = errors.New(ErrMsgStore)
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrNotFound, KindNotFound},
	{ErrUnauthorized, KindUnauthorized},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrBettingClosed, KindBettingClosed},
	{ErrInvalidSide, KindInvalidSide},
	{ErrInvalidAmount, KindInvalidAmount},
	{ErrLaunch, KindLaunchError},
	{ErrNotCompleted, KindNotCompleted},
	{ErrNoWinner, KindNoWinner},
	{ErrStore, KindStoreError},
}

// KindOf returns the stable error kind for err, or "" if err is not a domain error
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}
