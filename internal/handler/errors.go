package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgMissingFightID        = "Missing fight id"
	ErrMsgSecureIDRequired      = "secure_id is required"

	ErrMsgStartThroughController = "fights enter in_progress only by being started"
)

// Log messages
const (
	LogMsgStaleStateIgnored = "Stale state report ignored"
)

// Error kinds that do not come from the domain layer
const (
	KindValidation  = "ValidationError"
	KindBadRequest  = "BadRequest"
	KindAuth        = "AuthenticationFailed"
	KindRateLimited = "RateLimited"
	KindInternal    = "InternalError"
)

// Operation names used in log lines
const (
	OpCreateFight    = "Create fight"
	OpGetFight       = "Get fight"
	OpListFights     = "List fights"
	OpGetActiveFight = "Get active fight"
	OpPlaceBet       = "Place bet"
	OpGetTotals      = "Get bet totals"
	OpStartFight     = "Start fight"
	OpUpdateStatus   = "Update fight status"
	OpVerifyCashout  = "Verify cash-out"
)
