package fight

import "time"

// ============================================================================
// Registry Limits
// ============================================================================

// MaxUpdateAttempts bounds the put-if-match retry loop. Each retry re-reads the
// fight, so a conflicting writer is always observed before giving up.
const MaxUpdateAttempts = 32

// DefaultListLimit is used when ListFights is called without a positive limit
const DefaultListLimit = 20

// MaxListLimit caps ListFights page sizes
const MaxListLimit = 100

// ============================================================================
// Terminal Fight Cache
// ============================================================================

// DefaultCacheSize is the number of terminal fights kept in memory
const DefaultCacheSize = 256

// DefaultCacheTTL is how long a terminal fight stays cached
const DefaultCacheTTL = 10 * time.Minute

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgFightCreated         = "Fight created"
	LogMsgStatusUpdated        = "Fight status updated"
	LogMsgStateRecorded        = "Fight state recorded"
	LogMsgStaleStateDropped    = "Stale fight state dropped"
	LogMsgVersionConflict      = "Fight version conflict, retrying"
	LogMsgSecureIDMismatch     = "Secure id mismatch"
	LogMsgFailedToPublishEvent = "Failed to publish fight event"
)

// ============================================================================
// Error Messages (local to fight registry)
// ============================================================================

const (
	ErrContextFailedToGenerateID  = "failed to generate fight id"
	ErrContextFailedToCreateFight = "failed to create fight"
	ErrContextFailedToGetFight    = "failed to get fight"
	ErrContextFailedToUpdateFight = "failed to update fight"
	ErrContextFailedToListFights  = "failed to list fights"

	ErrMsgTooManyConflicts  = "too many concurrent updates"
	ErrMsgWinnerNotComplete = "winner may only be set when completing a fight"
	ErrMsgNotInProgress     = "fight is not in progress"
)
