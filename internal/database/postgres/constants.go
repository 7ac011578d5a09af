package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Fight Operations
const (
	ErrMsgFailedToCreateFight      = "failed to create fight"
	ErrMsgFailedToGetFight         = "failed to get fight"
	ErrMsgFailedToUpdateFight      = "failed to update fight"
	ErrMsgFailedToIncrementBet     = "failed to increment bet"
	ErrMsgFailedToListFights       = "failed to list fights"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
	ErrMsgFailedToEncodeState      = "failed to encode fight state"
	ErrMsgFailedToDecodeState      = "failed to decode fight state"
	ErrMsgDuplicateFightID         = "fight id already exists"
)
