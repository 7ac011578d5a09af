package betting

// Log messages
const (
	LogMsgBetPlaced       = "Bet placed"
	LogMsgBetRejected     = "Bet rejected"
	LogMsgFailedToPublish = "Failed to publish bet event"
)

// Error contexts
const (
	ErrContextFailedToPlaceBet  = "failed to place bet"
	ErrContextFailedToGetTotals = "failed to get bet totals"
)
