package discord

// Embed colors
const (
	ColorStarted   = 0x3498db // Blue
	ColorCompleted = 0x2ecc71 // Green
	ColorDraw      = 0xf1c40f // Yellow
	ColorFailed    = 0xe74c3c // Red
)

// Announcement text
const (
	MsgFightStarted   = "🥊 **Betting is closed, the fight is on!**"
	MsgFightCompleted = "🏆 **Fight over!**"
	MsgFightDraw      = "🤝 **It's a draw!**\nNo winner this time, bets cannot be cashed out."
	MsgFightFailed    = "❌ **Fight aborted**"

	TitleFightStarted   = "Fight Started"
	TitleFightCompleted = "Fight Completed"
	TitleFightFailed    = "Fight Failed"

	FieldFight  = "Fight"
	FieldPool   = "Pool"
	FieldStream = "Stream"
	FieldWinner = "Winner"
	FieldRound  = "Round"
	FieldReason = "Reason"
	FieldHealth = "Health"
)

// Log messages
const (
	LogMsgAnnouncerEnabled  = "Discord announcer enabled"
	LogMsgAnnouncementSent  = "Discord announcement sent"
	LogMsgAnnouncementError = "Failed to send Discord announcement"
	LogMsgAnnouncerBusy     = "Discord announcer queue unavailable, dropping announcement"
)
