package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Betting Window Worker
// ============================================================================

const (
	LogMsgFailedToCheckActiveFightOnStartup = "Failed to check active fight on startup"
	LogMsgSchedulingFightStart              = "Scheduling fight start"
	LogMsgBettingWindowClosed               = "Betting window closed, starting fight"
	LogMsgFailedToStartFight                = "Failed to start fight"
	LogMsgFightAlreadyStarted               = "Fight already left betting, skipping scheduled start"
	LogMsgPoolRejectedJob                   = "Worker pool rejected job"
)

// BettingWindowWorkerName is used in shutdown logs
const BettingWindowWorkerName = "betting window worker"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
