package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new session log
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingFightBet    = "Starting FightBet"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Store Selection
// =============================================================================

const (
	LogMsgStoreOpened            = "Fight store opened"
	ErrMsgFailedOpenStore        = "failed to open fight store"
	ErrMsgFailedMigrate          = "failed to migrate fight store"
	ErrMsgUnknownStoreBackend    = "unknown store backend"
	ErrMsgFailedCreateStoreDir   = "failed to create store directory"
	ErrMsgFailedLoadProfile      = "failed to load process profile"
	ErrMsgFailedOpenDiscord      = "failed to open discord session"
	ErrMsgFailedResolveContainer = "failed to resolve application services"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "Live event stream subscribed"
	LogMsgBettingWindowEnabled       = "Automatic fight start enabled"
	LogMsgDiscordAnnouncerEnabled    = "Discord announcements enabled"
)

// =============================================================================
// Worker Configuration
// =============================================================================

const (
	// WorkerQueueSize bounds the background job queue shared by the window worker and announcer
	WorkerQueueSize = 128
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgServerFailed               = "Server failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStoreCloseFailed           = "Fight store close failed"

	// Component names for shutdown logging
	ComponentBettingWindow = "betting window worker"
	ComponentController    = "process controller"

	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 30 * time.Second
)

// Shutdown log message format (component name will be prepended)
const (
	LogMsgComponentShutdownFailed = " shutdown failed"
)
