package event

import "time"

// EventSchemaVersion is stamped on every fight event
const EventSchemaVersion = "1.0"

// MetadataKeyFightID is the metadata key every fight event carries
const MetadataKeyFightID = "fight_id"

const (
	// RetryQueueBufferSize bounds the pending retries; overflow goes straight to the dead-letter file
	RetryQueueBufferSize = 1000

	// DeadLetterFilePermissions is the file mode of the dead-letter file
	DeadLetterFilePermissions = 0644
	DeadLetterDirPermissions  = 0755

	// DeadLetterSchemaVersion is bumped whenever DeadLetterEntry changes shape
	DeadLetterSchemaVersion = "2"

	maxDeadLetterLine = 4 * 1024 * 1024
)

const (
	ErrMsgEncodeDeadLetter = "failed to encode dead letter"
	ErrMsgDecodeDeadLetter = "failed to decode dead letter on line"
)

// Log messages
const (
	LogMsgEventPublishFailed    = "Fight event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, fight event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write fight event to dead letter"
	LogMsgEventDeadLettered     = "Fight event dead-lettered"
	LogMsgEventRetryExhausted   = "Fight event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Fight event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Fight event retry succeeded"
	LogMsgEventDroppedShutdown  = "Fight event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
