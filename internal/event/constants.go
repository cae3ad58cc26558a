package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEventPublishFailed    = "Failed to publish event, initiating async retry"
	LogMsgEventRetrySucceeded   = "Successfully published event after retry"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
