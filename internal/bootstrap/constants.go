package bootstrap

import "time"

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for application startup
const (
	LogMsgStartingService        = "Starting RotationBot"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgSweepScheduled         = "Sweep scheduled"
)

// Error messages for application startup
const (
	ErrMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
