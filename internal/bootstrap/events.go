package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/RotationBot_Go/internal/config"
	"github.com/osse101/RotationBot_Go/internal/event"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher. Services publish through the resilient publisher so a slow or
// failing subscriber never blocks a reset.
// Returns the bus (for subscribing), the publisher, and the dead-letter
// writer the caller must close on shutdown.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, *event.DeadLetterWriter, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, nil, nil, err
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries: EventDefaultMaxRetries,
		RetryDelay: EventDefaultRetryDelay,
		DeadLetter: deadLetter,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, publisher, deadLetter, nil
}
