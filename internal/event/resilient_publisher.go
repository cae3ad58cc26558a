package event

import (
	"context"
	"time"

	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/metrics"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead-letter queuing
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event. On failure it starts a background
// retry loop and returns nil immediately, decoupling callers from the
// retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()
		return nil
	}

	metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	// The caller's context may be cancelled before retries finish, so
	// the retry loop runs detached.
	go p.retryLoop(event, err)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	ctx := context.Background()

	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", event.Type,
				"attempt", i)
			return
		}
		lastErr = err

		logger.Warn(LogMsgEventRetryFailed,
			"event_type", event.Type,
			"attempt", i,
			"error", err)
	}

	if p.config.DeadLetter == nil {
		return
	}
	if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
