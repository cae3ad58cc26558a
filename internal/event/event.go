package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	TrackingInitialized Type = "rotation.tracking_initialized"
	PeriodClosed        Type = "rotation.period_closed"
	ResetTimeUpdated    Type = "resettime.updated"
	ResetTimeCleared    Type = "resettime.cleared"
)

// Typed event payloads for type safety

// TrackingInitializedPayloadV1 is the typed payload for tracking initialization events
type TrackingInitializedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Timestamp int64  `json:"timestamp"`
}

// PeriodClosedPayloadV1 is the typed payload for period close events
type PeriodClosedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	PeriodKey  string `json:"period_key"`
	PeriodType string `json:"period_type"`
	Level      int    `json:"level"`
	SnapshotID string `json:"snapshot_id"`
	Timestamp  int64  `json:"timestamp"`
}

// ResetTimePayloadV1 is the typed payload for reset time configuration events
type ResetTimePayloadV1 struct {
	AccountID   string `json:"account_id"`
	UTCOffset   int    `json:"utc_offset"`
	ResetHour   int    `json:"reset_hour"`
	ResetMinute int    `json:"reset_minute"`
	Timestamp   int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewTrackingInitializedEvent creates a new tracking initialization event
func NewTrackingInitializedEvent(playerID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TrackingInitialized,
		Payload: TrackingInitializedPayloadV1{
			PlayerID:  playerID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPeriodClosedEvent creates a new period closed event
func NewPeriodClosedEvent(playerID, periodKey string, periodType domain.PeriodType, level int, snapshotID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PeriodClosed,
		Payload: PeriodClosedPayloadV1{
			PlayerID:   playerID,
			PeriodKey:  periodKey,
			PeriodType: string(periodType),
			Level:      level,
			SnapshotID: snapshotID,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"period_key": periodKey,
		},
	}
}

// NewResetTimeUpdatedEvent creates a new reset time updated event
func NewResetTimeUpdatedEvent(rt domain.AccountResetTime) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ResetTimeUpdated,
		Payload: ResetTimePayloadV1{
			AccountID:   rt.AccountID,
			UTCOffset:   rt.UTCOffset,
			ResetHour:   rt.ResetHour,
			ResetMinute: rt.ResetMinute,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewResetTimeClearedEvent creates a new reset time cleared event
func NewResetTimeClearedEvent(accountID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ResetTimeCleared,
		Payload: ResetTimePayloadV1{
			AccountID: accountID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a worker pool dispatch could replace
	// this if handlers ever become slow.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
