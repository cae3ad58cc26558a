package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rotation errors
	ErrMsgAlreadyArchived        = "period already archived"
	ErrMsgTrackingNotInitialized = "tracking not initialized"
	ErrMsgInvalidPeriodKey       = "invalid period key"

	// Snapshot errors
	ErrMsgSnapshotNotFound = "snapshot not found"

	// Upstream provider errors
	ErrMsgThrottled         = "upstream request throttled"
	ErrMsgRetriesExhausted  = "upstream retries exhausted"
	ErrMsgPlayerNotFound    = "player not found upstream"
	ErrMsgUpstreamUnhealthy = "upstream returned unexpected status"

	// Reset time errors
	ErrMsgInvalidResetTime = "invalid reset time"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrAlreadyArchived signals that a historical record for the period key
	// already exists. It is an expected, recoverable outcome of two triggers
	// racing for the same period; callers must skip the rebase when they see it.
	ErrAlreadyArchived = errors.New(ErrMsgAlreadyArchived)

	// ErrTrackingNotInitialized signals an archive attempt against a player
	// with no rotation baselines. This is a caller error: Initialize must run
	// before any reset.
	ErrTrackingNotInitialized = errors.New(ErrMsgTrackingNotInitialized)

	ErrInvalidPeriodKey = errors.New(ErrMsgInvalidPeriodKey)

	// ErrSnapshotNotFound is a data-integrity fault: baselines and archives
	// own their snapshots, so a dangling reference should never occur.
	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)

	ErrThrottled        = errors.New(ErrMsgThrottled)
	ErrRetriesExhausted = errors.New(ErrMsgRetriesExhausted)
	ErrPlayerNotFound   = errors.New(ErrMsgPlayerNotFound)

	ErrInvalidResetTime = errors.New(ErrMsgInvalidResetTime)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
)
