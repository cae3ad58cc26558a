package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// User-facing error messages for service errors
const (
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgServerErrorError    = "Server error occurred. Please try again."

	ErrMsgNotTrackedError      = "Player is not tracked yet. Start tracking first."
	ErrMsgPeriodNotFoundError  = "No archived stats for that period."
	ErrMsgInvalidPeriodKeyErr  = "Invalid period key."
	ErrMsgPlayerNotFoundError  = "Player not found upstream."
	ErrMsgUpstreamBusyError    = "Stats provider is busy. Please try again later."
	ErrMsgInvalidResetTimeErr  = "Invalid reset time. Check offset, hour and minute ranges."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTrackingNotInitialized):
		return http.StatusConflict, ErrMsgNotTrackedError
	case errors.Is(err, domain.ErrInvalidPeriodKey):
		return http.StatusBadRequest, ErrMsgInvalidPeriodKeyErr
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrThrottled), errors.Is(err, domain.ErrRetriesExhausted):
		return http.StatusServiceUnavailable, ErrMsgUpstreamBusyError
	case errors.Is(err, domain.ErrInvalidResetTime):
		return http.StatusBadRequest, ErrMsgInvalidResetTimeErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	default:
		return http.StatusInternalServerError, ErrMsgServerErrorError
	}
}
