package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/resettime"
)

// SetResetTimeRequest represents an account reset time configuration
type SetResetTimeRequest struct {
	UTCOffset   int `json:"utc_offset"`
	ResetHour   int `json:"reset_hour"`
	ResetMinute int `json:"reset_minute"`
}

// ResetTimeResponse represents the configured reset time for an account
type ResetTimeResponse struct {
	AccountID   string `json:"account_id"`
	UTCOffset   int    `json:"utc_offset"`
	ResetHour   int    `json:"reset_hour"`
	ResetMinute int    `json:"reset_minute"`
	Configured  bool   `json:"configured"`
}

// HandleSetResetTime handles PUT requests to configure an account's reset time
func HandleSetResetTime(svc resettime.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		accountID := chi.URLParam(r, "accountID")
		var req SetResetTimeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode reset time request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		rt := domain.AccountResetTime{
			AccountID:   accountID,
			UTCOffset:   req.UTCOffset,
			ResetHour:   req.ResetHour,
			ResetMinute: req.ResetMinute,
		}
		if err := svc.SetAccountResetTime(r.Context(), rt); err != nil {
			log.Warn("Failed to set reset time", "error", err, "account_id", accountID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Reset time configured"})
	}
}

// HandleGetResetTime handles GET requests for an account's configured reset time
func HandleGetResetTime(svc resettime.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		accountID := chi.URLParam(r, "accountID")
		rt, err := svc.GetAccountResetTime(r.Context(), accountID)
		if err != nil {
			log.Error("Failed to get reset time", "error", err, "account_id", accountID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		resp := ResetTimeResponse{AccountID: accountID}
		if rt != nil {
			resp.UTCOffset = rt.UTCOffset
			resp.ResetHour = rt.ResetHour
			resp.ResetMinute = rt.ResetMinute
			resp.Configured = true
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleClearResetTime handles DELETE requests removing an account's reset
// time override. Player defaults already seeded from it are unaffected.
func HandleClearResetTime(svc resettime.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		accountID := chi.URLParam(r, "accountID")
		if err := svc.ClearAccountResetTime(r.Context(), accountID); err != nil {
			log.Error("Failed to clear reset time", "error", err, "account_id", accountID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Account reset time cleared", "account_id", accountID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Reset time cleared"})
	}
}
