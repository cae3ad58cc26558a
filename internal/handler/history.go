package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/identity"
	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/lookback"
	"github.com/osse101/RotationBot_Go/internal/rotation"
)

// PeriodResponse is one archived period with its delta counters
type PeriodResponse struct {
	PlayerID   string          `json:"player_id"`
	PeriodKey  string          `json:"period_key"`
	Level      int             `json:"level"`
	ArchivedAt time.Time       `json:"archived_at"`
	Counters   domain.Counters `json:"counters"`
}

// HistoryListResponse is a page of archived period records
type HistoryListResponse struct {
	PlayerID string                    `json:"player_id"`
	Periods  []domain.HistoricalPeriod `json:"periods"`
}

// HandleGetPeriod handles GET requests for one archived period
func HandleGetPeriod(engine rotation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID := r.URL.Query().Get("player_id")
		periodKey := chi.URLParam(r, "periodKey")
		if playerID == "" {
			respondError(w, http.StatusBadRequest, "player_id is required")
			return
		}

		record, counters, err := engine.GetPeriod(r.Context(), playerID, periodKey)
		if err != nil {
			log.Error("Failed to get period", "error", err, "player_id", playerID, "period_key", periodKey)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if record == nil {
			respondError(w, http.StatusNotFound, ErrMsgPeriodNotFoundError)
			return
		}

		respondJSON(w, http.StatusOK, PeriodResponse{
			PlayerID:   record.PlayerID,
			PeriodKey:  record.PeriodKey,
			Level:      record.Level,
			ArchivedAt: record.ArchivedAt,
			Counters:   counters,
		})
	}
}

// HandleListHistory handles GET requests for a player's archived periods
// of one type. The window is bounded by the linked account's subscription
// lookback.
func HandleListHistory(engine rotation.Service, resolver identity.Resolver, windows lookback.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID := r.URL.Query().Get("player_id")
		periodType := domain.PeriodType(r.URL.Query().Get("period_type"))
		if playerID == "" {
			respondError(w, http.StatusBadRequest, "player_id is required")
			return
		}
		if !periodType.Valid() {
			respondError(w, http.StatusBadRequest, "period_type must be one of daily, weekly, monthly, yearly")
			return
		}

		var accountIDs []string
		accountID, linked, err := resolver.ResolveLinkedAccount(r.Context(), playerID)
		if err != nil {
			log.Error("Failed to resolve linked account", "error", err, "player_id", playerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if linked {
			accountIDs = append(accountIDs, accountID)
		}

		since, err := windows.Since(r.Context(), accountIDs, time.Now())
		if err != nil {
			log.Error("Failed to resolve lookback window", "error", err, "player_id", playerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		periods, err := engine.ListPeriods(r.Context(), playerID, periodType, since)
		if err != nil {
			log.Error("Failed to list periods", "error", err, "player_id", playerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, HistoryListResponse{
			PlayerID: playerID,
			Periods:  periods,
		})
	}
}
