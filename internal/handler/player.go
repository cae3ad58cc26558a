package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/provider"
	"github.com/osse101/RotationBot_Go/internal/rotation"
)

// TrackPlayerRequest represents a request to start rotational tracking
type TrackPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// PlayerStatsResponse is the live stats view for one player
type PlayerStatsResponse struct {
	PlayerID string                     `json:"player_id"`
	Level    int                        `json:"level"`
	Lifetime domain.Counters            `json:"lifetime"`
	Periods  map[string]domain.Counters `json:"periods"`
}

// HandleTrackPlayer handles POST requests to start tracking a player.
// The current upstream counters seed every period baseline.
func HandleTrackPlayer(fetcher provider.Client, engine rotation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TrackPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode track player request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if req.PlayerID == "" {
			respondError(w, http.StatusBadRequest, "player_id is required")
			return
		}

		counters, err := fetcher.FetchStats(r.Context(), req.PlayerID)
		if err != nil {
			log.Error("Failed to fetch stats for tracking", "error", err, "player_id", req.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if err := engine.Initialize(r.Context(), req.PlayerID, counters); err != nil {
			log.Error("Failed to initialize tracking", "error", err, "player_id", req.PlayerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Player tracking started", "player_id", req.PlayerID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Tracking started"})
	}
}

// HandleGetPlayerStats handles GET requests for a player's live rotational
// stats. Viewing stats doubles as the opportunistic reset check: overdue
// periods are closed with the counters just fetched, before the deltas are
// computed.
func HandleGetPlayerStats(fetcher provider.Client, engine rotation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID := r.URL.Query().Get("player_id")
		if playerID == "" {
			respondError(w, http.StatusBadRequest, "player_id is required")
			return
		}

		counters, err := fetcher.FetchStats(r.Context(), playerID)
		if err != nil {
			log.Error("Failed to fetch stats", "error", err, "player_id", playerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if err := engine.CatchUp(r.Context(), playerID, counters); err != nil {
			// stale periods are an availability concern, not a fatal one
			log.Warn("Opportunistic catch-up failed", "error", err, "player_id", playerID)
		}

		deltas, err := engine.CurrentDeltas(r.Context(), playerID, counters)
		if err != nil {
			log.Error("Failed to compute period deltas", "error", err, "player_id", playerID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		periods := make(map[string]domain.Counters, len(deltas))
		for periodType, delta := range deltas {
			periods[string(periodType)] = delta
		}

		respondJSON(w, http.StatusOK, PlayerStatsResponse{
			PlayerID: playerID,
			Level:    domain.LevelFromExperience(counters[domain.KeyExperience]),
			Lifetime: counters,
			Periods:  periods,
		})
	}
}
