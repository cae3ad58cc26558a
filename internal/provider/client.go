package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/logger"
)

// Client fetches a player's lifetime counters from the upstream stats provider
type Client interface {
	FetchStats(ctx context.Context, playerID string) (domain.Counters, error)
}

// HTTPClient is the real upstream client
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the provider API
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// playerResponse is the subset of the provider payload we track
type playerResponse struct {
	Success bool `json:"success"`
	Player  *struct {
		Stats struct {
			Bedwars map[string]json.Number `json:"Bedwars"`
		} `json:"stats"`
	} `json:"player"`
}

// FetchStats retrieves the full lifetime counter set for a player.
// Returns domain.ErrThrottled on upstream rate limiting and
// domain.ErrPlayerNotFound when the provider has no such player.
func (c *HTTPClient) FetchStats(ctx context.Context, playerID string) (domain.Counters, error) {
	log := logger.FromContext(ctx)

	endpoint := fmt.Sprintf("%s/player?uuid=%s", c.baseURL, url.QueryEscape(playerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debug("Provider request completed",
		"player_id", playerID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusTooManyRequests:
		return nil, domain.ErrThrottled
	case http.StatusNotFound:
		return nil, domain.ErrPlayerNotFound
	default:
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var payload playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if !payload.Success || payload.Player == nil {
		return nil, domain.ErrPlayerNotFound
	}

	return countersFromPayload(payload.Player.Stats.Bedwars), nil
}

// providerKeys maps each tracked counter to its name in the provider payload.
// The provider omits counters the player has never incremented; those stay 0.
var providerKeys = buildProviderKeys()

func buildProviderKeys() map[domain.StatKey]string {
	keys := map[domain.StatKey]string{
		domain.KeyExperience: "Experience",
	}
	prefixes := map[domain.Mode]string{
		domain.ModeOverall: "",
		domain.ModeSolo:    "eight_one_",
		domain.ModeDoubles: "eight_two_",
		domain.ModeThrees:  "four_three_",
		domain.ModeFours:   "four_four_",
	}
	stats := map[string]string{
		domain.StatWins:           "wins_bedwars",
		domain.StatLosses:         "losses_bedwars",
		domain.StatKills:          "kills_bedwars",
		domain.StatDeaths:         "deaths_bedwars",
		domain.StatFinalKills:     "final_kills_bedwars",
		domain.StatFinalDeaths:    "final_deaths_bedwars",
		domain.StatBedsBroken:     "beds_broken_bedwars",
		domain.StatBedsLost:       "beds_lost_bedwars",
		domain.StatItemsPurchased: "items_purchased_bedwars",
	}
	for mode, prefix := range prefixes {
		for stat, field := range stats {
			keys[domain.ModeKey(mode, stat)] = prefix + field
		}
	}
	return keys
}

func countersFromPayload(raw map[string]json.Number) domain.Counters {
	counters := domain.NewCounters()
	for key, field := range providerKeys {
		num, ok := raw[field]
		if !ok {
			continue
		}
		if v, err := num.Int64(); err == nil {
			counters[key] = v
		}
	}
	return counters
}
