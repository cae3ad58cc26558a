package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/mocks"
)

func periodRequest(periodKey, playerID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/player/history/"+periodKey+"?player_id="+playerID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("periodKey", periodKey)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleGetPeriod(t *testing.T) {
	engine := new(mocks.MockRotationEngine)

	archived := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	record := &domain.HistoricalPeriod{
		PlayerID:   "player-1",
		PeriodKey:  "daily_2024_06_01",
		Level:      12,
		SnapshotID: "snap-9",
		ArchivedAt: archived,
	}
	counters := domain.NewCounters()
	counters[domain.ModeKey(domain.ModeSolo, domain.StatWins)] = 4
	engine.On("GetPeriod", mock.Anything, "player-1", "daily_2024_06_01").Return(record, counters, nil)

	rec := httptest.NewRecorder()
	HandleGetPeriod(engine)(rec, periodRequest("daily_2024_06_01", "player-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PeriodResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "daily_2024_06_01", resp.PeriodKey)
	assert.Equal(t, 12, resp.Level)
	assert.Equal(t, int64(4), resp.Counters[domain.ModeKey(domain.ModeSolo, domain.StatWins)])
}

func TestHandleGetPeriodNotArchived(t *testing.T) {
	engine := new(mocks.MockRotationEngine)
	engine.On("GetPeriod", mock.Anything, "player-1", "daily_2024_06_01").Return(nil, nil, nil)

	rec := httptest.NewRecorder()
	HandleGetPeriod(engine)(rec, periodRequest("daily_2024_06_01", "player-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetPeriodMalformedKey(t *testing.T) {
	engine := new(mocks.MockRotationEngine)
	engine.On("GetPeriod", mock.Anything, "player-1", "decade_2020").Return(nil, nil, domain.ErrInvalidPeriodKey)

	rec := httptest.NewRecorder()
	HandleGetPeriod(engine)(rec, periodRequest("decade_2020", "player-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListHistoryBoundsWindowByLinkedAccount(t *testing.T) {
	engine := new(mocks.MockRotationEngine)
	resolver := new(mocks.MockIdentityResolver)
	windows := new(mocks.MockLookbackService)

	since := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	periods := []domain.HistoricalPeriod{
		{PlayerID: "player-1", PeriodKey: "daily_2024_06_01", Level: 3},
		{PlayerID: "player-1", PeriodKey: "daily_2024_05_31", Level: 3},
	}

	resolver.On("ResolveLinkedAccount", mock.Anything, "player-1").Return("acct-1", true, nil)
	windows.On("Since", mock.Anything, []string{"acct-1"}, mock.Anything).Return(since, nil)
	engine.On("ListPeriods", mock.Anything, "player-1", domain.PeriodDaily, since).Return(periods, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/player/history?player_id=player-1&period_type=daily", nil)
	rec := httptest.NewRecorder()
	HandleListHistory(engine, resolver, windows)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HistoryListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Periods, 2)
	assert.Equal(t, "daily_2024_06_01", resp.Periods[0].PeriodKey)
	engine.AssertExpectations(t)
}

func TestHandleListHistoryUnlinkedPlayer(t *testing.T) {
	engine := new(mocks.MockRotationEngine)
	resolver := new(mocks.MockIdentityResolver)
	windows := new(mocks.MockLookbackService)

	resolver.On("ResolveLinkedAccount", mock.Anything, "player-1").Return("", false, nil)
	windows.On("Since", mock.Anything, []string(nil), mock.Anything).
		Return(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), nil)
	engine.On("ListPeriods", mock.Anything, "player-1", domain.PeriodWeekly, mock.Anything).
		Return([]domain.HistoricalPeriod{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/player/history?player_id=player-1&period_type=weekly", nil)
	rec := httptest.NewRecorder()
	HandleListHistory(engine, resolver, windows)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	windows.AssertExpectations(t)
}

func TestHandleListHistoryRejectsUnknownPeriodType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/player/history?player_id=player-1&period_type=hourly", nil)
	rec := httptest.NewRecorder()
	HandleListHistory(new(mocks.MockRotationEngine), new(mocks.MockIdentityResolver), new(mocks.MockLookbackService))(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
