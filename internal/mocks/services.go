package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RotationBot_Go/internal/domain"
)

// MockIdentityResolver is a mock implementation of identity.Resolver
type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) ResolveLinkedAccount(ctx context.Context, playerID string) (string, bool, error) {
	args := m.Called(ctx, playerID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockIdentityResolver) LinkedPlayers(ctx context.Context, accountID string) ([]string, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockProviderClient is a mock implementation of provider.Client
type MockProviderClient struct {
	mock.Mock
}

func (m *MockProviderClient) FetchStats(ctx context.Context, playerID string) (domain.Counters, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Counters), args.Error(1)
}

// MockResetTimeResolver is a mock implementation of resettime.Resolver
type MockResetTimeResolver struct {
	mock.Mock
}

func (m *MockResetTimeResolver) Resolve(ctx context.Context, playerID string) (domain.EffectiveResetTime, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.EffectiveResetTime), args.Error(1)
}

// MockResetTimeService is a mock implementation of resettime.Service
type MockResetTimeService struct {
	MockResetTimeResolver
}

func (m *MockResetTimeService) EnsurePlayerDefault(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockResetTimeService) SetAccountResetTime(ctx context.Context, rt domain.AccountResetTime) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockResetTimeService) GetAccountResetTime(ctx context.Context, accountID string) (*domain.AccountResetTime, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountResetTime), args.Error(1)
}

func (m *MockResetTimeService) ClearAccountResetTime(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockLookbackService is a mock implementation of lookback.Service
type MockLookbackService struct {
	mock.Mock
}

func (m *MockLookbackService) MaxLookbackDays(ctx context.Context, accountIDs []string) (int, bool, error) {
	args := m.Called(ctx, accountIDs)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockLookbackService) Since(ctx context.Context, accountIDs []string, now time.Time) (time.Time, error) {
	args := m.Called(ctx, accountIDs, now)
	return args.Get(0).(time.Time), args.Error(1)
}

// MockRotationEngine is a mock implementation of rotation.Service
type MockRotationEngine struct {
	mock.Mock
}

func (m *MockRotationEngine) Initialize(ctx context.Context, playerID string, current domain.Counters) error {
	args := m.Called(ctx, playerID, current)
	return args.Error(0)
}

func (m *MockRotationEngine) Archive(ctx context.Context, playerID, periodKey string, current domain.Counters) (string, error) {
	args := m.Called(ctx, playerID, periodKey, current)
	return args.String(0), args.Error(1)
}

func (m *MockRotationEngine) Refresh(ctx context.Context, playerID string, periodType domain.PeriodType, current domain.Counters) error {
	args := m.Called(ctx, playerID, periodType, current)
	return args.Error(0)
}

func (m *MockRotationEngine) ClosePeriod(ctx context.Context, playerID, periodKey string, current domain.Counters) error {
	args := m.Called(ctx, playerID, periodKey, current)
	return args.Error(0)
}

func (m *MockRotationEngine) CatchUp(ctx context.Context, playerID string, current domain.Counters) error {
	args := m.Called(ctx, playerID, current)
	return args.Error(0)
}

func (m *MockRotationEngine) CurrentDeltas(ctx context.Context, playerID string, current domain.Counters) (map[domain.PeriodType]domain.Counters, error) {
	args := m.Called(ctx, playerID, current)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.PeriodType]domain.Counters), args.Error(1)
}

func (m *MockRotationEngine) GetPeriod(ctx context.Context, playerID, periodKey string) (*domain.HistoricalPeriod, domain.Counters, error) {
	args := m.Called(ctx, playerID, periodKey)
	var record *domain.HistoricalPeriod
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.HistoricalPeriod)
	}
	var counters domain.Counters
	if args.Get(1) != nil {
		counters = args.Get(1).(domain.Counters)
	}
	return record, counters, args.Error(2)
}

func (m *MockRotationEngine) ListPeriods(ctx context.Context, playerID string, periodType domain.PeriodType, since time.Time) ([]domain.HistoricalPeriod, error) {
	args := m.Called(ctx, playerID, periodType, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoricalPeriod), args.Error(1)
}
