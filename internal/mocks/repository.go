// Package mocks provides hand-written testify mocks for the repository
// interfaces and service collaborators used across unit tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RotationBot_Go/internal/domain"
	"github.com/osse101/RotationBot_Go/internal/repository"
)

// MockSnapshotRepo is a mock implementation of repository.Snapshot
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Create(ctx context.Context, counters domain.Counters) (string, error) {
	args := m.Called(ctx, counters)
	return args.String(0), args.Error(1)
}

func (m *MockSnapshotRepo) Read(ctx context.Context, snapshotID string) (domain.Counters, error) {
	args := m.Called(ctx, snapshotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Counters), args.Error(1)
}

func (m *MockSnapshotRepo) Overwrite(ctx context.Context, snapshotID string, counters domain.Counters) error {
	args := m.Called(ctx, snapshotID, counters)
	return args.Error(0)
}

// MockRotationRepo is a mock implementation of repository.Rotation
type MockRotationRepo struct {
	mock.Mock
}

func (m *MockRotationRepo) CreateBaseline(ctx context.Context, playerID string, periodType domain.PeriodType, snapshotID string, lastReset time.Time) (bool, error) {
	args := m.Called(ctx, playerID, periodType, snapshotID, lastReset)
	return args.Bool(0), args.Error(1)
}

func (m *MockRotationRepo) GetBaseline(ctx context.Context, playerID string, periodType domain.PeriodType) (*domain.RotationBaseline, error) {
	args := m.Called(ctx, playerID, periodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RotationBaseline), args.Error(1)
}

func (m *MockRotationRepo) GetBaselines(ctx context.Context, playerID string) ([]domain.RotationBaseline, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RotationBaseline), args.Error(1)
}

func (m *MockRotationRepo) TouchBaseline(ctx context.Context, playerID string, periodType domain.PeriodType, lastReset time.Time) error {
	args := m.Called(ctx, playerID, periodType, lastReset)
	return args.Error(0)
}

func (m *MockRotationRepo) ListDuePlayers(ctx context.Context, fraction float64) ([]string, error) {
	args := m.Called(ctx, fraction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockHistoryRepo is a mock implementation of repository.History
type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Insert(ctx context.Context, record *domain.HistoricalPeriod) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepo) Get(ctx context.Context, playerID, periodKey string) (*domain.HistoricalPeriod, error) {
	args := m.Called(ctx, playerID, periodKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoricalPeriod), args.Error(1)
}

func (m *MockHistoryRepo) List(ctx context.Context, playerID string, periodType domain.PeriodType, since time.Time) ([]domain.HistoricalPeriod, error) {
	args := m.Called(ctx, playerID, periodType, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoricalPeriod), args.Error(1)
}

// MockResetTimeRepo is a mock implementation of repository.ResetTime
type MockResetTimeRepo struct {
	mock.Mock
}

func (m *MockResetTimeRepo) GetAccountResetTime(ctx context.Context, accountID string) (*domain.AccountResetTime, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountResetTime), args.Error(1)
}

func (m *MockResetTimeRepo) UpsertAccountResetTime(ctx context.Context, rt domain.AccountResetTime) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockResetTimeRepo) DeleteAccountResetTime(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockResetTimeRepo) GetPlayerResetTime(ctx context.Context, playerID string) (*domain.PlayerResetTime, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerResetTime), args.Error(1)
}

func (m *MockResetTimeRepo) CreatePlayerResetTime(ctx context.Context, rt domain.PlayerResetTime) (bool, error) {
	args := m.Called(ctx, rt)
	return args.Bool(0), args.Error(1)
}

// MockLinkingRepo is a mock implementation of repository.Linking
type MockLinkingRepo struct {
	mock.Mock
}

func (m *MockLinkingRepo) GetLinkedAccount(ctx context.Context, playerID string) (string, error) {
	args := m.Called(ctx, playerID)
	return args.String(0), args.Error(1)
}

func (m *MockLinkingRepo) GetLinkedPlayers(ctx context.Context, accountID string) ([]string, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSubscriptionRepo is a mock implementation of repository.Subscription
type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) GetAccountTier(ctx context.Context, accountID string) (*repository.SubscriptionTier, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SubscriptionTier), args.Error(1)
}
