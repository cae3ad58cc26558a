package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RotationBot_Go/internal/database/postgres"
	"github.com/osse101/RotationBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Snapshot     repository.Snapshot
	Rotation     repository.Rotation
	History      repository.History
	ResetTime    repository.ResetTime
	Linking      repository.Linking
	Subscription repository.Subscription
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Snapshot:     postgres.NewSnapshotRepository(dbPool),
		Rotation:     postgres.NewRotationRepository(dbPool),
		History:      postgres.NewHistoryRepository(dbPool),
		ResetTime:    postgres.NewResetTimeRepository(dbPool),
		Linking:      postgres.NewLinkingRepository(dbPool),
		Subscription: postgres.NewSubscriptionRepository(dbPool),
	}
}
