package bootstrap

import (
	"github.com/osse101/RotationBot_Go/internal/access"
	"github.com/osse101/RotationBot_Go/internal/config"
	"github.com/osse101/RotationBot_Go/internal/event"
	"github.com/osse101/RotationBot_Go/internal/identity"
	"github.com/osse101/RotationBot_Go/internal/lookback"
	"github.com/osse101/RotationBot_Go/internal/provider"
	"github.com/osse101/RotationBot_Go/internal/resettime"
	"github.com/osse101/RotationBot_Go/internal/rotation"
	"github.com/osse101/RotationBot_Go/internal/sweep"
)

// Services holds the wired application services
type Services struct {
	Identity  identity.Resolver
	ResetTime resettime.Service
	Engine    rotation.Service
	Lookback  lookback.Service
	Sweep     sweep.Service
	Fetcher   provider.Client
	Access    *access.Controller
}

// InitializeServices wires the service layer on top of the repositories.
// The provider client is layered cache-then-retry so the sweep and the
// HTTP surface share one budget against the upstream rate limit.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher event.Bus) *Services {
	identityResolver := identity.NewResolver(repos.Linking)
	resetTimeService := resettime.NewService(repos.ResetTime, identityResolver, publisher)
	engine := rotation.NewService(repos.Snapshot, repos.Rotation, repos.History, resetTimeService, publisher)
	lookbackService := lookback.NewService(repos.Subscription)

	httpClient := provider.NewHTTPClient(cfg.ProviderBaseURL, cfg.ProviderAPIKey)
	cached := provider.NewCachedClient(httpClient, provider.DefaultCacheSize, provider.DefaultCacheTTL)
	fetcher := provider.NewRateLimitedFetcher(cached, cfg.FetchMaxAttempts, cfg.FetchRetryDelay)

	accessController := access.NewController(access.Config{
		PlayerIDs:   cfg.AutoResetPlayers,
		Permissions: cfg.AutoResetPermissions,
		Grants:      cfg.PermissionGrants,
	})

	sweepService := sweep.NewService(
		repos.Rotation,
		engine,
		resetTimeService,
		accessController,
		fetcher,
		cfg.SweepPace,
	)

	return &Services{
		Identity:  identityResolver,
		ResetTime: resetTimeService,
		Engine:    engine,
		Lookback:  lookbackService,
		Sweep:     sweepService,
		Fetcher:   fetcher,
		Access:    accessController,
	}
}
