package config

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultDBName      = "rotationbot"

	DefaultProviderBaseURL = "https://api.hypixel.net/v2"

	// The upstream provider throttles aggressively; retries use a fixed
	// delay between attempts and give up after the attempt budget.
	DefaultFetchMaxAttempts       = 20
	DefaultFetchRetryDelaySeconds = 3

	// Sweep granularity. One minute matches the precision of reset-time
	// fractions (hour + minute/60).
	DefaultSweepIntervalSeconds = 60

	// Minimum spacing between consecutive upstream fetches inside one
	// sweep tick, so a large due batch cannot burst the provider.
	DefaultSweepPaceSeconds = 2

	DefaultDeadLetterPath = "deadletter.jsonl"
)
