package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// API key protecting every non-public endpoint
	APIKey         string
	TrustedProxies []string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Upstream stats provider
	ProviderBaseURL  string
	ProviderAPIKey   string
	FetchMaxAttempts int
	FetchRetryDelay  time.Duration

	// Scheduled sweep
	SweepInterval time.Duration
	SweepPace     time.Duration

	// Automatic-reset allowlist, injected into the access controller
	AutoResetPlayers     []string
	AutoResetPermissions []string
	PermissionGrants     map[string][]string

	DeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", DefaultDBName),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", DefaultProviderBaseURL),
		ProviderAPIKey:  getEnv("PROVIDER_API_KEY", ""),

		AutoResetPlayers:     splitList(getEnv("AUTO_RESET_PLAYERS", "")),
		AutoResetPermissions: splitList(getEnv("AUTO_RESET_PERMISSIONS", "")),
		PermissionGrants:     parseGrants(getEnv("PLAYER_PERMISSION_GRANTS", "")),

		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	attempts, err := getEnvInt("FETCH_MAX_ATTEMPTS", DefaultFetchMaxAttempts)
	if err != nil {
		return nil, err
	}
	cfg.FetchMaxAttempts = attempts

	retryDelay, err := getEnvInt("FETCH_RETRY_DELAY_SECONDS", DefaultFetchRetryDelaySeconds)
	if err != nil {
		return nil, err
	}
	cfg.FetchRetryDelay = time.Duration(retryDelay) * time.Second

	sweepInterval, err := getEnvInt("SWEEP_INTERVAL_SECONDS", DefaultSweepIntervalSeconds)
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval = time.Duration(sweepInterval) * time.Second

	sweepPace, err := getEnvInt("SWEEP_PACE_SECONDS", DefaultSweepPaceSeconds)
	if err != nil {
		return nil, err
	}
	cfg.SweepPace = time.Duration(sweepPace) * time.Second

	if cfg.ProviderAPIKey == "" {
		return nil, fmt.Errorf("PROVIDER_API_KEY environment variable must be set")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// splitList parses a comma-separated env value into a trimmed slice
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseGrants parses "player=perm1|perm2;player2=*" into a permission map
func parseGrants(raw string) map[string][]string {
	grants := make(map[string][]string)
	if raw == "" {
		return grants
	}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		player, perms, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		for _, perm := range strings.Split(perms, "|") {
			if perm = strings.TrimSpace(perm); perm != "" {
				grants[player] = append(grants[player], perm)
			}
		}
	}
	return grants
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
