package bootstrap

import (
	"log/slog"

	"github.com/osse101/RotationBot_Go/internal/config"
	"github.com/osse101/RotationBot_Go/internal/logger"
)

// SetupLogger installs the process-wide logger from application config
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.Environment != logger.EnvironmentProduction,
	})

	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"sweep_interval", cfg.SweepInterval,
		"sweep_pace", cfg.SweepPace)
}
