package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}
	InitLoggerWithWriter(config, &buf)

	Info("test message", "player_id", "abc", "count", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "abc", entry["player_id"])
	assert.Equal(t, float64(42), entry["count"])
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.NotNil(t, FromContext(ctx))

	assert.Empty(t, GetRequestID(context.Background()))
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()
	assert.NotEmpty(t, config.ServiceName)
	assert.NotEmpty(t, config.Level)
	assert.NotEmpty(t, config.Format)
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()
	assert.Equal(t, LogFormatJSON, config.Format)
	assert.Equal(t, LogLevelInfo, config.Level)
	assert.Equal(t, EnvironmentProduction, config.Environment)
	assert.False(t, config.AddSource)
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()
	assert.Equal(t, LogFormatText, config.Format)
	assert.Equal(t, LogLevelDebug, config.Level)
	assert.True(t, config.AddSource)
}
