package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrault/phraseur/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"trace", slog.LevelInfo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLevel(tc.raw), "raw=%q", tc.raw)
	}
}

func TestSetupWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := setupWithWriter(config.ServerConfig{LogLevel: "info"}, &buf)

	log.Info("server started", "port", 8080)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, float64(8080), entry["port"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestSetupRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := setupWithWriter(config.ServerConfig{LogLevel: "warn"}, &buf)

	log.Info("suppressed")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestSetupSetsDefault(t *testing.T) {
	var buf bytes.Buffer
	log := setupWithWriter(config.ServerConfig{LogLevel: "debug"}, &buf)

	assert.Equal(t, log, slog.Default())
}
