package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"hashsvc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Env.Env = "test"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hashed", slog.String("algorithm", "bcrypt"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hashed", record["msg"])
	assert.Equal(t, "hashsvc", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, "bcrypt", record["algorithm"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	cfg := config.Default()
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("ready")
	assert.Contains(t, buf.String(), "msg=ready")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}
