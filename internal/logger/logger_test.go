package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/supplysight/internal/logger"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "warn"}, &buf)

	l.Info().Msg("dropped")
	l.Warn().Str("product_id", "P-1001").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "P-1001", entry["product_id"])
}

func TestNewWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "loud"}, &buf)

	l.Debug().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Info().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}
