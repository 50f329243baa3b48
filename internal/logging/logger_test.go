package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "json", "debug")

	logger.Debug().Str("run_id", "abc").Msg("catalogue loaded")

	assert.Contains(t, buf.String(), `"run_id":"abc"`)
	assert.Contains(t, buf.String(), `"message":"catalogue loaded"`)
}

func TestNewLoggerFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "json", "chatty")

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "console", "info")

	logger.Info().Msg("report written")

	assert.Contains(t, buf.String(), "INF")
	assert.Contains(t, buf.String(), "report written")
}
