package logger

import (
	"bytes"
	"testing"

	"highscore-server/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := SetLevel(&buf, zerolog.WarnLevel)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"caller":`)
}

func TestNew_UsesConfiguredLevel(t *testing.T) {
	l := New(&config.Config{LogLevel: "debug"})
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	l = New(&config.Config{LogLevel: "nonsense"})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
