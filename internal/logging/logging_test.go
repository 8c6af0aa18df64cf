package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, false, zerolog.WarnLevel},
		{"info level", 1, false, zerolog.InfoLevel},
		{"debug level", 2, false, zerolog.DebugLevel},
		{"trace level", 3, false, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, false, zerolog.TraceLevel},
		{"quiet", 0, true, zerolog.ErrorLevel},
		{"quiet wins over verbose", 3, true, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, LevelFor(tt.verbosity, tt.quiet))
		})
	}
}

func restoreGlobals(t *testing.T) {
	t.Helper()
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetupLogger_WritesToWriter(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer

	SetupLogger(&buf, 1, false)
	logger := GetLogger("resolve")
	logger.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "component=resolve")
	// Buffers are not terminals, so no color codes.
	assert.NotContains(t, out, "\x1b[")
}

func TestSetupLogger_LevelFilters(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer

	SetupLogger(&buf, 0, false)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "resolve")
	done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Operation started")
	assert.Contains(t, lines[1], "Operation completed")
	assert.Contains(t, lines[1], `"duration"`)
}
