package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/docrender/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, stateDir)

			SetupLoggerTo(&bytes.Buffer{}, tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(filepath.Join(stateDir, paths.LogFileName))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var out bytes.Buffer
	saved := log.Logger
	defer func() { log.Logger = saved }()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(&out)

	logger := GetLogger("document")
	logger.Info().Msg("rendered")

	assert.Contains(t, out.String(), `"component":"document"`)
	assert.Contains(t, out.String(), `"message":"rendered"`)
}

func TestLogOperationStart(t *testing.T) {
	var out bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&out)

	done := LogOperationStart(logger, "render")
	done()

	require.Contains(t, out.String(), "Operation started")
	assert.Contains(t, out.String(), "Operation completed")
	assert.Contains(t, out.String(), `"operation":"render"`)
}
