package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewNeverNil(t *testing.T) {
	require.NotNil(t, New(false))
	require.NotNil(t, New(true))
}

func TestDebugFlagControlsLevel(t *testing.T) {
	quiet := DefaultConfig(false)
	assert.False(t, quiet.Level.Enabled(zap.InfoLevel))
	assert.True(t, quiet.Level.Enabled(zap.WarnLevel))

	verbose := DefaultConfig(true)
	assert.True(t, verbose.Level.Enabled(zap.DebugLevel))
}

func TestLogsGoToStderr(t *testing.T) {
	cfg := DefaultConfig(false)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
	assert.Equal(t, "console", cfg.Encoding)
}
