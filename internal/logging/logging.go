// Package logging builds the process logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultConfig returns the zap configuration used by the CLI: console
// encoding on stderr so log lines never interleave with TUI output.
func DefaultConfig(debug bool) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg
}

// New builds the logger; on any construction failure it falls back to a
// no-op logger rather than aborting the command.
func New(debug bool) *zap.Logger {
	log, err := DefaultConfig(debug).Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
