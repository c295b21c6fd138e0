package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// NewApplicationLogger constructs a zap logger configured for human-readable console
// output. When standard error is not attached to a terminal the production JSON
// encoding is kept so downstream tooling can parse the log stream.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if term.IsTerminal(int(os.Stderr.Fd())) {
		config.Encoding = "console"
		config.DisableCaller = true
		config.DisableStacktrace = true
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.EncoderConfig.TimeKey = ""
		config.EncoderConfig.LevelKey = ""
		config.EncoderConfig.NameKey = ""
		config.EncoderConfig.CallerKey = ""
		config.EncoderConfig.MessageKey = "message"
		config.EncoderConfig.StacktraceKey = ""
	}
	return config.Build()
}
