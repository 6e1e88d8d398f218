package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.SugaredLogger
	loggerOnce sync.Once
	level      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// initLogger builds the global zap logger writing to stderr.
func initLogger() {
	loggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.Level = level
		cfg.OutputPaths = []string{"stderr"}
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		l, err := cfg.Build()
		if err != nil {
			// Build cannot fail with a static config; keep a no-op
			// logger just in case so callers never nil-deref.
			l = zap.NewNop()
		}
		logger = l.Sugar()
	})
}

// SetLevel adjusts the minimum level for all subsequent log calls.
func SetLevel(l zapcore.Level) {
	initLogger()
	level.SetLevel(l)
}

func Debug(msg string, kv ...any) {
	initLogger()
	logger.Debugw(msg, kv...)
}

func Info(msg string, kv ...any) {
	initLogger()
	logger.Infow(msg, kv...)
}

// Error logs msg with err prepended to the key-value list.
func Error(msg string, err error, kv ...any) {
	initLogger()
	logger.Errorw(msg, append([]any{"err", err}, kv...)...)
}
