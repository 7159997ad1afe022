package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init is called.
var Log = zap.NewNop()

// Init builds the development logger used by the generator.
func Init() {
	InitWithLevel(zapcore.InfoLevel)
}

func InitWithLevel(level zapcore.Level) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true

	built, err := config.Build()
	if err != nil {
		// Keep the no-op logger rather than failing the caller
		return
	}
	Log = built
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
