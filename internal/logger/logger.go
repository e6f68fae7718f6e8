package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. It stays a nop until Init is called so the
// library packages can log unconditionally.
var Log *zap.Logger = zap.NewNop()

// Init replaces the nop logger with a development console logger. If the
// logger cannot be built the nop logger stays in place and the failure is
// reported on stderr rather than swallowed.
func Init() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	l, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: falling back to nop logger: %v\n", err)
		return
	}
	Log = l
}
