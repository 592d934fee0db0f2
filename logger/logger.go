package logger

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger *zap.SugaredLogger

	// quiet suppresses warning and error reporting from lookups and the
	// file pipeline. Callers that expect to probe for absent tables set
	// this to avoid noise.
	quiet atomic.Bool
)

func init() {
	// Safe no-op logger at package load time, so library code can log
	// before Initialize() is called.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger.
//
// verbosity is a CLI-style flag count (0 = warnings only, 1 = info,
// 2+ = debug). jsonOutput selects machine-readable production encoding
// instead of human console output.
func Initialize(verbosity int, jsonOutput bool) error {
	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(VerbosityToLevel(verbosity))
		zapLogger, err = config.Build()
		if err != nil {
			return err
		}
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = "" // console output stays calm
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encCfg),
				zapcore.AddSync(os.Stderr),
				VerbosityToLevel(verbosity),
			),
		)
	}

	Logger = zapLogger.Sugar()
	return nil
}

// SetQuiet enables or disables quiet mode.
func SetQuiet(q bool) {
	quiet.Store(q)
}

// IsQuiet reports whether quiet mode is active.
func IsQuiet() bool {
	return quiet.Load()
}

// Warnf logs a formatted warning unless quiet mode is active.
func Warnf(format string, args ...interface{}) {
	if quiet.Load() {
		return
	}
	Logger.Warnf(format, args...)
}

// Errorw logs an error with structured fields unless quiet mode is active.
func Errorw(msg string, keysAndValues ...interface{}) {
	if quiet.Load() {
		return
	}
	Logger.Errorw(msg, keysAndValues...)
}
