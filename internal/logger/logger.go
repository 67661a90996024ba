// Package logger holds the process-wide logger of messageforge. It discards
// everything until the command initializes it.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. Library code logs at debug level only.
var Logger *zap.SugaredLogger

func init() {
	// No-op until Initialize is called, so tests and the analyzer stay quiet.
	Logger = zap.NewNop().Sugar()
}

// Field names for structured logging.
const (
	FieldPackage   = "package"
	FieldFile      = "file"
	FieldType      = "type"
	FieldDirective = "directive"
	FieldCount     = "count"
	FieldError     = "error"
	FieldImport    = "import"
)

// Initialize sets up the global logger writing to w. It writes JSON lines if
// jsonOutput is true, or human-readable lines otherwise. verbosity is the
// count of -v flags.
func Initialize(w io.Writer, jsonOutput bool, verbosity int) {
	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), VerbosityToLevel(verbosity))
	Logger = zap.New(core).Sugar()
}

// VerbosityToLevel maps the count of -v flags to a log level:
//
//	0   -> WarnLevel
//	1   -> InfoLevel
//	2+  -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Named returns a named child of the global logger.
func Named(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
