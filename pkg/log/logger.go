// Package log provides structured logging setup for the preprocessing
// pipeline: a JSON slog handler that understands cockroachdb/errors stack
// traces, and a zerolog sink for the library's warning system.
package log

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	"github.com/majisoubhik01/missingval/pkg/errors"
)

// SetupLogger function setup logger.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// InstallZerologWarnSink routes library warnings through the given zerolog
// logger at warn level. Warning types implementing
// zerolog.LogObjectMarshaler are logged with their structured fields.
func InstallZerologWarnSink(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(obj)
		}
		ev.Msg(warning.Error())
	})
}
