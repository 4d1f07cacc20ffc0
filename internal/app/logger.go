package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logHandlers maps each accepted --log-format to its slog handler. NewConfig
// validates against the same table newLogger builds from.
var logHandlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"text": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
	"json": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
}

// parseLogLevel accepts slog level names in any case ("debug", "INFO",
// "warn", "error", and offsets such as "debug+2").
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// newLogger builds the App's isolated logger from a validated Config. It
// never touches slog's global default.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	newHandler, ok := logHandlers[cfg.LogFormat]
	if !ok {
		newHandler = logHandlers["text"]
	}
	return slog.New(newHandler(w, &slog.HandlerOptions{Level: cfg.level}))
}
