package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

const (
	ansiReset  = "\x1b[0m"
	ansiCyan   = "\x1b[36m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// New constructs a slog.Logger with the given level and format writing to
// stderr. Format "console" (the default) colors the level token when
// stderr is a terminal.
func New(level, format string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "console", "":
		color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		opts.ReplaceAttr = colorizeLevel(color)
		handler = slog.NewTextHandler(colorable.NewColorableStderr(), opts)
	default:
		return nil, errors.New("unsupported log format: " + format)
	}

	return slog.New(handler), nil
}

// Colorize wraps s in the ANSI color conventionally used for the given
// level: debug cyan, info green, warn yellow, error red.
func Colorize(level slog.Level, s string) string {
	return levelColor(level) + s + ansiReset
}

func colorizeLevel(enabled bool) func([]string, slog.Attr) slog.Attr {
	if !enabled {
		return nil
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key != slog.LevelKey || len(groups) > 0 {
			return a
		}
		lvl, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		a.Value = slog.StringValue(Colorize(lvl, lvl.String()))
		return a
	}
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return ansiRed
	case l >= slog.LevelWarn:
		return ansiYellow
	case l >= slog.LevelInfo:
		return ansiGreen
	default:
		return ansiCyan
	}
}

// WithContext attaches a logger to the context.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in context or a default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

func parseLevel(level string) (*slog.LevelVar, error) {
	lv := new(slog.LevelVar)
	lower := strings.ToLower(level)
	if lower == "" {
		lower = "info"
	}
	if err := lv.UnmarshalText([]byte(lower)); err != nil {
		return nil, err
	}
	return lv, nil
}
