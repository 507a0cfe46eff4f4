package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Logger struct {
	slog *slog.Logger
}

func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a console logger on stderr. Color is enabled only when
// stderr is a terminal.
func NewLogger(levelStr string) *Logger {
	return New(levelStr, FormatConsole)
}

// New returns a logger on stderr in the given format.
func New(levelStr, format string) *Logger {
	if format == FormatJSON {
		return NewLoggerWithWriter(levelStr, os.Stderr)
	}
	h := tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ParseLevel(levelStr),
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	return &Logger{slog: slog.New(h)}
}

// NewLoggerWithWriter returns a logger writing one JSON object per line to w.
func NewLoggerWithWriter(levelStr string, w io.Writer) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					return slog.String(slog.LevelKey, strings.ToLower(lvl.String()))
				}
			}
			return a
		},
	})
	return &Logger{slog: slog.New(h)}
}

func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{slog: l.slog.With("component", name)}
}

// Slog exposes the underlying logger.
func (l *Logger) Slog() *slog.Logger { return l.slog }

func (l *Logger) Debug(format string, args ...any) {
	l.logf(slog.LevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.logf(slog.LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logf(slog.LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logf(slog.LevelError, format, args...)
}

func (l *Logger) Fatal(format string, args ...any) {
	l.logf(slog.LevelError, format, args...)
	os.Exit(1)
}

func (l *Logger) Debugw(msg string, fields map[string]any) {
	l.logw(slog.LevelDebug, msg, fields)
}

func (l *Logger) Infow(msg string, fields map[string]any) {
	l.logw(slog.LevelInfo, msg, fields)
}

func (l *Logger) Warnw(msg string, fields map[string]any) {
	l.logw(slog.LevelWarn, msg, fields)
}

func (l *Logger) Errorw(msg string, fields map[string]any) {
	l.logw(slog.LevelError, msg, fields)
}

func (l *Logger) logf(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	l.slog.Log(ctx, level, fmt.Sprintf(format, args...))
}

func (l *Logger) logw(level slog.Level, msg string, fields map[string]any) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	l.slog.LogAttrs(ctx, level, msg, attrs...)
}
