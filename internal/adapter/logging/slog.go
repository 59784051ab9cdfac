// Package logging writes bot log lines to a local slog logger, for runs where
// no host is listening for them.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"farmerbot/internal/domain/farm"
)

type SlogLogger struct {
	logger *slog.Logger
	botID  string
}

func NewSlog(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return SlogLogger{logger: logger}
}

// NewText builds a text-handler logger at the given level, e.g. "debug".
func NewText(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func (l SlogLogger) ForBot(botID string) SlogLogger {
	l.botID = botID
	return l
}

func (l SlogLogger) Log(ctx context.Context, message string, level farm.LogLevel) {
	attrs := []slog.Attr{}
	if l.botID != "" {
		attrs = append(attrs, slog.String("bot_id", l.botID))
	}
	l.logger.LogAttrs(ctx, toSlogLevel(level), message, attrs...)
}

func toSlogLevel(level farm.LogLevel) slog.Level {
	switch level {
	case farm.LogDebug:
		return slog.LevelDebug
	case farm.LogWarn:
		return slog.LevelWarn
	case farm.LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ParseLevel(s string) slog.Level {
	return toSlogLevel(farm.LogLevel(strings.ToLower(strings.TrimSpace(s))))
}
