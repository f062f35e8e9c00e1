package logging

import (
	"log/slog"
	"strings"
)

const (
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelWarn    = slog.LevelWarn
	LevelError   = slog.LevelError
	LevelFatal   = slog.Level(12)
	LevelPanic   = slog.Level(13)
	LevelUnknown = slog.Level(99)
)

// enumeration of level keys (for performance. See New's replaceFunc)
const (
	debugLevel = "debug"
	infoLevel  = "info"
	warnLevel  = "warn"
	errorLevel = "error"
	fatalLevel = "fatal"
	panicLevel = "panic"
)

// LevelFromString maps a case-insensitive level name to its slog.Level.
// Unknown names return LevelUnknown.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case debugLevel:
		return LevelDebug
	case infoLevel:
		return LevelInfo
	case warnLevel:
		return LevelWarn
	case errorLevel:
		return LevelError
	case fatalLevel:
		return LevelFatal
	case panicLevel:
		return LevelPanic
	default:
		return LevelUnknown
	}
}

type L struct {
	*slog.Logger
	*formatter
}

func newL(logger *slog.Logger) *L {
	return &L{
		Logger: logger,
		formatter: &formatter{
			l:        logger,
			exiter:   defaultExiter{},
			panicker: defaultPanicker{},
		}}
}

// With returns a logger with the given attributes added to every subsequent record.
func (l *L) With(args ...any) *L {
	return newL(l.Logger.With(args...))
}

func (l *L) exiter(e exiter) *L {
	l.formatter.exiter = e
	return l
}

func (l *L) panicker(p panicker) *L {
	l.formatter.panicker = p
	return l
}
