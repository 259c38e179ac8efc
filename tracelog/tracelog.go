// Package tracelog is the levelled logger used across vultra.
//
// Messages below the configured level are skipped. A callback, when set,
// receives every message that passes the level check instead of the
// default console output. Fatal messages always terminate the process once
// they are written, even when the level filter drops them or a callback
// consumes them.
package tracelog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is a trace log level.
type Level int

const (
	LevelAll Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
	LevelNone
)

// slog levels for the two levels slog does not define.
const (
	slogTrace = slog.Level(-8)
	slogFatal = slog.Level(12)
)

func (l Level) String() string {
	switch l {
	case LevelAll:
		return "ALL"
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelNone:
		return "NONE"
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name such as "debug" or "warning" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return LevelAll, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "none", "off":
		return LevelNone, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelAll, LevelTrace:
		return slogTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}
	return slogFatal
}

func fromSlog(l slog.Level) Level {
	switch {
	case l <= slogTrace:
		return LevelTrace
	case l <= slog.LevelDebug:
		return LevelDebug
	case l <= slog.LevelInfo:
		return LevelInfo
	case l <= slog.LevelWarn:
		return LevelWarning
	case l <= slog.LevelError:
		return LevelError
	}
	return LevelFatal
}

// Callback receives formatted messages in place of the console output.
type Callback func(level Level, msg string)

var (
	mu       sync.Mutex
	minLevel = LevelInfo
	callback Callback
	logger   = slog.New(newConsoleHandler(os.Stdout))

	// exit is swapped out by tests.
	exit = os.Exit
)

// SetLevel sets the minimum level that gets logged.
func SetLevel(level Level) {
	mu.Lock()
	minLevel = level
	mu.Unlock()
}

// GetLevel returns the minimum level that gets logged.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// SetCallback routes messages to cb. A nil cb restores console output.
func SetCallback(cb Callback) {
	mu.Lock()
	callback = cb
	mu.Unlock()
}

// SetOutput redirects console output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	logger = slog.New(newConsoleHandler(w))
	mu.Unlock()
}

// Logger returns the slog.Logger backing the console output.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Logf formats and logs a message at the given level.
func Logf(level Level, format string, args ...any) {
	mu.Lock()
	skip := level < minLevel || level == LevelNone
	cb := callback
	l := logger
	mu.Unlock()
	if level == LevelFatal {
		defer exit(1)
	}
	if skip {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if cb != nil {
		cb(level, msg)
	} else {
		l.Log(context.Background(), level.slogLevel(), msg)
	}
}

func Tracef(format string, args ...any) { Logf(LevelTrace, format, args...) }
func Debugf(format string, args ...any) { Logf(LevelDebug, format, args...) }
func Infof(format string, args ...any)  { Logf(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { Logf(LevelWarning, format, args...) }
func Errorf(format string, args ...any) { Logf(LevelError, format, args...) }

// Fatalf logs at LevelFatal and exits the process.
func Fatalf(format string, args ...any) { Logf(LevelFatal, format, args...) }
