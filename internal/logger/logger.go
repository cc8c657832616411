// Package logger holds the process-wide structured logger.
//
// Logging is discarded until Init enables it. Kernel and shell code log
// through the package helpers so front ends decide where records go; nothing
// is ever written to the interactive terminal.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L receives every record. It drops them until Init says otherwise.
var L = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "ohios-"
	logSuffix     = ".log"
	dayLayout     = "2006-01-02"
	retentionDays = 30
)

// Options selects where records go.
type Options struct {
	Enabled bool       // false keeps L discarding
	LogDir  string     // dated files live here; empty means ~/.ohios/logs
	Output  io.Writer  // takes precedence over LogDir when set
	Level   slog.Level // zero value is LevelInfo
}

// Init replaces L according to opts. The caller closes the returned Closer
// on exit; it is a no-op unless a log file was opened.
func Init(opts Options) (io.Closer, error) {
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nopCloser{}, nil
	}

	w, closer := opts.Output, io.Closer(nopCloser{})
	if w == nil {
		f, err := openLogFile(opts.LogDir, time.Now())
		if err != nil {
			return nil, err
		}
		w, closer = f, f
	}

	L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	return closer, nil
}

// openLogFile appends to today's file in dir, creating dir if needed. Files
// past the retention window are pruned on the way.
func openLogFile(dir string, now time.Time) (*os.File, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".ohios", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	cleanOldLogs(dir, now)

	return os.OpenFile(logFileName(dir, now), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func logFileName(dir string, day time.Time) string {
	return filepath.Join(dir, logPrefix+day.Format(dayLayout)+logSuffix)
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// cleanOldLogs deletes ohios-<day>.log files in dir dated before the
// retention window. Names that do not parse are left alone, as are errors.
func cleanOldLogs(dir string, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	cutoff := now.AddDate(0, 0, -retentionDays)
	for _, e := range entries {
		day, ok := strings.CutPrefix(e.Name(), logPrefix)
		if !ok {
			continue
		}
		day, ok = strings.CutSuffix(day, logSuffix)
		if !ok {
			continue
		}
		if t, err := time.Parse(dayLayout, day); err == nil && t.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
