package zerg

import "time"

// Level is a record severity. Records below an engine's active threshold are
// discarded at the call site.
type Level int64

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the level tag used in rendered lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Defaults
const (
	// DefaultQueueCapacity is the ring capacity used when none is configured.
	DefaultQueueCapacity = 1024
	// DefaultMaxFileSize bounds a log file before truncation rotation.
	DefaultMaxFileSize = 10 * 1024 * 1024
	// DefaultFileBufferSize is the user-space buffer of a file sink.
	DefaultFileBufferSize = 1 << 20
)

// Timestamp layout of rendered lines, wall clock at second precision.
const timestampLayout = "2006-01-02 15:04:05"

// Drain timings
const (
	// syncStableWindow is how long the queue must stay empty before Sync returns.
	syncStableWindow = 50 * time.Millisecond
	// syncPollInterval paces the Sync and WaitUntilEmpty polling loops.
	syncPollInterval = 5 * time.Millisecond
	// waitEmptyTimeout bounds WaitUntilEmpty.
	waitEmptyTimeout = 500 * time.Millisecond
)
