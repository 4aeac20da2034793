package zerg

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for the failures surfaced to callers.
var (
	// ErrConfigOpen reports an unreadable configuration file.
	ErrConfigOpen = errors.New("cannot open configuration file")
	// ErrSinkOpen reports a sink that could not be opened at construction.
	ErrSinkOpen = errors.New("cannot open sink")
)

// fmtErrorf wrapper, keeps the package prefix consistent
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "zerg: ") {
		format = "zerg: " + format
	}
	return fmt.Errorf(format, args...)
}

// internalLog writes logger diagnostics to stderr
func internalLog(format string, args ...any) {
	if !strings.HasPrefix(format, "zerg: ") {
		format = "zerg: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// baseName returns the text after the last '/' or '\', or the whole string if
// neither is present.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ParseLevel converts a level name to its constant. The match is exact;
// unrecognized names map to LevelDebug, the configuration loader's fallback.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelDebug
	}
}
