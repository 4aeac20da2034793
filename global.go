package zerg

import (
	"bufio"
	"os"
	"runtime"
	"strings"
	"sync"
)

// Process-wide registry of file engines, keyed by full path. Engines are
// created lazily on first use and live until reset.
var (
	registryMu sync.Mutex
	registry   = make(map[string]*Logger)

	pathMu             sync.Mutex
	defaultLogFilePath = "./"
	defaultLogFileName = "global_logfile.log"

	consoleMu     sync.Mutex
	consoleLogger *Logger
)

// SetLogFilePath sets the default path prefix for registry-created engines.
// It is prepended verbatim; include a trailing separator when you want one.
func SetLogFilePath(path string) {
	pathMu.Lock()
	defaultLogFilePath = path
	pathMu.Unlock()
}

// LogFilePath returns the default path prefix.
func LogFilePath() string {
	pathMu.Lock()
	defer pathMu.Unlock()
	return defaultLogFilePath
}

// SetLogFileName sets the file name used when GetFileLogger is called with
// an empty name.
func SetLogFileName(name string) {
	pathMu.Lock()
	defaultLogFileName = name
	pathMu.Unlock()
}

// LogFileName returns the default file name.
func LogFileName() string {
	pathMu.Lock()
	defer pathMu.Unlock()
	return defaultLogFileName
}

func fullLogPath(name string) string {
	pathMu.Lock()
	defer pathMu.Unlock()
	if name == "" {
		name = defaultLogFileName
	}
	return defaultLogFilePath + name
}

// GetFileLogger returns the shared engine for name, creating it on first
// use. An empty name selects the default file.
func GetFileLogger(name string) (*Logger, error) {
	full := fullLogPath(name)

	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[full]; ok {
		return l, nil
	}

	cfg := DefaultConfig()
	cfg.Directory = ""
	cfg.Name = full
	l, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	registry[full] = l
	return l, nil
}

// ResetFileLogger removes the engine for name from the registry and shuts it
// down. Callers still holding the engine must not log through it afterwards.
func ResetFileLogger(name string) {
	full := fullLogPath(name)

	registryMu.Lock()
	l, ok := registry[full]
	delete(registry, full)
	registryMu.Unlock()

	if ok {
		if err := l.Close(); err != nil {
			internalLog("reset of '%s': %v\n", full, err)
		}
	}
}

// ConsoleLogger returns the process-wide console engine.
func ConsoleLogger() *Logger {
	consoleMu.Lock()
	defer consoleMu.Unlock()

	if consoleLogger == nil {
		cfg := DefaultConfig()
		cfg.Console = true
		l, err := NewLogger(cfg)
		if err != nil {
			// Console sink construction cannot fail, validate can
			internalLog("console logger: %v\n", err)
			return nil
		}
		consoleLogger = l
	}
	return consoleLogger
}

// SetGlobalVerbosity applies a severity threshold to the default file engine.
func SetGlobalVerbosity(level Level) {
	l, err := GetFileLogger("")
	if err != nil {
		internalLog("set verbosity: %v\n", err)
		return
	}
	l.SetLogLevel(level)
}

// Log writes through the default file engine, capturing the caller's source
// file and line.
func Log(level Level, format string, args ...any) {
	file, line := callerSource()
	l, err := GetFileLogger("")
	if err != nil {
		internalLog("log: %v\n", err)
		return
	}
	l.Log(level, file, line, format, args...)
}

// LogWithFile writes through the engine registered for name, capturing the
// caller's source file and line.
func LogWithFile(level Level, name string, format string, args ...any) {
	file, line := callerSource()
	l, err := GetFileLogger(name)
	if err != nil {
		internalLog("log: %v\n", err)
		return
	}
	l.Log(level, file, line, format, args...)
}

// LogConsole writes through the console engine.
func LogConsole(level Level, format string, args ...any) {
	file, line := callerSource()
	if l := ConsoleLogger(); l != nil {
		l.Log(level, file, line, format, args...)
	}
}

func callerSource() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown", 0
	}
	return file, line
}

// LoadConfiguration reads a key=value file and applies the recognised keys
// to the registry:
//
//	verbosity    severity name for the default engine, DEBUG on mismatch
//	logFilePath  default path prefix
//
// The split is at the first '='; keys and values are not trimmed. Unknown
// keys are ignored.
func LoadConfiguration(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmtErrorf("%w: '%s': %v", ErrConfigOpen, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), "=")
		if !found {
			continue
		}
		switch key {
		case "verbosity":
			SetGlobalVerbosity(ParseLevel(value))
		case "logFilePath":
			SetLogFilePath(value)
		}
	}
	if err := sc.Err(); err != nil {
		return fmtErrorf("read configuration '%s': %v", path, err)
	}
	return nil
}
