package compat

import (
	"fmt"
	"os"

	"github.com/joeloftusdev/zerg"
)

// GnetAdapter exposes an engine through gnet's logging.Logger interface.
type GnetAdapter struct {
	logger       *zerg.Logger
	fatalHandler func(msg string)
}

// NewGnetAdapter creates a gnet-compatible logger adapter.
func NewGnetAdapter(logger *zerg.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

// GnetOption customizes adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

func (a *GnetAdapter) logf(level zerg.Level, format string, args []any) {
	a.logger.Log(level, "gnet", 0, "{}", fmt.Sprintf(format, args...))
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logf(zerg.LevelDebug, format, args)
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logf(zerg.LevelInfo, format, args)
}

// Warnf logs at warn level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logf(zerg.LevelWarn, format, args)
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logf(zerg.LevelError, format, args)
}

// Fatalf logs at fatal level, drains the engine, and invokes the fatal
// handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Log(zerg.LevelFatal, "gnet", 0, "{}", msg)

	// Make sure the record reaches the sink before the process dies
	a.logger.Sync()
	a.logger.WaitUntilEmpty()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
