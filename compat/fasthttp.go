// Package compat adapts an engine to the logger interfaces of third-party
// frameworks.
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/joeloftusdev/zerg"
)

// FastHTTPAdapter exposes an engine through fasthttp's Logger interface.
type FastHTTPAdapter struct {
	logger        *zerg.Logger
	defaultLevel  zerg.Level
	levelDetector func(string) (zerg.Level, bool)
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// NewFastHTTPAdapter creates a fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(logger *zerg.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  zerg.LevelInfo,
		levelDetector: DetectLogLevel,
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

// FastHTTPOption customizes adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection fails.
func WithDefaultLevel(level zerg.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector replaces the message-content level heuristic.
func WithLevelDetector(detector func(string) (zerg.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface. fasthttp formats with
// printf verbs, so the message is rendered here and forwarded opaquely.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}
	a.logger.Log(level, "fasthttp", 0, "{}", msg)
}

// DetectLogLevel guesses a severity from message content.
func DetectLogLevel(msg string) (zerg.Level, bool) {
	msgLower := strings.ToLower(msg)

	switch {
	case strings.Contains(msgLower, "fatal"),
		strings.Contains(msgLower, "panic"):
		return zerg.LevelFatal, true
	case strings.Contains(msgLower, "error"),
		strings.Contains(msgLower, "failed"):
		return zerg.LevelError, true
	case strings.Contains(msgLower, "warn"),
		strings.Contains(msgLower, "deprecated"):
		return zerg.LevelWarn, true
	case strings.Contains(msgLower, "debug"),
		strings.Contains(msgLower, "trace"):
		return zerg.LevelDebug, true
	}
	return zerg.LevelInfo, false
}
