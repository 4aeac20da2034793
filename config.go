package zerg

import (
	"errors"

	"github.com/lixenwraith/config"
)

// Config holds all engine construction values.
type Config struct {
	Level     Level  `toml:"level"`
	Directory string `toml:"directory"` // prefix prepended verbatim to Name
	Name      string `toml:"name"`      // log file name
	Console   bool   `toml:"console"`   // write to stdout instead of a file

	BufferSize     int64 `toml:"buffer_size"`      // ring capacity, rounded up to a power of two
	MaxFileSize    int64 `toml:"max_file_size"`    // rotation bound in bytes, 0 disables
	FileBufferSize int64 `toml:"file_buffer_size"` // file sink user-space buffer

	Sanitization string `toml:"sanitization"` // "strip", "hex", or "raw"

	MaxLogRate         int64 `toml:"max_log_rate"`         // records/second, 0 unlimited
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // 0 disables the heartbeat
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:              LevelDebug,
	Directory:          "./",
	Name:               "zerg.log",
	Console:            false,
	BufferSize:         DefaultQueueCapacity,
	MaxFileSize:        DefaultMaxFileSize,
	FileBufferSize:     DefaultFileBufferSize,
	Sanitization:       "strip",
	MaxLogRate:         0,
	HeartbeatIntervalS: 0,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copied := defaultConfig
	return &copied
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	copied := *c
	return &copied
}

// fullPath is the target file: Directory is a plain prefix, not joined, so a
// trailing separator is the caller's responsibility. This mirrors how the
// registry composes paths.
func (c *Config) fullPath() string {
	return c.Directory + c.Name
}

// validate rejects configurations an engine cannot run with.
func (c *Config) validate() error {
	if c.BufferSize <= 0 {
		return fmtErrorf("buffer_size must be positive: %d", c.BufferSize)
	}
	if c.MaxFileSize < 0 {
		return fmtErrorf("max_file_size cannot be negative: %d", c.MaxFileSize)
	}
	if c.FileBufferSize <= 0 {
		return fmtErrorf("file_buffer_size must be positive: %d", c.FileBufferSize)
	}
	switch c.Sanitization {
	case "strip", "hex", "raw":
	default:
		return fmtErrorf("invalid sanitization: '%s' (use strip, hex, or raw)", c.Sanitization)
	}
	if !c.Console && c.Name == "" {
		return fmtErrorf("log name cannot be empty")
	}
	if c.Level < LevelDebug || c.Level > LevelFatal {
		return fmtErrorf("invalid level: %d", c.Level)
	}
	if c.MaxLogRate < 0 {
		return fmtErrorf("max_log_rate cannot be negative: %d", c.MaxLogRate)
	}
	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}
	return nil
}

// NewConfigFromFile loads engine configuration from a TOML file, keeping
// defaults for any key the file does not set.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct("zerg.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %v", err)
	}

	if err := loader.Load(path, nil); err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmtErrorf("%w: '%s': %v", ErrConfigOpen, path, err)
		}
		return nil, fmtErrorf("failed to load config from '%s': %v", path, err)
	}

	// Registered defaults back every key, so the typed getters always resolve
	level, _ := loader.Int64("zerg.level")
	cfg.Level = Level(level)
	cfg.Directory, _ = loader.String("zerg.directory")
	cfg.Name, _ = loader.String("zerg.name")
	cfg.Console, _ = loader.Bool("zerg.console")
	cfg.BufferSize, _ = loader.Int64("zerg.buffer_size")
	cfg.MaxFileSize, _ = loader.Int64("zerg.max_file_size")
	cfg.FileBufferSize, _ = loader.Int64("zerg.file_buffer_size")
	cfg.Sanitization, _ = loader.String("zerg.sanitization")
	cfg.MaxLogRate, _ = loader.Int64("zerg.max_log_rate")
	cfg.HeartbeatIntervalS, _ = loader.Int64("zerg.heartbeat_interval_s")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
