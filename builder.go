package zerg

// Builder provides a fluent API for building engine configurations.
type Builder struct {
	cfg *Config
}

// NewBuilder creates a configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Build creates a new engine with the built configuration.
func (b *Builder) Build() (*Logger, error) {
	return NewLogger(b.cfg)
}

// Level sets the severity threshold.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the severity threshold from a name.
func (b *Builder) LevelString(level string) *Builder {
	b.cfg.Level = ParseLevel(level)
	return b
}

// Directory sets the path prefix for the log file.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Name sets the log file name.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Console selects the console sink instead of a file.
func (b *Builder) Console(enable bool) *Builder {
	b.cfg.Console = enable
	return b
}

// BufferSize sets the ring capacity.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// MaxFileSize sets the rotation bound in bytes.
func (b *Builder) MaxFileSize(size int64) *Builder {
	b.cfg.MaxFileSize = size
	return b
}

// FileBufferSize sets the file sink's user-space buffer size.
func (b *Builder) FileBufferSize(size int64) *Builder {
	b.cfg.FileBufferSize = size
	return b
}

// Sanitization selects the line sanitisation policy: strip, hex, or raw.
func (b *Builder) Sanitization(policy string) *Builder {
	b.cfg.Sanitization = policy
	return b
}

// MaxLogRate caps accepted records per second; 0 means unlimited.
func (b *Builder) MaxLogRate(perSecond int64) *Builder {
	b.cfg.MaxLogRate = perSecond
	return b
}

// HeartbeatIntervalS enables the periodic statistics heartbeat.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}
