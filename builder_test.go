package zerg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, defaultConfig, *b.cfg)
}

func TestBuilderChaining(t *testing.T) {
	b := NewBuilder().
		Level(LevelWarn).
		Directory("/tmp/logs/").
		Name("chained.log").
		BufferSize(128).
		MaxFileSize(4096).
		FileBufferSize(8192).
		Sanitization("hex").
		MaxLogRate(100).
		HeartbeatIntervalS(30)

	assert.Equal(t, LevelWarn, b.cfg.Level)
	assert.Equal(t, "/tmp/logs/", b.cfg.Directory)
	assert.Equal(t, "chained.log", b.cfg.Name)
	assert.Equal(t, int64(128), b.cfg.BufferSize)
	assert.Equal(t, int64(4096), b.cfg.MaxFileSize)
	assert.Equal(t, int64(8192), b.cfg.FileBufferSize)
	assert.Equal(t, "hex", b.cfg.Sanitization)
	assert.Equal(t, int64(100), b.cfg.MaxLogRate)
	assert.Equal(t, int64(30), b.cfg.HeartbeatIntervalS)
}

func TestBuilderLevelString(t *testing.T) {
	assert.Equal(t, LevelError, NewBuilder().LevelString("ERROR").cfg.Level)
	assert.Equal(t, LevelDebug, NewBuilder().LevelString("bogus").cfg.Level)
}

func TestBuilderBuild(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewBuilder().
		Directory(dir + "/").
		Name("built.log").
		Level(LevelInfo).
		Build()
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, LevelInfo, logger.LogLevel())
}

func TestBuilderBuildInvalid(t *testing.T) {
	_, err := NewBuilder().BufferSize(0).Build()
	assert.Error(t, err)
}
