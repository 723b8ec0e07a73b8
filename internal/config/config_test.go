package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "dod-5220-22-m", cfg.Erase.DefaultStandard)
	assert.Equal(t, 64*1024, cfg.Erase.ChunkSize)
	assert.True(t, cfg.Erase.RenameBeforeDelete)
	assert.NotEmpty(t, cfg.Security.ProtectedPaths)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
erase:
  default_standard: vsitr
  chunk_size: 131072
  max_speed_mbps: 25
logging:
  level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vsitr", cfg.Erase.DefaultStandard)
	assert.Equal(t, 131072, cfg.Erase.ChunkSize)
	assert.Equal(t, 25.0, cfg.Erase.MaxSpeedMBps)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	// Незаданные секции сохраняют значения по умолчанию
	assert.True(t, cfg.Security.RequireConfirmation)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("erase:\n  chunk_size: -1\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateRejectsBadLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "TRACE"
	require.Error(t, Validate(cfg))
}

func TestApplyProfile(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyProfile(cfg, "fast"))
	assert.Equal(t, 1024*1024, cfg.Erase.ChunkSize)
	assert.Equal(t, 0.0, cfg.Erase.MaxSpeedMBps)

	require.NoError(t, ApplyProfile(cfg, "safe"))
	assert.Equal(t, 10.0, cfg.Erase.MaxSpeedMBps)

	require.Error(t, ApplyProfile(cfg, "turbo"))
}
