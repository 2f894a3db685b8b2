package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "explicitSortOrder", cfg.Host.PositionField)
	assert.Equal(t, "explicitSortOrder,name", cfg.Host.Sort)
	assert.Equal(t, 500, cfg.Host.PageSize)
	assert.Equal(t, []string{"name", "status", "fileSize", "explicitSortOrder"}, cfg.Host.Columns)
	assert.Equal(t, 8, cfg.Sorter.Concurrency)
	assert.True(t, cfg.Sorter.Snapshots)
	assert.Equal(t, 20, cfg.Sorter.SnapshotRetention)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOST_URL", "https://dam.example.com")
	t.Setenv("HOST_COLUMNS", "name,metadata.status")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://dam.example.com,https://dam2.example.com")
	t.Setenv("SORTER_CONCURRENCY", "2")
	t.Setenv("SORTER_SNAPSHOTS", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://dam.example.com", cfg.Host.URL)
	assert.Equal(t, []string{"name", "metadata.status"}, cfg.Host.Columns)
	assert.Equal(t, []string{"https://dam.example.com", "https://dam2.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2, cfg.Sorter.Concurrency)
	assert.False(t, cfg.Sorter.Snapshots)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HOST_POSITION_FIELD=customOrder\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("HOST_POSITION_FIELD")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "customOrder", cfg.Host.PositionField)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("HOST_PAGE_SIZE", "0")
	t.Setenv("SORTER_CONCURRENCY", "-1")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "host.page_size")
	assert.ErrorContains(t, err, "sorter.concurrency")
}
