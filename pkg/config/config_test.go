package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "./data", config.DataDir)
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "127.0.0.1", config.Bind)
	assert.Equal(t, 4, config.Writer.Fields)
	assert.Equal(t, 64, config.Writer.InitialExtra)
	assert.Equal(t, "1s", config.Writer.FsyncInterval)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		expectedConfig := &Config{
			DataDir: "/custom/data",
			Port:    9000,
			Bind:    "0.0.0.0",
			Writer: Writer{
				Fields:        8,
				InitialExtra:  128,
				FsyncInterval: "0",
			},
			Logging: Logging{
				Level: "debug",
			},
		}

		require.NoError(t, SaveConfig(expectedConfig, configPath))

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644))

		_, err := LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	config := DefaultConfig()

	require.NoError(t, SaveConfig(config, configPath))

	// Written with secure permissions
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "mimir")
	assert.Contains(t, path, "config.yaml")
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	require.NoError(t, os.WriteFile(existingPath, []byte("test"), 0644))

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(filepath.Join(tmpDir, "does-not-exist.yaml")))
}
