package ioconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/playetl/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateConfig(t *testing.T) {
	data, err := GenerateConfig()
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *config.New(), cfg)
	assert.Contains(t, string(data), "PLAYETL_DATABASE_HOST")
	assert.Contains(t, string(data), "song_dir: data/song_data")
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	path := config.ConfigFilePath(home)

	t.Run("creates config", func(t *testing.T) {
		created, err := EnsureConfigFile(home)
		require.NoError(t, err)
		assert.True(t, created)

		assert.NoError(t, ValidateConfigFile(path),
			"generated config should be valid")
	})

	t.Run("does not overwrite existing file", func(t *testing.T) {
		custom := []byte("database:\n  host: db.example.org\n")
		require.NoError(t, os.WriteFile(path, custom, 0644))

		created, err := EnsureConfigFile(home)
		require.NoError(t, err)
		assert.False(t, created)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, custom, content)
	})
}

func TestValidateConfigFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("database: [\n"), 0644))
	assert.Error(t, ValidateConfigFile(bad))

	assert.Error(t, ValidateConfigFile(filepath.Join(dir, "none.yaml")))
}
