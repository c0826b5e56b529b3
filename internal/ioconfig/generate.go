package ioconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnames/playetl/internal/iofs"
	"github.com/gnames/playetl/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# PlayETL configuration.
#
# Values here are overridden by PLAYETL_* environment variables
# (database.host -> PLAYETL_DATABASE_HOST) and by command line flags.

`

// GenerateConfig renders the default configuration as YAML.
func GenerateConfig() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.New()); err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	return buf.Bytes(), nil
}

// EnsureConfigFile writes the default config.yaml to the config
// directory under homeDir unless it already exists.
// Returns true if a new file was written.
func EnsureConfigFile(homeDir string) (bool, error) {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	data, err := GenerateConfig()
	if err != nil {
		return false, iofs.CopyFileError(configPath, err)
	}

	if err = os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return false, iofs.CreateDirError(filepath.Dir(configPath), err)
	}

	if err = os.WriteFile(configPath, data, 0644); err != nil {
		return false, iofs.CopyFileError(configPath, err)
	}

	return true, nil
}

// ValidateConfigFile reads a config file and checks that it is valid YAML
// matching the Config layout.
func ValidateConfigFile(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return iofs.ReadFileError(configPath, err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return iofs.ReadFileError(configPath,
			fmt.Errorf("invalid YAML: %w", err))
	}
	return nil
}
