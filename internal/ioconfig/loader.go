// Package ioconfig provides I/O operations for loading configuration from
// files and environment variables.
// This is an impure package that handles file system operations.
package ioconfig

import (
	"os"
	"strings"

	"github.com/gnames/playetl/internal/iofs"
	"github.com/gnames/playetl/pkg/config"
	"github.com/spf13/viper"
)

// Load reads configuration from config.yaml under homeDir and from
// PLAYETL_* environment variables. A missing config file is not an error,
// defaults and environment are used then.
// Returned Config always starts from config.New(), so fields absent
// everywhere keep their defaults.
func Load(homeDir string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigType("yaml")
	initEnvVars(v)

	cfgPath := config.ConfigFilePath(homeDir)
	if _, statErr := os.Stat(cfgPath); statErr == nil {
		v.SetConfigFile(cfgPath)
		if err = v.ReadInConfig(); err != nil {
			return nil, iofs.ReadFileError(cfgPath, err)
		}
	}

	var cfgViper config.Config
	if err = v.Unmarshal(&cfgViper); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	res := config.New()
	res.Update(cfgViper.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})
	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	_ = v.BindEnv("database.host")
	_ = v.BindEnv("database.port")
	_ = v.BindEnv("database.user")
	_ = v.BindEnv("database.password")
	_ = v.BindEnv("database.database")
	_ = v.BindEnv("database.ssl_mode")
	_ = v.BindEnv("database.max_conns")

	// Input data
	_ = v.BindEnv("data.song_dir")
	_ = v.BindEnv("data.log_dir")
	_ = v.BindEnv("data.time_zone")

	_ = v.BindEnv("load.progress_bar")

	// Log configuration
	_ = v.BindEnv("log.level")
	_ = v.BindEnv("log.format")
	_ = v.BindEnv("log.destination")

	v.AutomaticEnv()
}
