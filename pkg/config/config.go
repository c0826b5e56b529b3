// Package config provides configuration management for PlayETL.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, max_conns
//   - Data: song_dir, log_dir, time_zone
//   - Load: progress_bar
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PLAYETL_ prefix with underscores for nesting:
//
//	PLAYETL_DATABASE_HOST=localhost
//	PLAYETL_DATABASE_PORT=5432
//	PLAYETL_DATA_SONG_DIR=data/song_data
//	PLAYETL_LOG_LEVEL=info
package config

// Config represents the complete PlayETL configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Data points to the input JSON directories.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Load contains settings specific to the load command.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// MaxConns caps the connection pool. The load itself is sequential
	// and holds one connection at a time.
	MaxConns int `mapstructure:"max_conns" yaml:"max_conns"`
}

// DataConfig describes where the input files are.
type DataConfig struct {
	// SongDir is the root of the song catalog files. Every *.json file
	// below it holds one song with its artist.
	SongDir string `mapstructure:"song_dir" yaml:"song_dir"`

	// LogDir is the root of the activity log files. Every *.json file below
	// it holds one event per line.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir"`

	// TimeZone is an IANA time zone name used to break event timestamps
	// into hour, day, week, month, year and weekday.
	TimeZone string `mapstructure:"time_zone" yaml:"time_zone"`
}

// LoadConfig contains settings of the load command.
type LoadConfig struct {
	// ProgressBar replaces the per-file progress lines with a progress bar.
	ProgressBar bool `mapstructure:"progress_bar" yaml:"progress_bar"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "student",
			Password: "student",
			Database: "sparkifydb",
			SSLMode:  "disable",
			MaxConns: 4,
		},
		Data: DataConfig{
			SongDir:  "data/song_data",
			LogDir:   "data/log_data",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
