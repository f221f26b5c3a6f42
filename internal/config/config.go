// Package config loads mathdrill settings from an optional config.yaml,
// a .env file and MATHDRILL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidSession is returned when the session settings cannot drive a
// practice session.
var ErrInvalidSession = errors.New("invalid session settings")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string  `mapstructure:"env"`        // "production" switches to JSON logs
	DBPath  string  `mapstructure:"db_path"`    // SQLite file; empty means the XDG default
	LogFile string  `mapstructure:"log_file"`   // where logs go while the TUI owns the terminal
	Export  string  `mapstructure:"export_dir"` // directory for exports and worksheets
	Session Session `mapstructure:"session"`
	DB      DB      `mapstructure:"database"`
}

// Session tunes a timed practice session.
type Session struct {
	Duration       time.Duration `mapstructure:"duration"`        // length of a timed session
	InitialBatch   int           `mapstructure:"initial_batch"`   // questions generated at start
	LowWater       int           `mapstructure:"low_water"`       // replenish while fewer than this
	TopUp          int           `mapstructure:"top_up"`          // questions added per replenish
	ReplenishDelay time.Duration `mapstructure:"replenish_delay"` // delay before a background top-up
}

// DB configures the optional Postgres backend.
type DB struct {
	URL             string        `mapstructure:"-"` // loaded from environment only
	MaxConnections  int           `mapstructure:"max_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// UsePostgres reports whether a Postgres URL is configured.
func (db DB) UsePostgres() bool {
	return db.URL != ""
}

// Load reads configuration from config files and environment variables.
// Extra search directories for config.yaml may be passed; by default
// ./config and $XDG_CONFIG_HOME/mathdrill are searched.
func Load(configDirs ...string) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, d := range configDirs {
		v.AddConfigPath(d)
	}
	v.AddConfigPath("./config")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "mathdrill"))
	}

	v.SetDefault("env", "local")
	v.SetDefault("db_path", "")
	v.SetDefault("log_file", "")
	v.SetDefault("export_dir", ".")
	v.SetDefault("session.duration", "10m")
	v.SetDefault("session.initial_batch", 10)
	v.SetDefault("session.low_water", 50)
	v.SetDefault("session.top_up", 10)
	v.SetDefault("session.replenish_delay", "1s")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30m")

	v.SetEnvPrefix("MATHDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("database_url", "MATHDRILL_DATABASE_URL", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s Session) validate() error {
	switch {
	case s.Duration <= 0:
		return fmt.Errorf("%w: duration %s", ErrInvalidSession, s.Duration)
	case s.InitialBatch <= 0:
		return fmt.Errorf("%w: initial_batch %d", ErrInvalidSession, s.InitialBatch)
	case s.TopUp <= 0:
		return fmt.Errorf("%w: top_up %d", ErrInvalidSession, s.TopUp)
	case s.LowWater < s.InitialBatch:
		return fmt.Errorf("%w: low_water %d below initial_batch %d", ErrInvalidSession, s.LowWater, s.InitialBatch)
	}
	return nil
}
