package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "MINES"

type Log struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

type Records struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Config struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	Mines       int     `mapstructure:"mines"`
	Development bool    `mapstructure:"development"`
	ClearScreen bool    `mapstructure:"clear_screen"`
	Color       bool    `mapstructure:"color"`
	Log         Log     `mapstructure:"log"`
	Records     Records `mapstructure:"records"`
}

const (
	BackendNone     = "none"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

func defaultSQLitePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "mines.db"
	}
	return filepath.Join(dir, "mines", "records.db")
}

// New returns a viper instance with defaults and MINES_* environment
// variables wired up. Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("width", 10)
	v.SetDefault("height", 10)
	v.SetDefault("mines", 10)
	v.SetDefault("development", Development())
	v.SetDefault("clear_screen", true)
	v.SetDefault("color", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("records.backend", BackendSQLite)
	v.SetDefault("records.sqlite_path", defaultSQLitePath())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and decodes v into a [Config].
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	switch c.Records.Backend {
	case BackendNone, BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf(
			"records.backend must be one of %s, %s, %s (got %q)",
			BackendNone, BackendSQLite, BackendPostgres, c.Records.Backend,
		)
	}

	return &c, nil
}
