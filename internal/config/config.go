package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix, e.g. KIDB_SERVER_ADDR
const EnvPrefix = "KIDB"

// Config is the full process configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Outlier  OutlierConfig  `mapstructure:"outlier"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	CORSOrigin      string        `mapstructure:"cors_origin"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`   // DEBUG, INFO, WARN, ERROR
	SeqURL string `mapstructure:"seq_url"` // empty disables Seq
}

// OutlierConfig holds the deviation factor used when a query gives none.
// Zero disables outlier exclusion.
type OutlierConfig struct {
	DefaultDeviation float64 `mapstructure:"default_deviation"`
}

var defaults = map[string]interface{}{
	"database.path":             "database.csv",
	"server.addr":               ":8000",
	"server.cors_origin":        "*",
	"server.shutdown_timeout":   "10s",
	"log.level":                 "INFO",
	"log.seq_url":               "",
	"outlier.default_deviation": 0.0,
}

// Load resolves configuration from defaults, an optional config file and
// KIDB_* environment variables, in increasing order of precedence.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// Every key has a default, so AutomaticEnv sees all of them during Unmarshal.
	// KIDB_SERVER_CORS_ORIGIN -> server.cors_origin
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
