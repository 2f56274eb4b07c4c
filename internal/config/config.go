// Package config loads configuration and builds the application logger.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	// SurrealDB connection
	SurrealDBURL       string `mapstructure:"surrealdb-url"`
	SurrealDBNamespace string `mapstructure:"surrealdb-namespace"`
	SurrealDBDatabase  string `mapstructure:"surrealdb-database"`
	SurrealDBUser      string `mapstructure:"surrealdb-user"`
	SurrealDBPass      string `mapstructure:"surrealdb-pass"`
	SurrealDBAuthLevel string `mapstructure:"surrealdb-auth-level"`

	// Logging
	LogFile  string `mapstructure:"log-file"`
	LogLevel string `mapstructure:"log-level"`

	// QueryTimeout bounds every store call; a slow store surfaces as a
	// request failure instead of a hang.
	QueryTimeout time.Duration `mapstructure:"query-timeout"`
}

// Load reads configuration from an optional YAML file and STAFFGRAPH_*
// environment variables. cfgFile may be empty.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("surrealdb-url", "ws://localhost:8000/rpc")
	v.SetDefault("surrealdb-namespace", "staffing")
	v.SetDefault("surrealdb-database", "graph")
	v.SetDefault("surrealdb-user", "root")
	v.SetDefault("surrealdb-pass", "root")
	v.SetDefault("surrealdb-auth-level", "root")
	v.SetDefault("log-file", "/tmp/staffgraph.log")
	v.SetDefault("log-level", "INFO")
	v.SetDefault("query-timeout", 30*time.Second)

	v.SetEnvPrefix("STAFFGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Level parses the configured log level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
