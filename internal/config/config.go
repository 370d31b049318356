package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	keyAddr           = "addr"
	keyDatabaseURL    = "database_url"
	keyCategoryLimit  = "category_limit"
	keyDigestInterval = "digest_interval"
	keyDigestTime     = "digest_time"
)

// Config keeps runtime settings for the cockpit server.
type Config struct {
	// Addr is the listen address of the HTTP API.
	Addr string
	// DatabaseURL is the SQLite DSN.
	DatabaseURL string
	// CategoryLimit caps how many categories may exist at once.
	CategoryLimit int
	// DigestInterval is how often the digest job logs a summary; 0 disables it.
	DigestInterval time.Duration
	// DigestTime, when set to HH:MM, runs the digest daily at that time
	// instead of on the interval.
	DigestTime string
}

// Load reads configuration from COCKPIT_* environment variables, optionally
// merged over a YAML config file. A missing config file is not an error.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetDefault(keyAddr, ":8080")
	v.SetDefault(keyDatabaseURL, "cockpit.db")
	v.SetDefault(keyCategoryLimit, 5)
	v.SetDefault(keyDigestInterval, "0")
	v.SetDefault(keyDigestTime, "")

	v.SetEnvPrefix("COCKPIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
			}
		}
	}

	cfg := Config{
		Addr:           v.GetString(keyAddr),
		DatabaseURL:    v.GetString(keyDatabaseURL),
		CategoryLimit:  v.GetInt(keyCategoryLimit),
		DigestInterval: v.GetDuration(keyDigestInterval),
		DigestTime:     strings.TrimSpace(v.GetString(keyDigestTime)),
	}

	if cfg.Addr == "" {
		return cfg, fmt.Errorf("addr must not be empty")
	}
	if cfg.CategoryLimit <= 0 {
		return cfg, fmt.Errorf("category_limit must be positive, got %d", cfg.CategoryLimit)
	}
	if cfg.DigestInterval < 0 {
		return cfg, fmt.Errorf("digest_interval must not be negative")
	}

	return cfg, nil
}
