package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration loaded from the environment.
type Config struct {
	DevID              string        `mapstructure:"smite_dev_id"`
	AuthKey            string        `mapstructure:"smite_auth_key"`
	Lang               int           `mapstructure:"smite_lang"`
	Endpoint           string        `mapstructure:"smite_endpoint"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	LogLevel     string `mapstructure:"log_level"`
	LogFile      string `mapstructure:"log_file"`
	LogMaxSizeMB int    `mapstructure:"log_max_size_mb"`
}

// Load reads configuration from environment variables, preloading a local
// .env file when present. SMITE_DEV_ID and SMITE_AUTH_KEY are required; the
// rest have defaults.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("smite_dev_id", "")
	v.SetDefault("smite_auth_key", "")
	v.SetDefault("smite_lang", 1)
	v.SetDefault("smite_endpoint", "pc")
	v.SetDefault("http_timeout_seconds", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 50)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DevID == "" {
		return nil, fmt.Errorf("SMITE_DEV_ID is required")
	}
	if cfg.AuthKey == "" {
		return nil, fmt.Errorf("SMITE_AUTH_KEY is required")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}
