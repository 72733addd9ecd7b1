package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration: store coordinates plus credentials.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig identifies one Shopwire store and its API credentials.
type StoreConfig struct {
	URL            string `mapstructure:"url"`
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
	Version        string `mapstructure:"version"`
}

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration from file. When configPath is empty the
// standard locations are searched: ., ~/.shopwire, /etc/shopwire.
// SHOPWIRE_* environment variables override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".shopwire"))
		}
		v.AddConfigPath("/etc/shopwire/")
	}

	v.SetEnvPrefix("shopwire")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.version", "v3")
	v.SetDefault("logging.level", "info")
}

// validate checks if the configuration is usable.
func validate(cfg *Config) error {
	if cfg.Store.URL == "" {
		return fmt.Errorf("store.url is required")
	}
	if cfg.Store.ConsumerKey == "" {
		return fmt.Errorf("store.consumer_key is required")
	}
	if cfg.Store.ConsumerSecret == "" {
		return fmt.Errorf("store.consumer_secret is required")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}
	return nil
}
