package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration. Every value can come from the environment
// (prefix CINEMA, dots become underscores, e.g. CINEMA_CATALOG_URL); a config
// file is optional and the documented localhost defaults apply when neither
// is set.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("cinema")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".cinema"))
		}
		v.AddConfigPath("/etc/cinema/")

		// Env and defaults are enough on their own; only a broken file
		// is fatal.
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
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

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Backend defaults match the local docker-compose ports
	v.SetDefault("catalog.url", "http://localhost:8001")
	v.SetDefault("identity.url", "http://localhost:8000")
	v.SetDefault("assets.url", "http://localhost:9000")
	v.SetDefault("assets.bucket", "cinema-files")

	v.SetDefault("session.path", defaultSessionPath())

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.toml"
	}
	return filepath.Join(home, ".config", "cinema", "session.toml")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Catalog.URL == "" {
		return fmt.Errorf("catalog.url is required")
	}
	if cfg.Identity.URL == "" {
		return fmt.Errorf("identity.url is required")
	}
	if cfg.Assets.URL == "" {
		return fmt.Errorf("assets.url is required")
	}
	if cfg.Assets.Bucket == "" {
		return fmt.Errorf("assets.bucket is required")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
