package config

// Config represents the complete configuration structure
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Identity IdentityConfig `mapstructure:"identity"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Session  SessionConfig  `mapstructure:"session"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// CatalogConfig holds the catalog service connection details
type CatalogConfig struct {
	URL string `mapstructure:"url"`
}

// IdentityConfig holds the identity service connection details
type IdentityConfig struct {
	URL string `mapstructure:"url"`
}

// AssetsConfig holds the object storage details used to synthesize
// fallback poster and backdrop URLs
type AssetsConfig struct {
	URL    string `mapstructure:"url"`
	Bucket string `mapstructure:"bucket"`
}

// SessionConfig holds the durable session storage location
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
