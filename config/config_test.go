package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8001", cfg.Catalog.URL)
	assert.Equal(t, "http://localhost:8000", cfg.Identity.URL)
	assert.Equal(t, "http://localhost:9000", cfg.Assets.URL)
	assert.Equal(t, "cinema-files", cfg.Assets.Bucket)
	assert.NotEmpty(t, cfg.Session.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CINEMA_CATALOG_URL", "http://catalog.example.com")
	t.Setenv("CINEMA_IDENTITY_URL", "http://auth.example.com")
	t.Setenv("CINEMA_ASSETS_BUCKET", "other-bucket")
	t.Setenv("CINEMA_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://catalog.example.com", cfg.Catalog.URL)
	assert.Equal(t, "http://auth.example.com", cfg.Identity.URL)
	assert.Equal(t, "other-bucket", cfg.Assets.Bucket)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("catalog:\n  url: http://file.example.com\nlogging:\n  level: warn\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://file.example.com", cfg.Catalog.URL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Unset keys keep their defaults
	assert.Equal(t, "http://localhost:8000", cfg.Identity.URL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		value  string
	}{
		{"invalid logging level", "CINEMA_LOGGING_LEVEL", "verbose"},
		{"invalid logging format", "CINEMA_LOGGING_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
