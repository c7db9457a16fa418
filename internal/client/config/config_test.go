package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DefaultEndpoint, c.Endpoint)
	assert.Equal(t, BackendHTTP, c.Backend)
	assert.Equal(t, int64(10*1024*1024), c.MaxSelectionBytes)
	assert.Equal(t, 500*time.Millisecond, c.SuccessDelay)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 24*time.Hour, c.S3.LinkExpiry)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, BackendHTTP, cfg.Backend)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint":      "http://json.example/upload",
		"success_delay": "1s",
		"log_level":     "warn",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-e", "http://flag.example/upload", "photo.jpg"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag.example/upload", cfg.Endpoint)
	assert.Equal(t, time.Second, cfg.SuccessDelay)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "ftp" }, wantErr: true},
		{name: "http without endpoint", mutate: func(c *Config) { c.Endpoint = "" }, wantErr: true},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Backend = BackendS3 }, wantErr: true},
		{name: "s3 with bucket", mutate: func(c *Config) { c.Backend = BackendS3; c.S3.Bucket = "b"; c.Endpoint = "" }},
		{name: "zero limit", mutate: func(c *Config) { c.MaxSelectionBytes = 0 }, wantErr: true},
		{name: "negative delay", mutate: func(c *Config) { c.SuccessDelay = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	_, err := LoadConfig([]string{"-b", "ftp"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestS3Settings(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.S3.Bucket = "shares"
	c.S3.Prefix = "p"

	st := c.S3Settings()
	assert.Equal(t, "shares", st.Bucket)
	assert.Equal(t, "us-east-1", st.Region)
	assert.Equal(t, "p", st.Prefix)
	assert.Equal(t, 24*time.Hour, st.LinkExpiry)
}
