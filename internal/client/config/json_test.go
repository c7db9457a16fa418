package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"endpoint":            "http://www.example:9000/upload",
		"backend":             "s3",
		"max_selection_bytes": 4096,
		"success_delay":       "250ms",
		"request_timeout":     int64(2 * time.Second),
		"log_level":           "debug",
		"s3": map[string]any{
			"bucket":        "shares",
			"region":        "eu-west-1",
			"base_endpoint": "http://127.0.0.1:9000",
			"access_key":    "minio",
			"secret_key":    "minio123",
			"prefix":        "drops",
			"link_expiry":   "1h",
		},
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-config", full}))

		assert.Equal(t, "http://www.example:9000/upload", cfg.Endpoint)
		assert.Equal(t, BackendS3, cfg.Backend)
		assert.Equal(t, int64(4096), cfg.MaxSelectionBytes)
		assert.Equal(t, 250*time.Millisecond, cfg.SuccessDelay)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, S3{
			Bucket:       "shares",
			Region:       "eu-west-1",
			BaseEndpoint: "http://127.0.0.1:9000",
			AccessKey:    "minio",
			SecretKey:    "minio123",
			Prefix:       "drops",
			LinkExpiry:   time.Hour,
		}, cfg.S3)
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "error"})

		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(&cfg, []string{"-c", partial}))

		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
		assert.Equal(t, 500*time.Millisecond, cfg.SuccessDelay)
	})

	t.Run("no -c and no -config → no changes", func(t *testing.T) {
		cfg := &Config{Endpoint: "defaults:1234", SuccessDelay: 42 * time.Second}
		require.NoError(t, parseJSON(cfg, []string{"file.txt"}))

		assert.Equal(t, "defaults:1234", cfg.Endpoint)
		assert.Equal(t, 42*time.Second, cfg.SuccessDelay)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJSON(&Config{}, []string{"-config", bad}))
	})

	t.Run("missing file → error", func(t *testing.T) {
		require.Error(t, parseJSON(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
