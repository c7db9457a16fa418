package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dropshare/internal/client/client"
	"github.com/dmitrijs2005/dropshare/internal/client/selection"
	"github.com/dmitrijs2005/dropshare/internal/client/widget"
)

const (
	BackendHTTP = "http"
	BackendS3   = "s3"

	DefaultEndpoint = "https://keshavsuthar-dev.hf.space/upload"
)

var ErrInvalidConfig = errors.New("invalid config")

// S3 holds settings of the self-hosted backend.
type S3 struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Prefix       string
	LinkExpiry   time.Duration
}

// Config holds runtime settings for the dropshare client.
type Config struct {
	Endpoint          string
	Backend           string
	MaxSelectionBytes int64
	SuccessDelay      time.Duration
	RequestTimeout    time.Duration
	LogLevel          string
	S3                S3
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = DefaultEndpoint
	c.Backend = BackendHTTP
	c.MaxSelectionBytes = selection.DefaultMaxTotalSize
	c.SuccessDelay = widget.DefaultSuccessDelay
	c.RequestTimeout = 0
	c.LogLevel = "warn"
	c.S3 = S3{Region: "us-east-1", LinkExpiry: client.DefaultLinkExpiry}
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendHTTP:
		if c.Endpoint == "" {
			return fmt.Errorf("%w: endpoint is required for the http backend", ErrInvalidConfig)
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("%w: bucket is required for the s3 backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.MaxSelectionBytes <= 0 {
		return fmt.Errorf("%w: max selection size must be positive", ErrInvalidConfig)
	}
	if c.SuccessDelay < 0 || c.RequestTimeout < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	return nil
}

// S3Settings converts the backend block for client.NewS3Uploader.
func (c *Config) S3Settings() client.S3Settings {
	return client.S3Settings{
		Bucket:       c.S3.Bucket,
		Region:       c.S3.Region,
		BaseEndpoint: c.S3.BaseEndpoint,
		AccessKey:    c.S3.AccessKey,
		SecretKey:    c.S3.SecretKey,
		Prefix:       c.S3.Prefix,
		LinkExpiry:   c.S3.LinkExpiry,
	}
}

// LoadConfig constructs a Config from args (without the program name):
// defaults first, then the JSON file if one is named, then flags. Later
// sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
