package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dropshare/internal/flagx"
	"github.com/dmitrijs2005/dropshare/internal/timex"
)

// jsonS3 and jsonConfig are DTOs used exclusively for unmarshalling.
// Pointers tell an absent key from a zero value.
type jsonS3 struct {
	Bucket       *string         `json:"bucket"`
	Region       *string         `json:"region"`
	BaseEndpoint *string         `json:"base_endpoint"`
	AccessKey    *string         `json:"access_key"`
	SecretKey    *string         `json:"secret_key"`
	Prefix       *string         `json:"prefix"`
	LinkExpiry   *timex.Duration `json:"link_expiry"`
}

type jsonConfig struct {
	Endpoint          *string         `json:"endpoint"`
	Backend           *string         `json:"backend"`
	MaxSelectionBytes *int64          `json:"max_selection_bytes"`
	SuccessDelay      *timex.Duration `json:"success_delay"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	LogLevel          *string         `json:"log_level"`
	S3                *jsonS3         `json:"s3"`
}

// parseJSON overlays cfg with the JSON file named by -c or -config in args.
// Without such a flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.Endpoint, jc.Endpoint)
	setString(&cfg.Backend, jc.Backend)
	if jc.MaxSelectionBytes != nil {
		cfg.MaxSelectionBytes = *jc.MaxSelectionBytes
	}
	if jc.SuccessDelay != nil {
		cfg.SuccessDelay = jc.SuccessDelay.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.LogLevel, jc.LogLevel)

	if s := jc.S3; s != nil {
		setString(&cfg.S3.Bucket, s.Bucket)
		setString(&cfg.S3.Region, s.Region)
		setString(&cfg.S3.BaseEndpoint, s.BaseEndpoint)
		setString(&cfg.S3.AccessKey, s.AccessKey)
		setString(&cfg.S3.SecretKey, s.SecretKey)
		setString(&cfg.S3.Prefix, s.Prefix)
		if s.LinkExpiry != nil {
			cfg.S3.LinkExpiry = s.LinkExpiry.Duration
		}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
