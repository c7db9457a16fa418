// Package config loads runtime configuration for the dropshare client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-e string          upload endpoint of the sharing service
//	-b string          backend: "http" (sharing service) or "s3"
//	-m int             maximum total selection size in bytes
//	-d duration        pause between a completed bar and the success view
//	-t duration        per-request timeout, 0 keeps the transport default
//	-l string          log level: debug, info, warn, error
//	-s3-bucket string  bucket for the s3 backend
//	-s3-region string  region for the s3 backend
//	-s3-endpoint string
//	                   S3-compatible base endpoint (MinIO etc.)
//	-s3-access-key string, -s3-secret-key string
//	                   static credentials; the default chain is used when empty
//	-s3-prefix string  object key prefix
//	-s3-expiry duration
//	                   lifetime of presigned share links
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "500ms" or
// integer nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "endpoint": "https://example.org/upload",
//	  "backend": "http",
//	  "max_selection_bytes": 10485760,
//	  "success_delay": "500ms",
//	  "request_timeout": "0s",
//	  "log_level": "warn",
//	  "s3": {
//	    "bucket": "shares",
//	    "region": "us-east-1",
//	    "base_endpoint": "http://127.0.0.1:9000",
//	    "access_key": "minio",
//	    "secret_key": "minio123",
//	    "prefix": "dropshare",
//	    "link_expiry": "24h"
//	  }
//	}
//
// Note: This package does not read environment variables directly; the S3
// backend still falls back to the AWS default credential chain.
package config
