package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/dropshare/internal/flagx"
)

// configFileFlags select the JSON file; see flagx.ConfigPath.
var configFileFlags = []string{"-c", "-config"}

// Flags lists every flag that takes a value, the config file flags
// included. Callers use it to tell flag values from positional arguments.
var Flags = append(append([]string{}, configFileFlags...), flagNames(newFlagSet(&Config{}))...)

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("dropshare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Endpoint, "e", cfg.Endpoint, "upload endpoint of the sharing service")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "upload backend: http or s3")
	fs.Int64Var(&cfg.MaxSelectionBytes, "m", cfg.MaxSelectionBytes, "maximum total selection size in bytes")
	fs.DurationVar(&cfg.SuccessDelay, "d", cfg.SuccessDelay, "delay before the success view")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout (0 = transport default)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	fs.StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "s3 bucket")
	fs.StringVar(&cfg.S3.Region, "s3-region", cfg.S3.Region, "s3 region")
	fs.StringVar(&cfg.S3.BaseEndpoint, "s3-endpoint", cfg.S3.BaseEndpoint, "S3-compatible base endpoint")
	fs.StringVar(&cfg.S3.AccessKey, "s3-access-key", cfg.S3.AccessKey, "s3 access key")
	fs.StringVar(&cfg.S3.SecretKey, "s3-secret-key", cfg.S3.SecretKey, "s3 secret key")
	fs.StringVar(&cfg.S3.Prefix, "s3-prefix", cfg.S3.Prefix, "s3 object key prefix")
	fs.DurationVar(&cfg.S3.LinkExpiry, "s3-expiry", cfg.S3.LinkExpiry, "share link lifetime")

	return fs
}

func flagNames(fs *flag.FlagSet) []string {
	var names []string
	fs.VisitAll(func(f *flag.Flag) {
		names = append(names, "-"+f.Name)
	})
	return names
}

// parseFlags populates Config fields from command-line flags. args is
// filtered with flagx.FilterArgs first so that the config file flags and
// positional paths do not interfere.
func parseFlags(cfg *Config, args []string) error {
	fs := newFlagSet(cfg)
	return fs.Parse(flagx.FilterArgs(args, flagNames(fs)))
}
