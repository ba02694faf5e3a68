package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags registered on a
// command's flag set.
type Flags struct {
	address        string
	requestTimeout time.Duration
	retryCount     int
	cacheDSN       string
	locale         string
	logFile        string
	logLevel       string
	configPath     string
}

// BindFlags registers the configuration flags on fs and returns a handle that
// yields their values once fs has been parsed.
//
// Flags:
//
//	-a, --address          catalog base URL
//	    --request-timeout  outbound request timeout (e.g. "5s")
//	    --retry-count      retries for idempotent reads
//	    --cache            SQLite cache file
//	    --locale           message language (en, ko)
//	    --log-file         log file path
//	    --log-level        log level
//	-c, --config           JSON or YAML config file
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.address, "address", "a", "", "Catalog base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g. 5s, 1m)")
	fs.IntVar(&f.retryCount, "retry-count", 0, "Retries for idempotent reads")
	fs.StringVar(&f.cacheDSN, "cache", "", "SQLite cache file")
	fs.StringVar(&f.locale, "locale", "", "Message language (en, ko)")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")

	return f
}

// config converts the parsed flag values into a partial [StructuredConfig].
// Flags that were not set stay zero so that lower-priority sources can fill
// them.
func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale:   f.locale,
			LogFile:  f.logFile,
			LogLevel: f.logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    f.address,
			RequestTimeout: f.requestTimeout,
			RetryCount:     f.retryCount,
		},
		Storage: Storage{
			Cache: Cache{DSN: f.cacheDSN},
		},
		FilePath: f.configPath,
	}
}
