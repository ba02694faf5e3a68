package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] with the key names used in config
// files. The same keys are used for JSON and YAML.
type fileConfig struct {
	App struct {
		Locale   string `json:"locale" yaml:"locale"`
		LogFile  string `json:"log_file" yaml:"log_file"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RetryCount     int      `json:"retry_count" yaml:"retry_count"`
	} `json:"adapter" yaml:"adapter"`

	Storage struct {
		Cache struct {
			DSN    string   `json:"dsn" yaml:"dsn"`
			MaxAge Duration `json:"max_age" yaml:"max_age"`
		} `json:"cache" yaml:"cache"`
	} `json:"storage" yaml:"storage"`

	Workers struct {
		CachePruneInterval Duration `json:"cache_prune_interval" yaml:"cache_prune_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return &StructuredConfig{
		App: App{
			Locale:   fc.App.Locale,
			LogFile:  fc.App.LogFile,
			LogLevel: fc.App.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			RetryCount:     fc.Adapter.RetryCount,
		},
		Storage: Storage{
			Cache: Cache{
				DSN:    fc.Storage.Cache.DSN,
				MaxAge: time.Duration(fc.Storage.Cache.MaxAge),
			},
		},
		Workers: Workers{
			CachePruneInterval: time.Duration(fc.Workers.CachePruneInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

// MarshalJSON implements [json.Marshaler].
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
