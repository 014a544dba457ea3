// Package config holds the tool's runtime options. There is no config
// file: a device-id reset tool should not carry state of its own, so
// everything comes from defaults and WSRESET_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Storage StorageConfig
	Log     LogConfig
	NoColor bool
}

// StorageConfig controls which file gets reset.
type StorageConfig struct {
	// Path overrides the platform-derived storage file location.
	// Empty means resolve per OS.
	Path string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the config from defaults plus environment overrides.
func Load() Config {
	cfg := defaults()
	applyEnvOverrides(&cfg)
	return cfg
}

type keyType int

const (
	kString keyType = iota
	kBool
)

type keySpec struct {
	key   string
	typ   keyType
	env   string
	apply func(cfg *Config, v any)
}

var specs = []keySpec{
	{
		key: "storage.path", typ: kString, env: "WSRESET_STORAGE_PATH",
		apply: func(cfg *Config, v any) { cfg.Storage.Path = v.(string) },
	},
	{
		key: "log.level", typ: kString, env: "WSRESET_LOG_LEVEL",
		apply: func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
	},
	{
		key: "no_color", typ: kBool, env: "WSRESET_NO_COLOR",
		apply: func(cfg *Config, v any) { cfg.NoColor = v.(bool) },
	},
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kBool:
			if b, err := strconv.ParseBool(raw); err == nil {
				s.apply(cfg, b)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse bool from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		}
	}
}
