// Package config reads the demo settings from MAYBE_EITHER_* environment
// variables and an optional config file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	prefix       = "MAYBE_EITHER"
	logLevel     = "log_level"
	logEncoding  = "log_encoding"
	tracePayload = "trace_payload"
	configFile   = "config"

	defaultLogLevel     = "info"
	defaultLogEncoding  = "console"
	defaultTracePayload = true
)

type Config struct {
	LogLevel     string
	LogEncoding  string
	TracePayload bool
}

func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	v.SetDefault(logLevel, defaultLogLevel)
	v.SetDefault(logEncoding, defaultLogEncoding)
	v.SetDefault(tracePayload, defaultTracePayload)

	if file := v.GetString(configFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", file, err)
		}
	}

	cfg := Config{
		LogLevel:     v.GetString(logLevel),
		LogEncoding:  v.GetString(logEncoding),
		TracePayload: v.GetBool(tracePayload),
	}

	switch cfg.LogEncoding {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("unsupported log encoding %q", cfg.LogEncoding)
	}

	return cfg, nil
}
