package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/schuko/tracing"
)

// Color modes of a configuration.
const (
	ColorAuto   = "auto"   // highlight if output is a terminal
	ColorAlways = "always" // always highlight
	ColorNever  = "never"  // never highlight
)

// EnvPrefix is the prefix of environment variables overriding settings,
// e.g. GTFO_COLOR=never.
const EnvPrefix = "GTFO_"

// TraceKeys are the tracer selectors a configuration sets the level for.
var TraceKeys = []string{"gtfo.ast", "gtfo.render", "gtfo.termr"}

// ErrBadConfig is returned for settings with invalid values.
var ErrBadConfig = errors.New("invalid configuration")

// Config holds persistent rendering settings.
type Config struct {
	Color string `koanf:"color"` // one of ColorAuto, ColorAlways, ColorNever
	Trace string `koanf:"trace"` // trace level, e.g. "Debug" or "Error"
}

// LoadConfig loads settings from defaults, an optional YAML file and
// environment variables, in increasing priority. path may be empty.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"color": ColorAuto,
		"trace": "Error",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("config: color=%s, trace=%s", cfg.Color, cfg.Trace)
	return cfg, nil
}

func (c *Config) validate() error {
	c.Color = strings.ToLower(c.Color)
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("%w: color mode %q", ErrBadConfig, c.Color)
}

// Options returns the render options for a configuration. In auto mode no
// option is set, leaving the decision to Fprint.
func (c *Config) Options() []Option {
	switch c.Color {
	case ColorAlways:
		return []Option{WithColors(NewColors())}
	case ColorNever:
		return []Option{WithColors(nil)}
	}
	return nil
}

// ApplyTracing sets the trace level of all gtfo tracers.
func (c *Config) ApplyTracing() {
	if c.Trace == "" {
		return
	}
	level := tracing.TraceLevelFromString(c.Trace)
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
