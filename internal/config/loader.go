package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SKYPATH_CONFIG is set
//  3. env (prefix SKYPATH_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SKYPATH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SKYPATH_ADDR, SKYPATH_DATA_PATH, ...
	// Map env keys like SKYPATH_DATA_PATH -> data_path (flat keys),
	// preserving underscores to match koanf tags on the struct.
	envProvider := env.Provider("SKYPATH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "skypath_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the process cannot serve with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DataPath == "":
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	case c.MinLayoverDomesticMin <= 0:
		return fmt.Errorf("%w: min_layover_domestic_min must be positive", ErrInvalidConfig)
	case c.MinLayoverInternationalMin <= 0:
		return fmt.Errorf("%w: min_layover_international_min must be positive", ErrInvalidConfig)
	case c.MaxLayoverMin < c.MinLayoverDomesticMin:
		return fmt.Errorf("%w: max_layover_min must not be below the domestic minimum", ErrInvalidConfig)
	}
	return nil
}
