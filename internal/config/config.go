// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Layer optional file and environment overrides in Load.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/skypath/skypath/internal/domain/layover"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath points at the flights dataset JSON file loaded at startup.
	DataPath string `koanf:"data_path"`

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// MinLayoverDomesticMin is the minimum same-country connection time.
	MinLayoverDomesticMin int `koanf:"min_layover_domestic_min"`

	// MinLayoverInternationalMin is the minimum cross-country connection time.
	MinLayoverInternationalMin int `koanf:"min_layover_international_min"`

	// MaxLayoverMin caps any connection time.
	MaxLayoverMin int `koanf:"max_layover_min"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8080",
		DataPath: "/data/flights.json",
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		},
		MinLayoverDomesticMin:      layover.DefaultDomesticMinimum,
		MinLayoverInternationalMin: layover.DefaultInternationalMinimum,
		MaxLayoverMin:              layover.DefaultMaximum,
	}
}
