package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring a config file.
type envConfig struct {
	ConfigPath  string `env:"MD2SITE_CONFIG"`
	OutputDir   string `env:"MD2SITE_OUTPUT_DIR"`
	FontSize    string `env:"MD2SITE_FONT_SIZE"`
	FontFamily  string `env:"MD2SITE_FONT_FAMILY"`
	Theme       string `env:"MD2SITE_THEME"`
	Accent      string `env:"MD2SITE_ACCENT"`
	AccentLight string `env:"MD2SITE_ACCENT_LIGHT"`
	AccentDark  string `env:"MD2SITE_ACCENT_DARK"`
	Favicon     string `env:"MD2SITE_FAVICON"`
	Workers     int    `env:"MD2SITE_WORKERS"`
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":       true,
	"MD2SITE_OUTPUT_DIR":   true,
	"MD2SITE_FONT_SIZE":    true,
	"MD2SITE_FONT_FAMILY":  true,
	"MD2SITE_THEME":        true,
	"MD2SITE_ACCENT":       true,
	"MD2SITE_ACCENT_LIGHT": true,
	"MD2SITE_ACCENT_DARK":  true,
	"MD2SITE_FAVICON":      true,
	"MD2SITE_WORKERS":      true,
}

// loadEnvConfig reads configuration from MD2SITE_* environment variables.
func loadEnvConfig() (*envConfig, error) {
	cfg, err := env.ParseAs[envConfig]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables.
// Helps catch typos like MD2SITE_TEME instead of MD2SITE_THEME.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "MD2SITE_") {
			name := strings.SplitN(kv, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}
