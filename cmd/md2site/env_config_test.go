package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoadEnvConfig(t *testing.T) {
	// Setenv-based, cannot run in parallel.

	t.Run("reads all known variables", func(t *testing.T) {
		t.Setenv("MD2SITE_CONFIG", "custom.yaml")
		t.Setenv("MD2SITE_OUTPUT_DIR", "public")
		t.Setenv("MD2SITE_FONT_SIZE", "18px")
		t.Setenv("MD2SITE_FONT_FAMILY", "serif")
		t.Setenv("MD2SITE_THEME", "dark")
		t.Setenv("MD2SITE_ACCENT", "#ff0000")
		t.Setenv("MD2SITE_ACCENT_LIGHT", "#111111")
		t.Setenv("MD2SITE_ACCENT_DARK", "#222222")
		t.Setenv("MD2SITE_FAVICON", "🚀")
		t.Setenv("MD2SITE_WORKERS", "4")

		cfg, err := loadEnvConfig()
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}

		if cfg.ConfigPath != "custom.yaml" || cfg.OutputDir != "public" {
			t.Errorf("paths = %q/%q", cfg.ConfigPath, cfg.OutputDir)
		}
		if cfg.FontSize != "18px" || cfg.FontFamily != "serif" || cfg.Theme != "dark" {
			t.Errorf("style = %q/%q/%q", cfg.FontSize, cfg.FontFamily, cfg.Theme)
		}
		if cfg.Accent != "#ff0000" || cfg.AccentLight != "#111111" || cfg.AccentDark != "#222222" {
			t.Errorf("accents = %q/%q/%q", cfg.Accent, cfg.AccentLight, cfg.AccentDark)
		}
		if cfg.Favicon != "🚀" {
			t.Errorf("favicon = %q", cfg.Favicon)
		}
		if cfg.Workers != 4 {
			t.Errorf("workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("unset variables leave zero values", func(t *testing.T) {
		for name := range knownEnvVars {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}

		cfg, err := loadEnvConfig()
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}
		if cfg.Theme != "" || cfg.Workers != 0 {
			t.Errorf("cfg = %+v, want zero values", cfg)
		}
	})

	t.Run("non-numeric workers is an error", func(t *testing.T) {
		t.Setenv("MD2SITE_WORKERS", "many")

		if _, err := loadEnvConfig(); err == nil {
			t.Error("loadEnvConfig() error = nil, want parse error")
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	// Setenv-based, cannot run in parallel.

	t.Setenv("MD2SITE_TEME", "dark") // typo of MD2SITE_THEME
	t.Setenv("MD2SITE_ACCENT", "#ff0000")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "MD2SITE_TEME") {
		t.Errorf("warning output = %q, want mention of MD2SITE_TEME", out)
	}
	if strings.Contains(out, "MD2SITE_ACCENT") {
		t.Errorf("warning output = %q, known variable should not be flagged", out)
	}
}
