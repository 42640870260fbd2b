package md2site

// Notes:
// - paletteFor: theme keyword to palette mapping, including fallback
// - buildCSSVariables: the eight custom-property assignments
// - buildThemeScript: auto-only switching script with per-mode accents
// - buildFaviconLink: percent-encoded inline SVG data URI
// - buildHighlightCSS: chroma stylesheet generation

import (
	"strings"
	"testing"
)

func TestPaletteFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme string
		want  palette
	}{
		{theme: ThemeLight, want: lightPalette},
		{theme: ThemeDark, want: darkPalette},
		{theme: ThemeAuto, want: lightPalette}, // server-rendered default
		{theme: "solarized", want: lightPalette}, // unrecognized falls back
		{theme: "", want: lightPalette},
	}

	for _, tt := range tests {
		t.Run("theme "+tt.theme, func(t *testing.T) {
			t.Parallel()

			if got := paletteFor(tt.theme); got != tt.want {
				t.Errorf("paletteFor(%q) = %+v, want %+v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestBuildCSSVariables(t *testing.T) {
	t.Parallel()

	got := buildCSSVariables(lightPalette, "#3498db")

	wants := []string{
		"--bg-color: #f4f4f4;",
		"--text-color: #333;",
		"--header-color: #2c3e50;",
		"--code-bg: #e7e7e7;",
		"--code-color: #333;",
		"--link-color: #3498db;",
		"--blockquote-bg: #f9f9f9;",
		"--border-color: #e0e0e0;",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("buildCSSVariables missing %q in %q", want, got)
		}
	}
}

func TestBuildThemeScript(t *testing.T) {
	t.Parallel()

	t.Run("auto theme embeds switcher with per-mode accents", func(t *testing.T) {
		t.Parallel()

		got := buildThemeScript(ThemeAuto, "#111111", "#222222")

		wants := []string{
			"function applyTheme(theme)",
			"prefers-color-scheme: dark",
			"addEventListener('change'",
			"'--link-color', '#111111'", // light branch
			"'--link-color', '#222222'", // dark branch
			"'--bg-color', '#1a1a1a'",
			"'--bg-color', '#f4f4f4'",
		}
		for _, want := range wants {
			if !strings.Contains(got, want) {
				t.Errorf("buildThemeScript missing %q", want)
			}
		}
	})

	t.Run("non-auto themes produce no script", func(t *testing.T) {
		t.Parallel()

		for _, theme := range []string{ThemeLight, ThemeDark, "custom", ""} {
			if got := buildThemeScript(theme, "#111", "#222"); got != "" {
				t.Errorf("buildThemeScript(%q) = %q, want empty", theme, got)
			}
		}
	})
}

func TestBuildFaviconLink(t *testing.T) {
	t.Parallel()

	t.Run("empty emoji yields no link", func(t *testing.T) {
		t.Parallel()

		if got := buildFaviconLink(""); got != "" {
			t.Errorf("buildFaviconLink(\"\") = %q, want empty", got)
		}
	})

	t.Run("emoji is percent-encoded into an SVG data URI", func(t *testing.T) {
		t.Parallel()

		got := buildFaviconLink("🚀")

		if !strings.Contains(got, `<link rel="icon" href="data:image/svg+xml,`) {
			t.Errorf("buildFaviconLink missing data URI prefix: %q", got)
		}
		if strings.Contains(got, "🚀") {
			t.Errorf("buildFaviconLink left raw emoji unencoded: %q", got)
		}
		if !strings.Contains(got, "%F0%9F%9A%80") {
			t.Errorf("buildFaviconLink missing percent-encoded emoji: %q", got)
		}
	})
}

func TestBuildHighlightCSS(t *testing.T) {
	t.Parallel()

	t.Run("known style produces chroma rules", func(t *testing.T) {
		t.Parallel()

		got := buildHighlightCSS(defaultHighlightLight)
		if !strings.Contains(got, ".chroma") {
			t.Errorf("buildHighlightCSS(%q) missing .chroma selector", defaultHighlightLight)
		}
	})

	t.Run("unknown style falls back instead of failing", func(t *testing.T) {
		t.Parallel()

		got := buildHighlightCSS("no-such-style")
		if !strings.Contains(got, ".chroma") {
			t.Errorf("buildHighlightCSS fallback missing .chroma selector: %q", got)
		}
	})
}
