package md2site

import (
	"bytes"
	"fmt"
	"net/url"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// palette holds the seven theme colors resolved into CSS custom properties.
type palette struct {
	Background           string
	Text                 string
	Header               string
	CodeBackground       string
	CodeText             string
	BlockquoteBackground string
	Border               string
}

var (
	lightPalette = palette{
		Background:           "#f4f4f4",
		Text:                 "#333",
		Header:               "#2c3e50",
		CodeBackground:       "#e7e7e7",
		CodeText:             "#333",
		BlockquoteBackground: "#f9f9f9",
		Border:               "#e0e0e0",
	}
	darkPalette = palette{
		Background:           "#1a1a1a",
		Text:                 "#e0e0e0",
		Header:               "#ffffff",
		CodeBackground:       "#2d2d2d",
		CodeText:             "#cccccc",
		BlockquoteBackground: "#2a2a2a",
		Border:               "#404040",
	}
)

// paletteFor maps a theme keyword to its palette. Unrecognized themes fall
// back to light. "auto" also serves light as the server-rendered default;
// the theme script swaps the variables client-side.
func paletteFor(theme string) palette {
	if theme == ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// buildCSSVariables renders the eight custom-property assignments for the
// :root block: the seven palette colors plus the accent as --link-color.
func buildCSSVariables(p palette, accent string) string {
	return fmt.Sprintf(
		"--bg-color: %s; --text-color: %s; --header-color: %s; --code-bg: %s; --code-color: %s; --link-color: %s; --blockquote-bg: %s; --border-color: %s;",
		p.Background, p.Text, p.Header, p.CodeBackground, p.CodeText, accent, p.BlockquoteBackground, p.Border)
}

// themeScriptTemplate is the client-side switcher embedded for the auto
// theme. The first %s is the dark-mode accent, the second the light-mode
// accent; the palette values mirror lightPalette and darkPalette.
const themeScriptTemplate = `<script>
        function applyTheme(theme) {
            const root = document.documentElement;
            if (theme === 'dark') {
                root.style.setProperty('--bg-color', '#1a1a1a');
                root.style.setProperty('--text-color', '#e0e0e0');
                root.style.setProperty('--header-color', '#ffffff');
                root.style.setProperty('--code-bg', '#2d2d2d');
                root.style.setProperty('--code-color', '#cccccc');
                root.style.setProperty('--link-color', '%s');
                root.style.setProperty('--blockquote-bg', '#2a2a2a');
                root.style.setProperty('--border-color', '#404040');
            } else {
                root.style.setProperty('--bg-color', '#f4f4f4');
                root.style.setProperty('--text-color', '#333');
                root.style.setProperty('--header-color', '#2c3e50');
                root.style.setProperty('--code-bg', '#e7e7e7');
                root.style.setProperty('--code-color', '#333');
                root.style.setProperty('--link-color', '%s');
                root.style.setProperty('--blockquote-bg', '#f9f9f9');
                root.style.setProperty('--border-color', '#e0e0e0');
            }
        }

        // Detect system theme
        const prefersDark = window.matchMedia('(prefers-color-scheme: dark)').matches;
        applyTheme(prefersDark ? 'dark' : 'light');

        // Listen for changes
        window.matchMedia('(prefers-color-scheme: dark)').addEventListener('change', (e) => {
            applyTheme(e.matches ? 'dark' : 'light');
        });
        </script>`

// buildThemeScript returns the theme-switching script for the auto theme:
// it applies the palette matching the system prefers-color-scheme at load
// and re-applies on every subsequent change event for the life of the view.
// For any other theme the script is empty.
func buildThemeScript(theme, lightAccent, darkAccent string) string {
	if theme != ThemeAuto {
		return ""
	}
	return fmt.Sprintf(themeScriptTemplate, darkAccent, lightAccent)
}

// buildFaviconLink builds a <link rel="icon"> whose href is an inline SVG
// data URI carrying the percent-encoded emoji. Empty emoji yields no link.
func buildFaviconLink(emojiChar string) string {
	if emojiChar == "" {
		return ""
	}
	return fmt.Sprintf(`<link rel="icon" href="data:image/svg+xml,<svg xmlns=%%22http://www.w3.org/2000/svg%%22 viewBox=%%220 0 100 100%%22><text y=%%22.9em%%22 font-size=%%2290%%22>%s</text></svg>">`,
		url.PathEscape(emojiChar))
}

// buildHighlightCSS renders the chroma stylesheet matching the class-based
// output of the highlighting extension. Unknown style names fall back to
// the chroma default style.
func buildHighlightCSS(styleName string) string {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return ""
	}
	return buf.String()
}
