package md2site

// Theme constants.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Defaults applied when the corresponding Input field is empty.
const (
	DefaultFontSize   = "16px"
	DefaultFontFamily = "sans-serif"
	DefaultTheme      = ThemeAuto
	DefaultAccent     = "#3498db"
)

// DefaultTitle is used when the markdown has no top-level heading.
const DefaultTitle = "Static Site"

// Input contains generation parameters for a single document.
type Input struct {
	Markdown    string // Markdown content
	FontSize    string // CSS font-size value, e.g. "16px" or "1.2em"
	FontFamily  string // CSS font-family value
	Theme       string // "light", "dark", or "auto"
	Accent      string // color for links, h1 underline, and h3 headings
	AccentLight string // auto theme: light-mode accent (defaults to Accent)
	AccentDark  string // auto theme: dark-mode accent (defaults to Accent)
	Favicon     string // emoji rendered as an inline-SVG favicon (optional)
}

// withDefaults returns a copy of in with empty fields replaced by defaults.
func (in Input) withDefaults() Input {
	if in.FontSize == "" {
		in.FontSize = DefaultFontSize
	}
	if in.FontFamily == "" {
		in.FontFamily = DefaultFontFamily
	}
	if in.Theme == "" {
		in.Theme = DefaultTheme
	}
	if in.Accent == "" {
		in.Accent = DefaultAccent
	}
	return in
}

// Option configures a Converter.
type Option func(*Converter)

// WithHighlightStyle sets the chroma styles used to build the code-block
// stylesheet for light and dark themes. Unknown names fall back to the
// chroma default style.
func WithHighlightStyle(light, dark string) Option {
	return func(c *Converter) {
		c.highlightLight = light
		c.highlightDark = dark
	}
}
