package md2site

import (
	"context"
	"fmt"
)

// Compile-time interface implementation check.
var _ htmlConverter = (*goldmarkConverter)(nil)

// Default chroma styles for code-block highlighting.
const (
	defaultHighlightLight = "github"
	defaultHighlightDark  = "github-dark"
)

// Converter turns markdown documents into standalone styled HTML pages.
// It holds no external resources, is cheap to create, and is safe for
// concurrent use; every conversion is a pure function of its Input.
type Converter struct {
	htmlConverter  htmlConverter
	highlightLight string
	highlightDark  string
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithHighlightStyle).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		htmlConverter:  newGoldmarkConverter(),
		highlightLight: defaultHighlightLight,
		highlightDark:  defaultHighlightDark,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Convert runs the full pipeline: color validation, markdown rendering,
// sanitization, title extraction, theme resolution, document assembly.
// Colors are validated before any generation starts, so a generated page
// never carries an invalid color; rendering and sanitization themselves
// never reject input.
func (c *Converter) Convert(ctx context.Context, input Input) (string, error) {
	input = input.withDefaults()

	if err := validateColors(input); err != nil {
		return "", err
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, input.Markdown)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	body := Sanitize(fragment)

	title, ok := ExtractTitle(input.Markdown)
	if !ok {
		title = DefaultTitle
	}

	// Per-mode accents only matter for the auto theme script; each defaults
	// to the primary accent when absent.
	lightAccent := input.AccentLight
	if lightAccent == "" {
		lightAccent = input.Accent
	}
	darkAccent := input.AccentDark
	if darkAccent == "" {
		darkAccent = input.Accent
	}

	highlightStyle := c.highlightLight
	if input.Theme == ThemeDark {
		highlightStyle = c.highlightDark
	}

	return buildDocument(documentData{
		Title:        title,
		FaviconLink:  buildFaviconLink(input.Favicon),
		CSSVariables: buildCSSVariables(paletteFor(input.Theme), input.Accent),
		FontFamily:   input.FontFamily,
		FontSize:     input.FontSize,
		HighlightCSS: buildHighlightCSS(highlightStyle),
		ThemeScript:  buildThemeScript(input.Theme, lightAccent, darkAccent),
		Body:         body,
	})
}

// validateColors checks all accent colors eagerly so generation never runs
// with an invalid color. AccentLight and AccentDark are optional and only
// validated when set.
func validateColors(input Input) error {
	if err := ValidateColor(input.Accent); err != nil {
		return err
	}
	if input.AccentLight != "" {
		if err := ValidateColor(input.AccentLight); err != nil {
			return err
		}
	}
	if input.AccentDark != "" {
		if err := ValidateColor(input.AccentDark); err != nil {
			return err
		}
	}
	return nil
}

// Generate creates a default Converter and converts a single input.
// Convenient for one-shot use; for batches, create one Converter and reuse it.
func Generate(ctx context.Context, input Input) (string, error) {
	return NewConverter().Convert(ctx, input)
}
