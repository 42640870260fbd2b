// Package md2site converts Markdown documents into complete, styled,
// standalone HTML pages.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2site.NewConverter()
//	page, err := conv.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Theme:    md2site.ThemeAuto,
//	    Accent:   "#3498db",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(page), 0644)
//
// For one-shot use there is a package-level Generate.
//
// # Conversion Pipeline
//
//  1. Eager color validation (ValidateColor) - generation never runs with
//     an invalid accent color
//  2. Markdown to HTML via Goldmark (GFM set, smart punctuation, emoji,
//     syntax highlighting, raw inline HTML passthrough)
//  3. Textual sanitization of the rendered HTML (Sanitize)
//  4. Title extraction (ExtractTitle) and theme/accent resolution
//  5. Assembly into one dependency-free HTML document with inline <style>
//     and, for the auto theme, an inline theme-switching <script>
//
// The sanitizer is a fixed, ordered list of literal text rewrites that
// blocks script tags, dangerous URL schemes, and a known set of inline
// event handlers while keeping GitHub-style raw HTML passthrough working.
// It is not a structural DOM sanitizer; see Sanitize for the exact
// contract and its documented limitations.
//
// # Themes
//
// Themes "light" and "dark" bake their palette into CSS custom properties.
// Theme "auto" serves the light palette and embeds a script that follows
// the viewer's system color-scheme preference live, using the AccentLight
// and AccentDark overrides when provided.
//
// Markdown supplied interactively (e.g. a CLI --inline flag) can be run
// through NormalizeEscapes first to repair escaped control sequences and
// malformed headings; file-sourced markdown is converted as-is.
package md2site
