package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate standalone styled HTML pages from markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input (exactly one):")
	fmt.Fprintln(w, "  -f, --file <path>         Markdown file to convert")
	fmt.Fprintln(w, "  -d, --dir <path>          Directory of markdown files to convert")
	fmt.Fprintln(w, "  -i, --inline <markdown>   Inline markdown content")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default \"dist\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --font-size <s>       CSS font size, e.g. 16px or 1.2em")
	fmt.Fprintln(w, "  -F, --font-family <s>     CSS font family")
	fmt.Fprintln(w, "      --theme <s>           Color theme: light, dark, auto")
	fmt.Fprintln(w, "      --accent <s>          Accent color (hex or named)")
	fmt.Fprintln(w, "      --accent-light <s>    Light-mode accent for auto theme")
	fmt.Fprintln(w, "      --accent-dark <s>     Dark-mode accent for auto theme")
	fmt.Fprintln(w, "      --favicon <s>         Emoji used as the page favicon")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Execution:")
	fmt.Fprintln(w, "  -c, --config <path>       Config file path (md2site.json/.yaml/.yml)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directory mode (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables mirror the flags with an MD2SITE_ prefix,")
	fmt.Fprintln(w, "e.g. MD2SITE_THEME, MD2SITE_ACCENT, MD2SITE_OUTPUT_DIR.")
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}
