package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2site command.
type cliFlags struct {
	// Input modes, mutually exclusive
	file   string
	dir    string
	inline string

	// Output
	output string

	// Styling
	fontSize    string
	fontFamily  string
	theme       string
	accent      string
	accentLight string
	accentDark  string
	favicon     string

	// Execution
	config  string
	workers int
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses command-line flags. args includes the program name.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	f := &cliFlags{}

	// Input modes
	fs.StringVarP(&f.file, "file", "f", "", "markdown file to convert")
	fs.StringVarP(&f.dir, "dir", "d", "", "directory of markdown files to convert")
	fs.StringVarP(&f.inline, "inline", "i", "", "inline markdown content")

	// Output
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default \"dist\")")

	// Styling
	fs.StringVar(&f.fontSize, "font-size", "", "CSS font size, e.g. 16px or 1.2em")
	fs.StringVarP(&f.fontFamily, "font-family", "F", "", "CSS font family")
	fs.StringVar(&f.theme, "theme", "", "color theme: light, dark, auto")
	fs.StringVar(&f.accent, "accent", "", "accent color (hex or named)")
	fs.StringVar(&f.accentLight, "accent-light", "", "light-mode accent for auto theme")
	fs.StringVar(&f.accentDark, "accent-dark", "", "dark-mode accent for auto theme")
	fs.StringVar(&f.favicon, "favicon", "", "emoji used as the page favicon")

	// Execution
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory mode (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return f, nil
}
