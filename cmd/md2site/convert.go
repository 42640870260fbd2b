package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified: use --file, --dir, or --inline")
	ErrMultipleInputs     = errors.New("only one of --file, --dir, --inline may be used")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// DefaultOutputDir receives generated pages when no output is configured.
const DefaultOutputDir = "dist"

// siteConverter is the interface for the generation service.
type siteConverter interface {
	Convert(ctx context.Context, input md2site.Input) (string, error)
}

// Compile-time interface implementation check.
var _ siteConverter = (*md2site.Converter)(nil)

// settings holds the fully resolved generation parameters after applying
// precedence: CLI flags > environment > config file > defaults.
type settings struct {
	FontSize    string
	FontFamily  string
	Theme       string
	Accent      string
	AccentLight string
	AccentDark  string
	Favicon     string
	Output      string
	Workers     int

	customFont bool // a font was set explicitly, warn about availability
}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run orchestrates the generation process.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if err := validateInputMode(flags); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)

	envCfg, err := loadEnvConfig()
	if err != nil {
		return err
	}

	fileCfg, err := loadFileConfig(flags, envCfg, env)
	if err != nil {
		return err
	}

	s := resolveSettings(flags, envCfg, fileCfg)

	// Validate colors before touching the filesystem, so a batch never
	// starts with settings that every file would reject.
	if err := validateAccents(s); err != nil {
		return err
	}

	if s.customFont && !flags.quiet {
		fmt.Fprintln(env.Stderr, "Warning: make sure the requested font is installed on the target system")
	}

	if err := os.MkdirAll(s.Output, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	switch {
	case flags.dir != "":
		return runDir(ctx, flags, s, env)
	case flags.file != "":
		return runFile(ctx, flags, s, env)
	default:
		return runInline(ctx, flags, s, env)
	}
}

// validateInputMode enforces exactly one input source.
func validateInputMode(flags *cliFlags) error {
	set := 0
	for _, v := range []string{flags.file, flags.dir, flags.inline} {
		if v != "" {
			set++
		}
	}
	switch set {
	case 0:
		return ErrNoInput
	case 1:
		return nil
	default:
		return ErrMultipleInputs
	}
}

// validateWorkers rejects negative worker counts. Zero means auto.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, n)
	}
	return nil
}

// loadFileConfig loads the config file named by flag or environment, or
// discovers one in the standard locations. An explicitly named config that
// fails to load is an error; a discovered config that is missing or broken
// only produces a warning and the run proceeds on defaults.
func loadFileConfig(flags *cliFlags, envCfg *envConfig, env *Environment) (*config.Config, error) {
	path := flags.config
	if path == "" {
		path = envCfg.ConfigPath
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Discover()
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			fmt.Fprintf(env.Stderr, "Warning: %v\n", err)
		}
		return &config.Config{}, nil
	}
	return cfg, nil
}

// resolveSettings applies precedence across the four sources.
func resolveSettings(flags *cliFlags, envCfg *envConfig, fileCfg *config.Config) settings {
	pick := func(flagVal, envVal, cfgVal, def string) string {
		switch {
		case flagVal != "":
			return flagVal
		case envVal != "":
			return envVal
		case cfgVal != "":
			return cfgVal
		default:
			return def
		}
	}

	s := settings{
		FontSize:    pick(flags.fontSize, envCfg.FontSize, fileCfg.FontSize, md2site.DefaultFontSize),
		FontFamily:  pick(flags.fontFamily, envCfg.FontFamily, fileCfg.FontFamily, md2site.DefaultFontFamily),
		Theme:       pick(flags.theme, envCfg.Theme, fileCfg.Theme, md2site.DefaultTheme),
		Accent:      pick(flags.accent, envCfg.Accent, fileCfg.Accent, md2site.DefaultAccent),
		AccentLight: pick(flags.accentLight, envCfg.AccentLight, fileCfg.AccentLight, ""),
		AccentDark:  pick(flags.accentDark, envCfg.AccentDark, fileCfg.AccentDark, ""),
		Favicon:     pick(flags.favicon, envCfg.Favicon, fileCfg.Favicon, ""),
		Output:      pick(flags.output, envCfg.OutputDir, fileCfg.Output, DefaultOutputDir),
	}

	s.customFont = flags.fontFamily != "" || envCfg.FontFamily != "" || fileCfg.FontFamily != ""

	s.Workers = flags.workers
	if s.Workers == 0 {
		s.Workers = envCfg.Workers
	}

	return s
}

// validateAccents checks all configured accent colors.
func validateAccents(s settings) error {
	if err := md2site.ValidateColor(s.Accent); err != nil {
		return err
	}
	if s.AccentLight != "" {
		if err := md2site.ValidateColor(s.AccentLight); err != nil {
			return err
		}
	}
	if s.AccentDark != "" {
		if err := md2site.ValidateColor(s.AccentDark); err != nil {
			return err
		}
	}
	return nil
}

// inputFor builds a generation input from resolved settings.
func inputFor(s settings, markdown string) md2site.Input {
	return md2site.Input{
		Markdown:    markdown,
		FontSize:    s.FontSize,
		FontFamily:  s.FontFamily,
		Theme:       s.Theme,
		Accent:      s.Accent,
		AccentLight: s.AccentLight,
		AccentDark:  s.AccentDark,
		Favicon:     s.Favicon,
	}
}

// runFile converts a single markdown file to <output>/index.html.
func runFile(ctx context.Context, flags *cliFlags, s settings, env *Environment) error {
	if !fileutil.IsMarkdownFile(flags.file) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(flags.file))
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Reading markdown from file: %s\n", flags.file)
	}

	content, err := os.ReadFile(flags.file) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	return generateTo(ctx, s, string(content), filepath.Join(s.Output, "index.html"), flags.quiet, env)
}

// runInline converts inline markdown to <output>/index.html. Escaped
// newline sequences are normalized first, including the PowerShell
// backtick-n form, so multi-line content survives shell quoting.
func runInline(ctx context.Context, flags *cliFlags, s settings, env *Environment) error {
	if !flags.quiet {
		fmt.Fprintln(env.Stdout, "Using inline markdown content")
	}

	markdown := md2site.NormalizeEscapes(flags.inline)
	markdown = strings.ReplaceAll(markdown, "`n", "\n")

	return generateTo(ctx, s, markdown, filepath.Join(s.Output, "index.html"), flags.quiet, env)
}

// generateTo runs a single conversion and writes the page.
func generateTo(ctx context.Context, s settings, markdown, outPath string, quiet bool, env *Environment) error {
	converter := md2site.NewConverter()

	page, err := converter.Convert(ctx, inputFor(s, markdown))
	if err != nil {
		return err
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(outPath, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Generated: %s\n", outPath)
	}
	return nil
}

// runDir converts every markdown file directly under the directory. Files
// are processed concurrently; per-file failures are reported and counted
// but do not stop the batch.
func runDir(ctx context.Context, flags *cliFlags, s settings, env *Environment) error {
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Processing markdown files in directory: %s\n", flags.dir)
	}

	files, err := discoverFiles(flags.dir, s.Output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "No markdown files found in directory %q\n", flags.dir)
		}
		return nil
	}

	results := convertBatch(ctx, s, files)

	failed := printResults(results, flags.quiet, flags.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// discoverFiles lists markdown files directly under dir, non-recursive,
// each mapped to <output>/<stem>.html.
func discoverFiles(dir, outputDir string) ([]FileToConvert, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []FileToConvert
	for _, entry := range entries {
		if entry.IsDir() || !fileutil.IsMarkdownFile(entry.Name()) {
			continue
		}
		files = append(files, FileToConvert{
			InputPath:  filepath.Join(dir, entry.Name()),
			OutputPath: filepath.Join(outputDir, fileutil.OutputName(entry.Name())),
		})
	}
	return files, nil
}

// resolveConcurrency determines the worker count for a batch.
// Priority: explicit setting > GOMAXPROCS-based calculation, capped at 8.
func resolveConcurrency(requested, jobs int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
		if n > 8 {
			n = 8
		}
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}

// convertBatch processes files concurrently with one converter per worker.
func convertBatch(ctx context.Context, s settings, files []FileToConvert) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := resolveConcurrency(s.Workers, len(files))
	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			converter := md2site.NewConverter()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertOne(ctx, converter, s, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertOne processes a single file and returns the result.
func convertOne(ctx context.Context, converter siteConverter, s settings, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	page, err := converter.Convert(ctx, inputFor(s, string(content)))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(page), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	result.Duration = time.Since(start)
	return result
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Generated: %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}
