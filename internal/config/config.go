// Package config loads site generation settings from JSON or YAML files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// MaxConfigSize limits config input to prevent memory exhaustion (1MB).
var MaxConfigSize = 1 << 20

// Config holds file-sourced generation settings. Zero values mean "not set";
// the CLI resolves precedence against flags, environment, and defaults.
type Config struct {
	FontSize    string `json:"font_size" yaml:"font_size"`
	FontFamily  string `json:"font" yaml:"font"`
	Theme       string `json:"theme" yaml:"theme"`
	Accent      string `json:"accent" yaml:"accent"`
	AccentLight string `json:"accent_light" yaml:"accent_light"`
	AccentDark  string `json:"accent_dark" yaml:"accent_dark"`
	Output      string `json:"output" yaml:"output"`
	Favicon     string `json:"favicon" yaml:"favicon"`
}

// discoveryNames are the file names Discover probes, in priority order.
var discoveryNames = []string{"md2site.json", "md2site.yaml", "md2site.yml"}

// Load reads and parses a config file. The format follows the extension:
// .json is parsed as JSON, everything else as YAML with unknown fields
// rejected. Missing files map to ErrConfigNotFound.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, MaxConfigSize)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
		}
	} else {
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
		}
	}

	return &cfg, nil
}

// Discover searches the standard locations for a config file and loads the
// first one found. Locations in order: current directory, then the user
// config directory under md2site/. Returns ErrConfigNotFound when no
// candidate exists; callers treat that as "run with defaults".
func Discover() (*Config, error) {
	triedPaths := make([]string, 0, len(discoveryNames)*2)

	for _, name := range discoveryNames {
		if fileutil.FileExists(name) {
			return Load(name)
		}
		triedPaths = append(triedPaths, name)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, name := range discoveryNames {
			path := filepath.Join(userConfigDir, "md2site", name)
			if fileutil.FileExists(path) {
				return Load(path)
			}
			triedPaths = append(triedPaths, path)
		}
	}

	return nil, fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
