// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Markdown extensions recognized in directory mode.
var markdownExtensions = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsMarkdownFile returns true if the path carries a markdown extension,
// compared case-insensitively.
//
// Examples:
//   - "notes.md" -> true
//   - "README.MD" -> true
//   - "guide.markdown" -> true
//   - "style.css" -> false
//   - "md" -> false (no extension)
func IsMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range markdownExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// OutputName maps a markdown file name to its HTML output name: the stem
// with an .html extension. The directory part is dropped.
func OutputName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".html"
}
