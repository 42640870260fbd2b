package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(dir) {
		t.Errorf("FileExists(%q) = true for a directory, want false", dir)
	}
	if FileExists(filepath.Join(dir, "missing.md")) {
		t.Error("FileExists() = true for a missing file, want false")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if DirExists(file) {
		t.Errorf("DirExists(%q) = true for a file, want false", file)
	}
}

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "notes.md", want: true},
		{path: "README.MD", want: true},
		{path: "guide.markdown", want: true},
		{path: "sub/dir/post.md", want: true},
		{path: "style.css", want: false},
		{path: "md", want: false},
		{path: "archive.md.bak", want: false},
		{path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := IsMarkdownFile(tt.path); got != tt.want {
				t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "notes.md", want: "notes.html"},
		{path: "docs/guide.markdown", want: "guide.html"},
		{path: "no-extension", want: "no-extension.html"},
		{path: "dot.ted.name.md", want: "dot.ted.name.html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := OutputName(tt.path); got != tt.want {
				t.Errorf("OutputName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
