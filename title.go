package md2site

import "strings"

// ExtractTitle scans markdown lines in document order and returns the text
// of the first top-level heading ("# ..."), trimmed. ok is false when no
// such heading exists; callers substitute DefaultTitle.
//
// The scan works on the raw markdown text, so a "# " line inside a fenced
// code block is still treated as a heading.
func ExtractTitle(markdown string) (title string, ok bool) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, found := strings.CutPrefix(trimmed, "# "); found {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
