package md2site

import "strings"

// dangerousTags are element names whose opening and closing tags are
// escaped wholesale: anything that can execute code or pull in external
// content. Matching is literal substring replacement over the full text,
// not limited to true tag boundaries.
var dangerousTags = []string{
	"script", "iframe", "object", "embed", "form", "meta", "link", "style",
}

// dangerousSchemes are URL schemes rewritten with an inert escaped colon.
var dangerousSchemes = []string{"javascript", "vbscript", "data"}

// eventHandlers are inline handler attribute names, matched with a leading
// space and rewritten to break the attribute name while staying readable.
var eventHandlers = []string{
	"onclick", "onload", "onmouseover", "onmouseout",
	"onkeydown", "onkeyup", "onsubmit",
}

// Sanitize rewrites rendered HTML so dangerous constructs are neutralized
// while all other inline HTML is preserved, the way GitHub renders markdown
// with embedded HTML. The threat model covers script execution, dangerous
// URL schemes, and a fixed set of inline event handlers; it does not claim
// to cover every injection vector.
//
// The rule set is an ordered list of literal text replacements applied once
// over the whole string: dangerous tags, then schemes, then event handlers,
// then a blanket block of <input elements followed by re-admission of
// exactly the disabled-checkbox markup produced by task-list rendering.
// Order is load-bearing: the re-admission patterns are strict superstrings
// of the blocked prefix, so the blanket rule must run first.
//
// Sanitize is deterministic, performs no I/O, and is idempotent: every
// rule's output is a fixed point under the same rule set.
//
// Known limitation, kept on purpose: substring matching both over-matches
// (rewrites occurrences inside unrelated text or attribute values) and
// under-matches (handlers such as onerror or onfocus, srcdoc, and SVG-based
// vectors pass through unchanged). A structural allow-list sanitizer would
// catch more but changes observable output; it is out of scope here.
func Sanitize(html string) string {
	for _, tag := range dangerousTags {
		html = strings.ReplaceAll(html, "<"+tag, "&lt;"+tag)
		html = strings.ReplaceAll(html, "</"+tag, "&lt;/"+tag)
	}

	for _, scheme := range dangerousSchemes {
		html = strings.ReplaceAll(html, scheme+":", scheme+"&colon;")
	}

	for _, handler := range eventHandlers {
		html = strings.ReplaceAll(html, " "+handler, " on&"+handler[2:])
	}

	// Block all input elements, then re-admit the one safe variant:
	// non-interactive disabled checkboxes from task lists.
	html = strings.ReplaceAll(html, "<input", "&lt;input")
	html = strings.ReplaceAll(html, "&lt;input disabled", "<input disabled")
	html = strings.ReplaceAll(html, `&lt;input type="checkbox" disabled`, `<input type="checkbox" disabled`)

	return html
}
