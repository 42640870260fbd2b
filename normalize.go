package md2site

import "strings"

// NormalizeEscapes repairs markdown supplied interactively (shell --inline
// arguments), where control characters arrive as two-character escape
// sequences and headings are often typed without the space after the "#".
// It is not applied to file-sourced markdown.
//
// Steps, in order:
//  1. literal \n, \t, \r sequences become real control characters
//  2. literal \\ becomes a single backslash (after step 1, so it does not
//     re-interpret step 1's output)
//  3. one adjacent space on either side of each real newline is stripped
//  4. heading repair per line, see repairHeadings
func NormalizeEscapes(text string) string {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\t`, "\t")
	text = strings.ReplaceAll(text, `\r`, "\r")
	text = strings.ReplaceAll(text, `\\`, `\`)

	text = strings.ReplaceAll(text, " \n", "\n")
	text = strings.ReplaceAll(text, "\n ", "\n")

	return repairHeadings(text)
}

// repairHeadings rewrites each trimmed line that starts with a run of '#'
// not immediately followed by a space, inserting exactly one space after
// the run. Heading depth is preserved; a bare "#" line is left alone.
func repairHeadings(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		run := 0
		for run < len(trimmed) && trimmed[run] == '#' {
			run++
		}
		rest := trimmed[run:]
		if rest == "" || strings.HasPrefix(rest, " ") {
			continue
		}
		lines[i] = trimmed[:run] + " " + rest
	}
	return strings.Join(lines, "\n")
}
