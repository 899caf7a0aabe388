package transcript

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
)

// RenderHTML is a minimal markup conversion for email bodies. It supports
// exactly four substitutions, applied in this order: **bold**, *italic*,
// blank line to paragraph break, newline to line break. It is intentionally
// not a markdown engine: nesting, lists, links and escaping are out.
func RenderHTML(text string) string {
	out := boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = strings.ReplaceAll(out, "\n\n", "</p><p>")
	out = strings.ReplaceAll(out, "\n", "<br/>")
	return "<p>" + out + "</p>"
}
