// Package markdown renders the small markdown subset used in journal entries.
//
// It is a flat sequence of pattern replacements, not a conformant parser:
// there is no nesting and raw HTML in the source passes through unescaped.
package markdown

import (
	"regexp"
	"strings"
)

type rule struct {
	pattern *regexp.Regexp
	replace string
}

// Order matters: bold runs before italic and fenced code before inline code.
var rules = []rule{
	{regexp.MustCompile(`(?m)^# (.*)$`), "<h1>${1}</h1>"},
	{regexp.MustCompile(`(?m)^## (.*)$`), "<h2>${1}</h2>"},
	{regexp.MustCompile(`(?m)^### (.*)$`), "<h3>${1}</h3>"},
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "<strong>${1}</strong>"},
	{regexp.MustCompile(`\*(.*?)\*`), "<em>${1}</em>"},
	{regexp.MustCompile(`(?m)^- (.*)$`), "<ul><li>${1}</li></ul>"},
	{regexp.MustCompile(`(?m)^[0-9]+\. (.*)$`), "<ol><li>${1}</li></ol>"},
	{regexp.MustCompile(`(?m)^> (.*)$`), "<blockquote>${1}</blockquote>"},
	{regexp.MustCompile("```([\\s\\S]*?)```"), "<pre><code>${1}</code></pre>"},
	{regexp.MustCompile("`(.*?)`"), "<code>${1}</code>"},
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), `<a href="${2}">${1}</a>`},
}

// Render converts markdown source to an HTML fragment. CRLF line endings
// are treated as plain newlines.
func Render(src string) string {
	html := strings.ReplaceAll(src, "\r\n", "\n")
	for _, r := range rules {
		html = r.pattern.ReplaceAllString(html, r.replace)
	}
	html = breakParagraphs(html)
	html = strings.ReplaceAll(html, "\n", "<br>")

	if !strings.HasPrefix(html, "<h") && !strings.HasPrefix(html, "<p>") {
		html = "<p>" + html
	}
	if !strings.HasSuffix(html, "</p>") {
		html += "</p>"
	}

	html = strings.ReplaceAll(html, "</ul><ul>", "")
	html = strings.ReplaceAll(html, "</ol><ol>", "")
	return html
}

// breakParagraphs replaces every whitespace-only line with "</p><p>".
// A match may consume the newlines of following blank lines, and an empty
// match is allowed directly after a non-empty one, so runs of blank lines
// produce one break per line.
func breakParagraphs(s string) string {
	var b strings.Builder
	copied := 0
	for pos := 0; pos <= len(s); {
		start, end, ok := blankLineAt(s, pos)
		if !ok {
			pos++
			continue
		}
		b.WriteString(s[copied:start])
		b.WriteString("</p><p>")
		copied = end
		if end > start {
			pos = end
		} else {
			pos = end + 1
		}
	}
	b.WriteString(s[copied:])
	return b.String()
}

// blankLineAt matches a line start at pos followed by the longest run of
// whitespace that ends at a line end.
func blankLineAt(s string, pos int) (int, int, bool) {
	if pos > 0 && s[pos-1] != '\n' {
		return 0, 0, false
	}
	end := pos
	for end < len(s) && isSpace(s[end]) {
		end++
	}
	for ; end >= pos; end-- {
		if end == len(s) || s[end] == '\n' {
			return pos, end, true
		}
	}
	return 0, 0, false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
