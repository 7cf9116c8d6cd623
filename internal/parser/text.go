package parser

import "strings"

// reduceText turns a raw character-data run into DOM text content.
// Whitespace-only runs disappear, line endings are normalized to "\n",
// indentation after a newline is folded into the newline, and a single
// layout newline is trimmed from each end together with the spaces and
// tabs around it. Interior spacing is otherwise preserved.
func reduceText(raw string) string {
	if isAllWhitespace(raw) {
		return ""
	}
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = collapseIndent(s)
	s = trimLayoutEdges(s)
	return s
}

func isAllWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}

// collapseIndent removes spaces and tabs that immediately follow a
// newline, so indentation contributes nothing to text content.
func collapseIndent(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	skipping := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if skipping {
			if c == ' ' || c == '\t' {
				continue
			}
			skipping = false
		}
		b.WriteByte(c)
		if c == '\n' {
			skipping = true
		}
	}
	return b.String()
}

// trimLayoutEdges removes at most one leading and one trailing newline
// together with adjacent spaces and tabs. Those edges come from markup
// layout, not from the document's text.
func trimLayoutEdges(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i < len(s) && s[i] == '\n' {
		s = s[i+1:]
	}
	j := len(s)
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	if j > 0 && s[j-1] == '\n' {
		k := j - 1
		for k > 0 && (s[k-1] == ' ' || s[k-1] == '\t') {
			k--
		}
		s = s[:k]
	}
	return s
}
