// Package parser turns XML text into a dom.Document. It composes a tag
// scanner, an element-tag grammar check, top-down namespace resolution,
// and an arena-backed tree builder into a single O(n) pass.
package parser

import (
	"strings"
	"unicode/utf8"
)

// noMatch marks a missing scan result offset.
const noMatch = -1

// nextTag locates the next markup span in s at or after from, returning
// [start, end) byte offsets. start == noMatch means no markup remains;
// end == noMatch means a '<' was found but its span never closes, which
// is a fatal syntax error upstream.
//
// The closing scan depends on the characters after '<': comments and
// CDATA close on their literal terminators, processing instructions are
// quote-aware, directives (DOCTYPE) are quote-aware and track nested
// '<'/'>' bracket depth for internal subsets, and element tags close on
// the first unquoted '>'.
func nextTag(s string, from int) (start, end int) {
	if from < 0 {
		from = 0
	}
	if from >= len(s) {
		return noMatch, noMatch
	}
	i := strings.IndexByte(s[from:], '<')
	if i < 0 {
		return noMatch, noMatch
	}
	start = from + i
	rest := s[start:]
	switch {
	case strings.HasPrefix(rest, "<!--"):
		return start, closeLiteral(s, start+len("<!--"), "-->")
	case strings.HasPrefix(rest, "<![CDATA["):
		return start, closeLiteral(s, start+len("<![CDATA["), "]]>")
	case strings.HasPrefix(rest, "<?"):
		return start, closePI(s, start+len("<?"))
	case strings.HasPrefix(rest, "<!"):
		return start, closeDirective(s, start+len("<!"))
	default:
		return start, closeElementTag(s, start+1)
	}
}

func closeLiteral(s string, pos int, terminator string) int {
	i := strings.Index(s[pos:], terminator)
	if i < 0 {
		return noMatch
	}
	return pos + i + len(terminator)
}

func closePI(s string, pos int) int {
	var quote byte
	for i := pos; i < len(s); i++ {
		b := s[i]
		switch {
		case quote != 0:
			if b == quote {
				quote = 0
			}
		case b == '"' || b == '\'':
			quote = b
		case b == '?' && i+1 < len(s) && s[i+1] == '>':
			return i + 2
		}
	}
	return noMatch
}

func closeDirective(s string, pos int) int {
	var quote byte
	depth := 0
	for i := pos; i < len(s); i++ {
		b := s[i]
		switch {
		case quote != 0:
			if b == quote {
				quote = 0
			}
		case b == '"' || b == '\'':
			quote = b
		case b == '<':
			depth++
		case b == '>':
			if depth == 0 {
				return i + 1
			}
			depth--
		}
	}
	return noMatch
}

func closeElementTag(s string, pos int) int {
	var quote byte
	for i := pos; i < len(s); i++ {
		b := s[i]
		switch {
		case quote != 0:
			if b == quote {
				quote = 0
			}
		case b == '"' || b == '\'':
			quote = b
		case b == '>':
			return i + 1
		}
	}
	return noMatch
}

// lineCol converts a byte offset into a 1-based line and column.
// Columns count runes on the offset's line.
func lineCol(s string, offset int) (line, col int) {
	if offset > len(s) {
		offset = len(s)
	}
	line = 1
	last := 0
	for i := 0; i < offset; i++ {
		if s[i] == '\n' {
			line++
			last = i + 1
		}
	}
	return line, utf8.RuneCountInString(s[last:offset]) + 1
}
