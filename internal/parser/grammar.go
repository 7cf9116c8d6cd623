package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/jacoelho/xmldom/errors"
	"github.com/jacoelho/xmldom/internal/xmlname"
)

// tagAttr is one attribute occurrence, value still escaped.
type tagAttr struct {
	name  string
	value string
}

// elementTag is a validated element tag span.
type elementTag struct {
	name      string // qualified name as written
	attrs     []tagAttr
	closing   bool
	selfClose bool
}

// parseElementTag checks the element-tag grammar for the span
// src[start:end] (angle brackets included): an optional leading '/', an
// XML Name with at most one ':' qualifier, whitespace-separated
// Name="value" attributes with up to one space on each side of '=', and
// an optional trailing '/'. Only element tags are grammar-checked;
// comment, CDATA, and PI content is accepted verbatim by the scanner.
func parseElementTag(src string, start, end int) (*elementTag, *errors.ParsingError) {
	inner := src[start+1 : end-1]
	fail := func(at int, format string, args ...any) *errors.ParsingError {
		line, col := lineCol(src, start+1+at)
		return errors.NewParsingError(line, col, format, args...)
	}

	tag := &elementTag{}
	i := 0
	if strings.HasPrefix(inner, "/") {
		tag.closing = true
		i++
	}

	name, next, ok := readQName(inner, i)
	if !ok {
		return nil, fail(i, "invalid element name")
	}
	tag.name = name
	i = next

	for i < len(inner) {
		ws := 0
		for i < len(inner) && isSpaceByte(inner[i]) {
			i++
			ws++
		}
		if i >= len(inner) {
			break
		}
		if inner[i] == '/' {
			if i != len(inner)-1 {
				return nil, fail(i, "unexpected '/' inside tag")
			}
			if tag.closing {
				return nil, fail(i, "closing tag must not be self-closing")
			}
			tag.selfClose = true
			i++
			break
		}
		if ws == 0 {
			return nil, fail(i, "expected whitespace before attribute")
		}

		attrName, next, ok := readQName(inner, i)
		if !ok {
			return nil, fail(i, "invalid attribute name")
		}
		i = next
		if i < len(inner) && inner[i] == ' ' {
			i++
		}
		if i >= len(inner) || inner[i] != '=' {
			return nil, fail(i, "expected '=' after attribute name %q", attrName)
		}
		i++
		if i < len(inner) && inner[i] == ' ' {
			i++
		}
		if i >= len(inner) || (inner[i] != '"' && inner[i] != '\'') {
			return nil, fail(i, "expected quoted value for attribute %q", attrName)
		}
		quote := inner[i]
		i++
		closeIdx := strings.IndexByte(inner[i:], quote)
		if closeIdx < 0 {
			return nil, fail(i, "unterminated value for attribute %q", attrName)
		}
		tag.attrs = append(tag.attrs, tagAttr{name: attrName, value: inner[i : i+closeIdx]})
		i += closeIdx + 1
	}

	if tag.closing && len(tag.attrs) > 0 {
		return nil, fail(0, "closing tag must not carry attributes")
	}
	return tag, nil
}

// readQName consumes an XML Name with at most one ':' qualifier.
func readQName(s string, i int) (name string, next int, ok bool) {
	first, next, ok := readName(s, i)
	if !ok {
		return "", i, false
	}
	if next < len(s) && s[next] == ':' {
		_, after, ok := readName(s, next+1)
		if !ok {
			return "", i, false
		}
		return s[i:after], after, true
	}
	return first, next, true
}

func readName(s string, i int) (name string, next int, ok bool) {
	r, size := utf8.DecodeRuneInString(s[i:])
	if size == 0 || !xmlname.IsNameStart(r) {
		return "", i, false
	}
	j := i + size
	for j < len(s) {
		r, size = utf8.DecodeRuneInString(s[j:])
		if !xmlname.IsNameChar(r) {
			break
		}
		j += size
	}
	return s[i:j], j, true
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
