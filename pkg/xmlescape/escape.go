// Package xmlescape converts between raw text and XML entity references.
//
// Two encode modes exist: Text escapes the markup-significant characters
// (& < >) and is used for element text content; Escape additionally
// escapes both quote characters and is used for attribute values.
// Unescape is lenient: entity-like sequences it does not recognize are
// left untouched.
package xmlescape

import (
	"strings"
	"unicode/utf8"
)

// Text escapes &, < and > for use as element text content.
func Text(s string) string {
	return escape(s, false)
}

// Escape escapes &, <, >, ' and " for general use, including attribute values.
func Escape(s string) string {
	return escape(s, true)
}

// Attribute escapes an attribute value. It is the general escape mode.
func Attribute(s string) string {
	return Escape(s)
}

func escape(s string, quotes bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '\'':
			if quotes {
				sb.WriteString("&apos;")
			} else {
				sb.WriteRune(r)
			}
		case '"':
			if quotes {
				sb.WriteString("&quot;")
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

var namedEntities = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"apos": '\'',
	"quot": '"',
}

// Unescape replaces recognized entity references with their characters.
// The five named XML entities and hexadecimal character references
// (&#x..;) are decoded; anything else is preserved verbatim.
func Unescape(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:amp])
	for i := amp; i < len(s); {
		if s[i] != '&' {
			next := strings.IndexByte(s[i:], '&')
			if next < 0 {
				sb.WriteString(s[i:])
				break
			}
			sb.WriteString(s[i : i+next])
			i += next
			continue
		}
		r, consumed := decodeEntity(s[i:])
		if consumed == 0 {
			sb.WriteByte('&')
			i++
			continue
		}
		sb.WriteRune(r)
		i += consumed
	}
	return sb.String()
}

// decodeEntity decodes one entity reference at the start of s.
// It returns consumed == 0 when s does not begin a recognized reference.
func decodeEntity(s string) (rune, int) {
	semi := strings.IndexByte(s, ';')
	if semi < 2 {
		return 0, 0
	}
	ref := s[1:semi]
	if r, ok := namedEntities[ref]; ok {
		return r, semi + 1
	}
	if len(ref) > 2 && ref[0] == '#' && (ref[1] == 'x' || ref[1] == 'X') {
		if r, ok := parseHexRef(ref[2:]); ok {
			return r, semi + 1
		}
	}
	return 0, 0
}

func parseHexRef(digits string) (rune, bool) {
	if digits == "" {
		return 0, false
	}
	var value uint64
	for i := 0; i < len(digits); i++ {
		b := digits[i]
		var d byte
		switch {
		case b >= '0' && b <= '9':
			d = b - '0'
		case b >= 'a' && b <= 'f':
			d = b - 'a' + 10
		case b >= 'A' && b <= 'F':
			d = b - 'A' + 10
		default:
			return 0, false
		}
		value = value*16 + uint64(d)
		if value > utf8.MaxRune {
			return 0, false
		}
	}
	r := rune(value)
	if r == 0 || (r >= 0xD800 && r <= 0xDFFF) {
		return 0, false
	}
	return r, true
}
