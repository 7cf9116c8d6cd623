package parser

import "testing"

func TestNextTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  int
		start int
		end   int
	}{
		{name: "no markup", input: "plain text", start: noMatch, end: noMatch},
		{name: "element", input: "ab<x>cd", start: 2, end: 5},
		{name: "gt inside quoted attribute", input: `<a b="1>2">`, start: 0, end: 11},
		{name: "comment containing gt", input: "<!-- a > b -->", start: 0, end: 14},
		{name: "comment containing fake close", input: "<!-- <x> -->rest", start: 0, end: 12},
		{name: "cdata containing markup", input: "<![CDATA[<a>&]]>", start: 0, end: 16},
		{name: "pi with quoted close", input: `<?t a="?>"?>`, start: 0, end: 12},
		{name: "doctype with internal subset", input: "<!DOCTYPE r [<!ELEMENT r (#PCDATA)>]>", start: 0, end: 37},
		{name: "unterminated element", input: "<a href=", start: 0, end: noMatch},
		{name: "unterminated comment", input: "<!-- never", start: 0, end: noMatch},
		{name: "from offset", input: "<a><b>", from: 3, start: 3, end: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := nextTag(tt.input, tt.from)
			if start != tt.start || end != tt.end {
				t.Errorf("nextTag(%q, %d) = (%d, %d), want (%d, %d)",
					tt.input, tt.from, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestLineCol(t *testing.T) {
	src := "ab\ncdéf\nx"
	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{8, 2, 5}, // after the two-byte rune
		{9, 3, 1},
	}
	for _, tt := range tests {
		line, col := lineCol(src, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("lineCol(%d) = (%d, %d), want (%d, %d)",
				tt.offset, line, col, tt.line, tt.col)
		}
	}
}
