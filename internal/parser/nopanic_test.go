package parser

import (
	"testing"

	"go.uber.org/zap"
)

var nopanicTokens = []string{
	"<", ">", "a", "xmlns:", ":", "\"", "=", "&",
	";", "-", "!", "/", "<a ", "</a>", "<!--", "-->",
}

// TestParseNeverPanics concatenates every token permutation up to a
// fixed length and checks that Parse returns instead of panicking.
func TestParseNeverPanics(t *testing.T) {
	maxTokens := 5
	if testing.Short() {
		maxTokens = 3
	}
	logger := zap.NewNop()
	var walk func(prefix string, depth int)
	walk = func(prefix string, depth int) {
		_, _ = Parse(prefix, logger)
		if depth == maxTokens {
			return
		}
		for _, tok := range nopanicTokens {
			walk(prefix+tok, depth+1)
		}
	}
	walk("", 0)
}

func TestParseTruncationsNeverPanic(t *testing.T) {
	src := `<?xml version="1.0"?><!DOCTYPE r><r xmlns:p="u" a="1&amp;2">` +
		`text <p:c/><!-- note --><![CDATA[raw]]></r>`
	logger := zap.NewNop()
	for i := 0; i <= len(src); i++ {
		_, _ = Parse(src[:i], logger)
	}
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"<root/>",
		`<?xml version="1.0"?><a b="c">text</a>`,
		"<a><b>mixed <i>text</i></b></a>",
		"<!DOCTYPE r [<!ELEMENT r (#PCDATA)>]><r/>",
		"<a>&amp;&#x41;&bad;</a>",
		"<!--<a>--><a/>",
		"<a><![CDATA[<b>]]></a>",
		`<r xmlns="d" xmlns:p="u"><p:x/></r>`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	logger := zap.NewNop()
	f.Fuzz(func(t *testing.T, src string) {
		doc, err := Parse(src, logger)
		if err != nil {
			return
		}
		if _, err := Parse(doc.Render("  "), logger); err != nil {
			t.Fatalf("reparse of rendered output failed: %v", err)
		}
	})
}
