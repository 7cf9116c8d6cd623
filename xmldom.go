// Package xmldom parses XML documents into a mutable document object
// model and renders them back to text.
//
// The model keeps what a configuration or document author wrote:
// elements, text, comments, CDATA sections, the XML declaration, and
// document type declarations. It performs no schema or DTD validation
// and does not interpret processing instructions.
//
//	doc, err := xmldom.ParseString(`<config><timeout>30</timeout></config>`)
//	if err != nil {
//		...
//	}
//	timeout, err := doc.RootElement().FirstElementByName("timeout")
package xmldom

import (
	"io"
	"unicode/utf8"

	"github.com/jacoelho/xmldom/dom"
	"github.com/jacoelho/xmldom/errors"
	"github.com/jacoelho/xmldom/internal/parser"
	"github.com/jacoelho/xmldom/pkg/xmlescape"
)

// Parse reads all of r and parses it as an XML document.
func Parse(r io.Reader, opts ...Option) (*dom.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIOError("read", err)
	}
	return ParseString(string(data), opts...)
}

// ParseString parses an XML document held in memory. The input must be
// valid UTF-8; a leading byte order mark is accepted and skipped.
func ParseString(src string, opts ...Option) (*dom.Document, error) {
	if !utf8.ValidString(src) {
		return nil, errors.NewParsingError(1, 1, "invalid UTF-8 input")
	}
	o := buildOptions(opts...)
	return parser.Parse(src, o.logger)
}

// EscapeText escapes the characters that cannot appear literally in
// XML character data: '&', '<' and '>'.
func EscapeText(s string) string { return xmlescape.Text(s) }

// Escape escapes all five XML special characters, producing a string
// safe for attribute values as well as character data.
func Escape(s string) string { return xmlescape.Escape(s) }

// Unescape expands the predefined XML entities and hexadecimal
// character references. Unrecognized entities are left as written.
func Unescape(s string) string { return xmlescape.Unescape(s) }
