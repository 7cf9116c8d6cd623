package dom

import (
	"hash/fnv"
	"strings"

	"github.com/jacoelho/xmldom/errors"
)

// Text is an immutable run of character data.
type Text struct {
	content string
}

// NewText creates a Text node with the given content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Content returns the text content.
func (t *Text) Content() string { return t.content }

// Type returns TextNode.
func (t *Text) Type() NodeType { return TextNode }

// Text returns the text content.
func (t *Text) Text() string { return t.content }

// Clone returns a copy of the node.
func (t *Text) Clone() Node { return &Text{content: t.content} }

// String returns the raw text content. Escaping is applied by the
// element serializer, not here.
func (t *Text) String() string { return t.content }

// StringIndent returns the raw text content; indent is ignored.
func (t *Text) StringIndent(string) string { return t.content }

// Hash returns a weak content hash.
func (t *Text) Hash() uint64 { return hashString(t.content) }

// IsWhitespace reports whether the content is empty or all whitespace.
func (t *Text) IsWhitespace() bool {
	return strings.TrimSpace(t.content) == ""
}

func (t *Text) sealed() {}

// concat returns a new Text holding the contents of t then other.
func (t *Text) concat(other *Text) *Text {
	return &Text{content: t.content + other.content}
}

// Comment is an XML comment node.
type Comment struct {
	content string
}

// NewComment creates a Comment. It fails when the content contains the
// comment terminator "-->".
func NewComment(content string) (*Comment, error) {
	if strings.Contains(content, "-->") {
		return nil, &errors.InvalidContent{Message: `comment must not contain "-->"`}
	}
	return &Comment{content: content}, nil
}

// Content returns the comment text.
func (c *Comment) Content() string { return c.content }

// Type returns CommentNode.
func (c *Comment) Type() NodeType { return CommentNode }

// Text returns the comment text.
func (c *Comment) Text() string { return c.content }

// Clone returns a copy of the node.
func (c *Comment) Clone() Node { return &Comment{content: c.content} }

// String serializes the comment as <!--content-->.
func (c *Comment) String() string { return "<!--" + c.content + "-->" }

// StringIndent serializes the comment; indent is ignored.
func (c *Comment) StringIndent(string) string { return c.String() }

// Hash returns a weak content hash.
func (c *Comment) Hash() uint64 { return hashString(c.content) }

func (c *Comment) sealed() {}

// CData is a literal text block exempt from escaping.
type CData struct {
	content string
}

// NewCData creates a CData section. It fails when the content contains
// the section terminator "]]>".
func NewCData(content string) (*CData, error) {
	if strings.Contains(content, "]]>") {
		return nil, &errors.InvalidContent{Message: `CDATA must not contain "]]>"`}
	}
	return &CData{content: content}, nil
}

// Content returns the literal section content.
func (c *CData) Content() string { return c.content }

// Type returns CDataNode.
func (c *CData) Type() NodeType { return CDataNode }

// Text returns the literal section content.
func (c *CData) Text() string { return c.content }

// Clone returns a copy of the node.
func (c *CData) Clone() Node { return &CData{content: c.content} }

// String serializes the section as <![CDATA[content]]>.
func (c *CData) String() string { return "<![CDATA[" + c.content + "]]>" }

// StringIndent serializes the section; indent is ignored.
func (c *CData) StringIndent(string) string { return c.String() }

// Hash returns a weak content hash.
func (c *CData) Hash() uint64 { return hashString(c.content) }

func (c *CData) sealed() {}

func hashString(parts ...string) uint64 {
	h := fnv.New64a()
	for i, p := range parts {
		if i > 0 {
			_, _ = h.Write([]byte{0x1f})
		}
		_, _ = h.Write([]byte(p))
	}
	return h.Sum64()
}
