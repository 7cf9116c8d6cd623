package dom

import (
	"sort"
	"strings"

	"github.com/jacoelho/xmldom/pkg/xmlescape"
)

// DefaultIndent is the indent used when none is requested.
const DefaultIndent = "  "

// String serializes the element with the default indent.
func (e *Element) String() string {
	return e.StringIndent(DefaultIndent)
}

// StringIndent serializes the element and its subtree. Elements whose
// direct children include text are rendered as mixed content: no
// indentation or newlines are inserted anywhere in their subtree, since
// added whitespace would change the text. Everything else renders one
// child per line at increasing indent.
func (e *Element) StringIndent(indent string) string {
	var sb strings.Builder
	e.render(&sb, "", indent, false)
	return sb.String()
}

func (e *Element) render(sb *strings.Builder, prefix, indent string, inline bool) {
	qname := e.QualifiedName()
	sb.WriteByte('<')
	sb.WriteString(qname)
	for _, k := range e.sortedAttrNames() {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(xmlescape.Escape(e.attributes[k]))
		sb.WriteByte('"')
	}

	switch {
	case len(e.children) == 0:
		sb.WriteString("/>")

	case len(e.children) == 1 && !IsElement(e.children[0]):
		sb.WriteByte('>')
		writeInlineChild(sb, e.children[0], indent)
		sb.WriteString("</")
		sb.WriteString(qname)
		sb.WriteByte('>')

	default:
		mixed := inline || e.hasTextChild()
		sb.WriteByte('>')
		if mixed {
			for _, c := range e.children {
				writeInlineChild(sb, c, indent)
			}
		} else {
			childPrefix := prefix + indent
			for _, c := range e.children {
				sb.WriteByte('\n')
				sb.WriteString(childPrefix)
				if el, ok := c.(*Element); ok {
					el.render(sb, childPrefix, indent, false)
				} else {
					sb.WriteString(c.StringIndent(indent))
				}
			}
			sb.WriteByte('\n')
			sb.WriteString(prefix)
		}
		sb.WriteString("</")
		sb.WriteString(qname)
		sb.WriteByte('>')
	}
}

func writeInlineChild(sb *strings.Builder, n Node, indent string) {
	switch c := n.(type) {
	case *Text:
		sb.WriteString(xmlescape.Text(c.content))
	case *Element:
		c.render(sb, "", indent, true)
	default:
		// comments and CDATA render their literal syntax unescaped
		sb.WriteString(n.StringIndent(indent))
	}
}

func (e *Element) hasTextChild() bool {
	for _, c := range e.children {
		if IsText(c) {
			return true
		}
	}
	return false
}

// sortedAttrNames orders attribute names for output: namespace
// declarations (xmlns, then xmlns:*) first, then the rest, each group
// lexically.
func (e *Element) sortedAttrNames() []string {
	if len(e.attributes) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.attributes))
	for k := range e.attributes {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := names[i], names[j]
		aNS, bNS := isXMLNSAttr(a), isXMLNSAttr(b)
		if aNS != bNS {
			return aNS
		}
		return a < b
	})
	return names
}

func isXMLNSAttr(name string) bool {
	return name == "xmlns" || strings.HasPrefix(name, xmlnsPrefix)
}
