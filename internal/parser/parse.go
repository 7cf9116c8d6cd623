package parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jacoelho/xmldom/dom"
	"github.com/jacoelho/xmldom/errors"
	"github.com/jacoelho/xmldom/pkg/xmlescape"
)

// Parse builds a document from XML source. The logger must not be nil;
// recoverable oddities (skipped processing instructions, stray
// directives) are logged and skipped, everything else fails with a
// positioned *errors.ParsingError.
func Parse(src string, logger *zap.Logger) (*dom.Document, error) {
	p := &parser{
		src:    strings.TrimPrefix(src, "\uFEFF"),
		logger: logger,
		a:      newArena(),
	}
	return p.run()
}

type parser struct {
	src    string
	logger *zap.Logger
	a      *arena

	decl       *dom.Declaration
	dtds       []dom.DTD
	seenAny    bool
	rootSeen   bool
	rootClosed bool
}

func (p *parser) run() (*dom.Document, error) {
	pos := 0
	for {
		start, end := nextTag(p.src, pos)
		if start == noMatch {
			if err := p.text(p.src[pos:], pos); err != nil {
				return nil, err
			}
			break
		}
		if end == noMatch {
			return nil, p.errAt(start, "unterminated tag")
		}
		if err := p.text(p.src[pos:start], pos); err != nil {
			return nil, err
		}
		if err := p.tag(start, end); err != nil {
			return nil, err
		}
		pos = end
	}

	if top, ok := p.a.top(); ok {
		return nil, p.errAt(len(p.src), "element <%s> never closed", top.QualifiedName())
	}
	root, ok := p.a.root()
	if !ok {
		return nil, p.errAt(len(p.src), "missing root element")
	}
	doc := dom.NewDocumentFull(root, p.decl, p.dtds)
	doc.SetLogger(p.logger)
	return doc, nil
}

// text handles a character-data run between markup spans.
func (p *parser) text(raw string, offset int) error {
	content := reduceText(raw)
	if content == "" {
		return nil
	}
	if p.a.depth() == 0 {
		return p.errAt(offset, "text outside of root element")
	}
	p.seenAny = true
	p.a.add(dom.NewText(xmlescape.Unescape(content)))
	return nil
}

// tag dispatches one markup span.
func (p *parser) tag(start, end int) error {
	t := p.src[start:end]
	switch {
	case strings.HasPrefix(t, "<!--"):
		return p.comment(t, start)
	case strings.HasPrefix(t, "<![CDATA["):
		return p.cdata(t, start)
	case strings.HasPrefix(t, "<?"):
		return p.instruction(t, start)
	case strings.HasPrefix(t, "<!"):
		return p.directive(t, start)
	default:
		return p.element(start, end)
	}
}

func (p *parser) comment(t string, start int) error {
	p.seenAny = true
	if p.a.depth() == 0 {
		p.logger.Warn("skipping comment outside root element",
			zap.Int("offset", start))
		return nil
	}
	c, err := dom.NewComment(t[len("<!--") : len(t)-len("-->")])
	if err != nil {
		return p.errAt(start, "invalid comment: %v", err)
	}
	p.a.add(c)
	return nil
}

func (p *parser) cdata(t string, start int) error {
	if p.a.depth() == 0 {
		return p.errAt(start, "CDATA section outside of root element")
	}
	p.seenAny = true
	c, err := dom.NewCData(t[len("<![CDATA[") : len(t)-len("]]>")])
	if err != nil {
		return p.errAt(start, "invalid CDATA section: %v", err)
	}
	p.a.add(c)
	return nil
}

func (p *parser) instruction(t string, start int) error {
	if isDeclaration(t) && !p.seenAny {
		decl := dom.NewDeclaration(t[len("<?") : len(t)-len("?>")])
		p.decl = &decl
		p.seenAny = true
		return nil
	}
	if p.a.depth() > 0 {
		return &errors.NotSupportedError{Construct: "processing instruction"}
	}
	p.logger.Warn("skipping processing instruction",
		zap.String("content", t),
		zap.Int("offset", start))
	p.seenAny = true
	return nil
}

// isDeclaration reports whether the span is an XML declaration rather
// than a processing instruction whose target merely starts with "xml".
func isDeclaration(t string) bool {
	if !strings.HasPrefix(t, "<?xml") {
		return false
	}
	rest := t[len("<?xml"):]
	return rest == "?>" || rest[0] == ' ' || rest[0] == '\t' ||
		rest[0] == '\n' || rest[0] == '\r'
}

func (p *parser) directive(t string, start int) error {
	if p.a.depth() > 0 {
		return &errors.NotSupportedError{Construct: "inline directive"}
	}
	p.seenAny = true
	if strings.HasPrefix(t, "<!DOCTYPE") && !p.rootSeen {
		p.dtds = append(p.dtds, dom.NewDTD(t[len("<!"):len(t)-len(">")]))
		return nil
	}
	p.logger.Warn("skipping directive",
		zap.String("content", t),
		zap.Int("offset", start))
	return nil
}

func (p *parser) element(start, end int) error {
	tag, perr := parseElementTag(p.src, start, end)
	if perr != nil {
		return perr
	}
	p.seenAny = true

	if tag.closing {
		top, ok := p.a.top()
		if !ok {
			return p.errAt(start, "closing tag </%s> without matching open tag", tag.name)
		}
		if top.QualifiedName() != tag.name {
			return p.errAt(start, "closing tag </%s> does not match <%s>",
				tag.name, top.QualifiedName())
		}
		p.a.pop()
		if p.a.depth() == 0 {
			p.rootClosed = true
		}
		return nil
	}

	if p.a.depth() == 0 && p.rootClosed {
		return p.errAt(start, "multiple root elements")
	}

	attrs := make(map[string]string, len(tag.attrs))
	for _, a := range tag.attrs {
		if _, dup := attrs[a.name]; dup {
			return p.errAt(start, "duplicate attribute %q", a.name)
		}
		attrs[a.name] = xmlescape.Unescape(a.value)
	}
	e, err := dom.NewElementFull(tag.name, "", attrs, "", "", nil)
	if err != nil {
		return p.errAt(start, "invalid element <%s>: %v", tag.name, err)
	}

	p.a.push(e)
	p.rootSeen = true
	if pfx := e.NamespacePrefix(); pfx != "" && pfx != "xml" && pfx != "xmlns" {
		if !p.prefixDeclared(pfx) {
			return p.errAt(start, "undefined namespace prefix %q", pfx)
		}
	}
	if tag.selfClose {
		p.a.pop()
		if p.a.depth() == 0 {
			p.rootClosed = true
		}
	}
	return nil
}

// prefixDeclared walks the open-element stack looking for a namespace
// declaration binding prefix. The just-pushed element is included, so
// its own xmlns:* attributes count.
func (p *parser) prefixDeclared(prefix string) bool {
	for i := len(p.a.open) - 1; i >= 0; i-- {
		el := p.a.nodes[p.a.open[i]].node.(*dom.Element)
		if _, ok := el.NamespaceContext()[prefix]; ok {
			return true
		}
	}
	return false
}

func (p *parser) errAt(offset int, format string, args ...any) *errors.ParsingError {
	line, col := lineCol(p.src, offset)
	return errors.NewParsingError(line, col, format, args...)
}
