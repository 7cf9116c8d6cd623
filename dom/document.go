package dom

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jacoelho/xmldom/errors"
)

// Document wraps exactly one root element plus optional metadata: an
// XML declaration and any number of DTD blocks, both kept verbatim.
type Document struct {
	declaration Declaration
	hasDecl     bool
	dtds        []DTD
	root        *Element
	logger      *zap.Logger
}

// NewDocument creates a document with the given root element and the
// default XML declaration.
func NewDocument(root *Element) *Document {
	return &Document{
		declaration: DefaultDeclaration(),
		hasDecl:     true,
		root:        root,
		logger:      zap.NewNop(),
	}
}

// NewDocumentFull creates a document with an optional declaration and
// optional DTD blocks.
func NewDocumentFull(root *Element, decl *Declaration, dtds []DTD) *Document {
	d := &Document{
		root:   root,
		dtds:   append([]DTD(nil), dtds...),
		logger: zap.NewNop(),
	}
	if decl != nil {
		d.declaration = *decl
		d.hasDecl = true
	}
	return d
}

// SetLogger sets the logger used for render warnings. A nil logger
// disables them.
func (d *Document) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.logger = logger
}

// Declaration returns the XML declaration, if the document has one.
func (d *Document) Declaration() (Declaration, bool) {
	return d.declaration, d.hasDecl
}

// SetDeclaration sets the XML declaration.
func (d *Document) SetDeclaration(decl Declaration) {
	d.declaration = decl
	d.hasDecl = true
}

// RemoveDeclaration removes the XML declaration.
func (d *Document) RemoveDeclaration() {
	d.declaration = Declaration{}
	d.hasDecl = false
}

// DTDs returns a copy of the document type declaration blocks, in order.
func (d *Document) DTDs() []DTD {
	return append([]DTD(nil), d.dtds...)
}

// SetDTDs replaces the document type declaration blocks.
func (d *Document) SetDTDs(dtds []DTD) {
	d.dtds = append([]DTD(nil), dtds...)
}

// RootElement returns the root element. The returned pointer is live;
// mutations through it modify the document.
func (d *Document) RootElement() *Element {
	return d.root
}

// SetRootElement replaces the root element.
func (d *Document) SetRootElement(root *Element) {
	d.root = root
}

// String renders the document with the default indent.
func (d *Document) String() string {
	return d.Render(DefaultIndent)
}

// Render produces the XML text for the document. The indent must be a
// single tab or a run of spaces; any other value logs a warning and
// falls back to the default indent.
func (d *Document) Render(indent string) string {
	if !validIndent(indent) {
		d.log().Warn("invalid indent, falling back to default",
			zap.String("indent", indent),
			zap.String("default", DefaultIndent))
		indent = DefaultIndent
	}
	var sb strings.Builder
	if d.hasDecl {
		sb.WriteString(d.declaration.String())
		sb.WriteByte('\n')
	}
	for _, dtd := range d.dtds {
		sb.WriteString(dtd.String())
		sb.WriteByte('\n')
	}
	if d.root != nil {
		sb.WriteString(d.root.StringIndent(indent))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo renders the document with the default indent into w.
func (d *Document) WriteTo(w io.Writer) error {
	if _, err := io.WriteString(w, d.String()); err != nil {
		return errors.NewIOError("write document", err)
	}
	return nil
}

// WriteFile renders the document with the default indent into path.
func (d *Document) WriteFile(path string) error {
	return d.WriteFileIndent(path, DefaultIndent)
}

// WriteFileIndent renders the document with the given indent into path.
func (d *Document) WriteFileIndent(path, indent string) error {
	if err := os.WriteFile(path, []byte(d.Render(indent)), 0o644); err != nil {
		return errors.NewIOError("write "+path, err)
	}
	return nil
}

// Equal reports whether both documents have equal declarations, DTD
// blocks, and structurally equal roots.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}
	if d.hasDecl != other.hasDecl || d.declaration != other.declaration {
		return false
	}
	if len(d.dtds) != len(other.dtds) {
		return false
	}
	for i := range d.dtds {
		if d.dtds[i] != other.dtds[i] {
			return false
		}
	}
	return d.root.Equal(other.root)
}

func (d *Document) log() *zap.Logger {
	if d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}

// validIndent accepts exactly one tab or a non-empty run of spaces.
func validIndent(indent string) bool {
	if indent == "\t" {
		return true
	}
	if indent == "" {
		return false
	}
	for i := 0; i < len(indent); i++ {
		if indent[i] != ' ' {
			return false
		}
	}
	return true
}
