package dom

// Declaration is an XML declaration such as <?xml version="1.0"?>.
// Only the interior between "<?" and "?>" is stored; the content is
// never interpreted.
type Declaration struct {
	content string
}

// DefaultDeclarationContent is the interior of the standard declaration.
const DefaultDeclarationContent = `xml version="1.0" encoding="UTF-8"`

// NewDeclaration creates a Declaration from the interior string,
// e.g. `xml version="1.0" encoding="UTF-8"`.
func NewDeclaration(content string) Declaration {
	return Declaration{content: content}
}

// DefaultDeclaration returns the standard UTF-8 XML 1.0 declaration.
func DefaultDeclaration() Declaration {
	return NewDeclaration(DefaultDeclarationContent)
}

// Content returns the stored interior string.
func (d Declaration) Content() string { return d.content }

// String re-wraps the stored interior as <?...?>.
func (d Declaration) String() string { return "<?" + d.content + "?>" }

// DTD is a document type declaration block, stored verbatim and never
// interpreted. Only the interior between "<!" and ">" is kept.
type DTD struct {
	content string
}

// NewDTD creates a DTD from the interior string,
// e.g. `DOCTYPE note [...]`.
func NewDTD(content string) DTD {
	return DTD{content: content}
}

// Content returns the stored interior string.
func (d DTD) Content() string { return d.content }

// String re-wraps the stored interior as <!...>.
func (d DTD) String() string { return "<!" + d.content + ">" }
