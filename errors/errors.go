// Package errors defines the error types reported by xmldom.
//
// Parsing and mutation failures are always returned as typed errors;
// the library never panics on malformed input.
package errors

import "fmt"

// ParsingError reports an XML well-formedness failure with location context.
type ParsingError struct {
	Line    int
	Column  int
	Message string
}

// NewParsingError creates a ParsingError at the given position.
func NewParsingError(line, column int, format string, args ...any) *ParsingError {
	return &ParsingError{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error formats the parsing error with location and cause.
func (e *ParsingError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("xml parsing error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("xml parsing error: %s", e.Message)
}

// TypeCastError reports a node downcast to the wrong variant.
type TypeCastError struct {
	From string
	To   string
}

// NewTypeCastError creates a TypeCastError for a From node used as To.
func NewTypeCastError(from, to string) *TypeCastError {
	return &TypeCastError{From: from, To: to}
}

func (e *TypeCastError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("cannot cast %s as %s", e.From, e.To)
}

// InvalidElementName reports an element name that violates the XML Name production.
type InvalidElementName struct {
	Name string
}

func (e *InvalidElementName) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q is not a valid element name", e.Name)
}

// InvalidAttributeName reports an attribute name that violates the XML Name production.
type InvalidAttributeName struct {
	Name string
}

func (e *InvalidAttributeName) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q is not a valid attribute name", e.Name)
}

// InvalidContent reports node content that contains its own terminator,
// such as a comment containing "-->" or a CDATA section containing "]]>".
type InvalidContent struct {
	Message string
}

func (e *InvalidContent) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid content: %s", e.Message)
}

// IndexOutOfBounds reports a child index outside the valid range.
type IndexOutOfBounds struct {
	Index int
	Min   int
	Max   int
}

// NewIndexOutOfBounds creates an IndexOutOfBounds for index within [min, max].
func NewIndexOutOfBounds(index, min, max int) *IndexOutOfBounds {
	return &IndexOutOfBounds{Index: index, Min: min, Max: max}
}

func (e *IndexOutOfBounds) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("index %d out of bounds [%d, %d]", e.Index, e.Min, e.Max)
}

// DoesNotExistError reports a lookup for something that is not present.
type DoesNotExistError struct {
	What string
}

func (e *DoesNotExistError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.What == "" {
		return "does not exist"
	}
	return fmt.Sprintf("%s does not exist", e.What)
}

// NotSupportedError reports a valid XML construct this library does not handle.
type NotSupportedError struct {
	Construct string
}

func (e *NotSupportedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unsupported XML construct: %s", e.Construct)
}

// IOError wraps a failure from an I/O collaborator.
type IOError struct {
	Op  string
	Err error
}

// NewIOError wraps err with the failing operation name.
func NewIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
