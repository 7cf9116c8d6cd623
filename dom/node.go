// Package dom provides the XML document object model: a Document wrapping
// a tree of Element, Text, Comment, and CData nodes.
//
// The node kinds form a closed set. Nodes are exclusively owned by their
// parent and are not safe for concurrent mutation without external
// synchronization.
package dom

import (
	"github.com/jacoelho/xmldom/errors"
)

// NodeType classifies the node kinds of the DOM.
type NodeType uint8

const (
	// ElementNode identifies an element in the document tree.
	ElementNode NodeType = iota + 1
	// TextNode identifies a run of character data.
	TextNode
	// CommentNode identifies an XML comment.
	CommentNode
	// CDataNode identifies a CDATA section.
	CDataNode
)

// String returns the node type name.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case CDataNode:
		return "CData"
	default:
		return "Unknown"
	}
}

// Node is the contract shared by all four node kinds.
// The set of implementations is closed; use the As* functions for
// downcasting and Equal for structural comparison.
type Node interface {
	// Type identifies the concrete node kind.
	Type() NodeType
	// Text returns the plain text content of the node. For elements this
	// is the recursive concatenation of descendant text, ignoring markup.
	Text() string
	// Clone returns a deep copy of the node.
	Clone() Node
	// String serializes the node with the default two-space indent.
	String() string
	// StringIndent serializes the node using the given indent.
	StringIndent(indent string) string

	// sealed restricts implementations to this package.
	sealed()
}

// IsElement reports whether n is an Element.
func IsElement(n Node) bool { return n != nil && n.Type() == ElementNode }

// IsText reports whether n is a Text node.
func IsText(n Node) bool { return n != nil && n.Type() == TextNode }

// IsComment reports whether n is a Comment.
func IsComment(n Node) bool { return n != nil && n.Type() == CommentNode }

// IsCData reports whether n is a CData section.
func IsCData(n Node) bool { return n != nil && n.Type() == CDataNode }

// AsElement downcasts n to an Element.
func AsElement(n Node) (*Element, error) {
	if e, ok := n.(*Element); ok {
		return e, nil
	}
	return nil, errors.NewTypeCastError(typeName(n), "Element")
}

// AsText downcasts n to a Text node.
func AsText(n Node) (*Text, error) {
	if t, ok := n.(*Text); ok {
		return t, nil
	}
	return nil, errors.NewTypeCastError(typeName(n), "Text")
}

// AsComment downcasts n to a Comment.
func AsComment(n Node) (*Comment, error) {
	if c, ok := n.(*Comment); ok {
		return c, nil
	}
	return nil, errors.NewTypeCastError(typeName(n), "Comment")
}

// AsCData downcasts n to a CData section.
func AsCData(n Node) (*CData, error) {
	if c, ok := n.(*CData); ok {
		return c, nil
	}
	return nil, errors.NewTypeCastError(typeName(n), "CData")
}

func typeName(n Node) string {
	if n == nil {
		return "nil"
	}
	return n.Type().String()
}

// Equal reports structural equality between two nodes. Nodes of
// different kinds are never equal; elements compare name, namespace,
// prefix, attributes, and children pairwise in order.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Element:
		y, ok := b.(*Element)
		return ok && x.Equal(y)
	case *Text:
		y, ok := b.(*Text)
		return ok && x.Content() == y.Content()
	case *Comment:
		y, ok := b.(*Comment)
		return ok && x.Content() == y.Content()
	case *CData:
		y, ok := b.(*CData)
		return ok && x.Content() == y.Content()
	default:
		return false
	}
}
