package dom

import (
	"maps"
	"strings"

	"github.com/jacoelho/xmldom/errors"
	"github.com/jacoelho/xmldom/internal/xmlname"
)

// Element is a named node with attributes and an ordered child list.
// Children are exclusively owned; the child list never holds two
// adjacent Text nodes nor a whitespace-only Text node.
type Element struct {
	name       string
	prefix     string
	children   []Node
	attributes map[string]string

	// namespace holds the resolved namespace URI of this element;
	// defaultNS holds the default namespace in scope for children;
	// context maps prefixes to URIs, local plus inherited declarations.
	// All three are resolved once, when the element is attached.
	namespace  string
	defaultNS  string
	context    map[string]string
	explicitNS bool
}

// NewElement creates an element with the given name and no content.
// The name may carry a single ':' namespace qualifier.
func NewElement(name string) (*Element, error) {
	return NewElementFull(name, "", nil, "", "", nil)
}

// NewElementWithText creates an element holding a single text child.
func NewElementWithText(name, text string) (*Element, error) {
	return NewElementFull(name, text, nil, "", "", nil)
}

// NewElementWithAttrs creates an element with the given attributes.
func NewElementWithAttrs(name string, attrs map[string]string) (*Element, error) {
	return NewElementFull(name, "", attrs, "", "", nil)
}

// NewElementWithAttrsText creates an element with attributes and text content.
func NewElementWithAttrsText(name string, attrs map[string]string, text string) (*Element, error) {
	return NewElementFull(name, text, attrs, "", "", nil)
}

// NewElementWithChildren creates an element with the given child nodes.
func NewElementWithChildren(name string, children []Node) (*Element, error) {
	return NewElementFull(name, "", nil, "", "", children)
}

// NewElementWithAttrsChildren creates an element with attributes and children.
func NewElementWithAttrsChildren(name string, attrs map[string]string, children []Node) (*Element, error) {
	return NewElementFull(name, "", attrs, "", "", children)
}

// NewElementFull is the full-control constructor. An explicit xmlns
// overrides namespace declarations found in attrs; an explicit prefix
// overrides a ':' qualifier in name. Children are attached through the
// normal append path, so namespace context propagates and text nodes
// are normalized.
func NewElementFull(name, text string, attrs map[string]string, xmlns, prefix string, children []Node) (*Element, error) {
	e, err := newElement(name, attrs, xmlns, prefix)
	if err != nil {
		return nil, err
	}
	if text != "" {
		e.Append(NewText(text))
	}
	if len(children) > 0 {
		e.AppendAll(children...)
	}
	return e, nil
}

func newElement(name string, attrs map[string]string, xmlns, prefix string) (*Element, error) {
	qprefix, local, ok := xmlname.Split(name)
	if !ok || !xmlname.IsName(local) || (qprefix != "" && !xmlname.IsName(qprefix)) {
		return nil, &errors.InvalidElementName{Name: name}
	}
	if prefix == "" {
		prefix = qprefix
	} else if !xmlname.IsName(prefix) {
		return nil, &errors.InvalidElementName{Name: prefix + ":" + local}
	}
	attributes := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if !xmlname.IsQName(k) {
			return nil, &errors.InvalidAttributeName{Name: k}
		}
		attributes[k] = v
	}
	e := &Element{
		name:       local,
		prefix:     prefix,
		attributes: attributes,
		namespace:  xmlns,
		explicitNS: xmlns != "",
	}
	e.ResolveNamespaces("", nil)
	return e, nil
}

// Name returns the local tag name.
func (e *Element) Name() string { return e.name }

// QualifiedName returns prefix:name, or just name when unprefixed.
func (e *Element) QualifiedName() string {
	if e.prefix == "" {
		return e.name
	}
	return e.prefix + ":" + e.name
}

// Namespace returns the resolved namespace URI, or "" when none applies.
func (e *Element) Namespace() string { return e.namespace }

// NamespacePrefix returns the namespace prefix, or "" for an unprefixed
// element (whose namespace, if any, is the default namespace).
func (e *Element) NamespacePrefix() string { return e.prefix }

// DefaultNamespace returns the default namespace in scope on this
// element: its own declaration if present, otherwise the inherited one.
func (e *Element) DefaultNamespace() string { return e.defaultNS }

// NamespaceContext returns the prefix-to-URI map in scope, local and
// inherited declarations combined. The unprefixed default namespace is
// not included.
func (e *Element) NamespaceContext() map[string]string {
	if len(e.context) == 0 {
		return nil
	}
	return maps.Clone(e.context)
}

// Attributes returns a copy of the attribute map.
func (e *Element) Attributes() map[string]string {
	return maps.Clone(e.attributes)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attributes[name]
	return v, ok
}

// SetAttr sets an attribute after validating its name.
func (e *Element) SetAttr(name, value string) error {
	if !xmlname.IsQName(name) {
		return &errors.InvalidAttributeName{Name: name}
	}
	e.attributes[name] = value
	return nil
}

// RemoveAttr deletes an attribute, returning its previous value.
func (e *Element) RemoveAttr(name string) (string, bool) {
	v, ok := e.attributes[name]
	if ok {
		delete(e.attributes, name)
	}
	return v, ok
}

// ClearAttributes deletes all attributes.
func (e *Element) ClearAttributes() {
	clear(e.attributes)
}

// Children returns a copy of the child node list.
func (e *Element) Children() []Node {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// NumChildren returns the number of child nodes.
func (e *Element) NumChildren() int { return len(e.children) }

// Child returns the child node at index i.
func (e *Element) Child(i int) (Node, error) {
	if i < 0 || i >= len(e.children) {
		return nil, errors.NewIndexOutOfBounds(i, 0, len(e.children)-1)
	}
	return e.children[i], nil
}

// ChildElements returns the element children, in order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// FirstElementByName returns the first child element with the given
// name, or a DoesNotExistError. The search is non-recursive.
func (e *Element) FirstElementByName(name string) (*Element, error) {
	for _, c := range e.children {
		if el, ok := c.(*Element); ok && el.name == name {
			return el, nil
		}
	}
	return nil, &errors.DoesNotExistError{What: "element <" + name + ">"}
}

// ElementsByName returns all child elements with the given name.
// The search is non-recursive.
func (e *Element) ElementsByName(name string) []*Element {
	var out []*Element
	for _, c := range e.ChildElements() {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// ElementsByNamespace returns all child elements with the given
// resolved namespace URI; "" matches elements with no namespace.
// The search is non-recursive.
func (e *Element) ElementsByNamespace(namespace string) []*Element {
	var out []*Element
	for _, c := range e.ChildElements() {
		if c.namespace == namespace {
			out = append(out, c)
		}
	}
	return out
}

// ElementsByNamespacePrefix returns all child elements using the given
// namespace prefix; "" matches unprefixed elements, including those in
// a default namespace. The search is non-recursive.
func (e *Element) ElementsByNamespacePrefix(prefix string) []*Element {
	var out []*Element
	for _, c := range e.ChildElements() {
		if c.prefix == prefix {
			out = append(out, c)
		}
	}
	return out
}

// Search returns all descendant nodes matching pred, depth-first in
// document order.
func (e *Element) Search(pred func(Node) bool) []Node {
	var out []Node
	e.walk(func(n Node) {
		if pred(n) {
			out = append(out, n)
		}
	})
	return out
}

// SearchElements returns all descendant elements matching pred,
// depth-first in document order.
func (e *Element) SearchElements(pred func(*Element) bool) []*Element {
	var out []*Element
	e.walk(func(n Node) {
		if el, ok := n.(*Element); ok && pred(el) {
			out = append(out, el)
		}
	})
	return out
}

// SearchElementsByName returns all descendant elements with the given
// name, regardless of namespace.
func (e *Element) SearchElementsByName(name string) []*Element {
	return e.SearchElements(func(el *Element) bool { return el.name == name })
}

// SearchText returns all descendant text nodes matching pred.
func (e *Element) SearchText(pred func(*Text) bool) []*Text {
	var out []*Text
	e.walk(func(n Node) {
		if t, ok := n.(*Text); ok && pred(t) {
			out = append(out, t)
		}
	})
	return out
}

// SearchComments returns all descendant comments matching pred.
func (e *Element) SearchComments(pred func(*Comment) bool) []*Comment {
	var out []*Comment
	e.walk(func(n Node) {
		if c, ok := n.(*Comment); ok && pred(c) {
			out = append(out, c)
		}
	})
	return out
}

func (e *Element) walk(visit func(Node)) {
	for _, c := range e.children {
		visit(c)
		if el, ok := c.(*Element); ok {
			el.walk(visit)
		}
	}
}

// Append adds a node to the end of the child list. Element children
// inherit this element's namespace context at attach time; text nodes
// are merged and whitespace-only text removed afterwards.
func (e *Element) Append(n Node) {
	if child, ok := n.(*Element); ok {
		child.ResolveNamespaces(e.defaultNS, e.context)
	}
	e.children = append(e.children, n)
	e.normalizeText()
}

// AppendAll adds multiple nodes to the end of the child list.
func (e *Element) AppendAll(nodes ...Node) {
	for _, n := range nodes {
		if child, ok := n.(*Element); ok {
			child.ResolveNamespaces(e.defaultNS, e.context)
		}
		e.children = append(e.children, n)
	}
	e.normalizeText()
}

// Prepend adds a node to the front of the child list, with the same
// attach-time namespace resolution and text normalization as Append.
func (e *Element) Prepend(n Node) {
	if child, ok := n.(*Element); ok {
		child.ResolveNamespaces(e.defaultNS, e.context)
	}
	e.children = append([]Node{n}, e.children...)
	e.normalizeText()
}

// Insert adds a node at index i in the child list.
func (e *Element) Insert(i int, n Node) error {
	if i < 0 || i > len(e.children) {
		return errors.NewIndexOutOfBounds(i, 0, len(e.children))
	}
	if child, ok := n.(*Element); ok {
		child.ResolveNamespaces(e.defaultNS, e.context)
	}
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = n
	e.normalizeText()
	return nil
}

// Remove deletes and returns the child node at index i.
func (e *Element) Remove(i int) (Node, error) {
	if i < 0 || i >= len(e.children) {
		return nil, errors.NewIndexOutOfBounds(i, 0, len(e.children)-1)
	}
	n := e.children[i]
	e.children = append(e.children[:i], e.children[i+1:]...)
	return n, nil
}

// RemoveAll deletes all child nodes matching pred, returning the count.
// The removal is non-recursive.
func (e *Element) RemoveAll(pred func(Node) bool) int {
	count := 0
	out := e.children[:0]
	for _, c := range e.children {
		if pred(c) {
			count++
			continue
		}
		out = append(out, c)
	}
	e.children = out
	return count
}

// RemoveElement deletes and returns the i-th child element (counting
// elements only).
func (e *Element) RemoveElement(i int) (*Element, error) {
	seen := 0
	for j, c := range e.children {
		el, ok := c.(*Element)
		if !ok {
			continue
		}
		if seen == i {
			e.children = append(e.children[:j], e.children[j+1:]...)
			return el, nil
		}
		seen++
	}
	return nil, errors.NewIndexOutOfBounds(i, 0, seen-1)
}

// RemoveElements deletes all child elements matching pred, returning
// the count. The removal is non-recursive.
func (e *Element) RemoveElements(pred func(*Element) bool) int {
	return e.RemoveAll(func(n Node) bool {
		el, ok := n.(*Element)
		return ok && pred(el)
	})
}

// RemoveElementsByName deletes all child elements with the given name,
// returning the count.
func (e *Element) RemoveElementsByName(name string) int {
	return e.RemoveElements(func(el *Element) bool { return el.name == name })
}

// ClearChildren deletes all child nodes.
func (e *Element) ClearChildren() {
	e.children = nil
}

// SetText replaces all children with a single text node. Child elements
// and comments are discarded.
func (e *Element) SetText(text string) {
	e.ClearChildren()
	e.Append(NewText(text))
}

// normalizeText restores the child-list invariants after an insertion:
// adjacent Text nodes are merged back to front, then any whitespace-only
// Text node is removed.
func (e *Element) normalizeText() {
	for i := len(e.children) - 1; i > 0; i-- {
		back, backOK := e.children[i].(*Text)
		front, frontOK := e.children[i-1].(*Text)
		if backOK && frontOK {
			e.children[i-1] = front.concat(back)
			e.children = append(e.children[:i], e.children[i+1:]...)
		}
	}
	out := e.children[:0]
	for _, c := range e.children {
		if t, ok := c.(*Text); ok && t.IsWhitespace() {
			continue
		}
		out = append(out, c)
	}
	e.children = out
}

// Type returns ElementNode.
func (e *Element) Type() NodeType { return ElementNode }

// Text returns the recursive concatenation of text content from Text
// and Element children, in order. Comments and CDATA are excluded.
func (e *Element) Text() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			sb.WriteString(n.content)
		case *Element:
			n.collectText(sb)
		}
	}
}

// Clone returns a deep copy of the element and its subtree.
func (e *Element) Clone() Node {
	cp := &Element{
		name:       e.name,
		prefix:     e.prefix,
		attributes: maps.Clone(e.attributes),
		namespace:  e.namespace,
		defaultNS:  e.defaultNS,
		context:    maps.Clone(e.context),
		explicitNS: e.explicitNS,
	}
	if len(e.children) > 0 {
		cp.children = make([]Node, len(e.children))
		for i, c := range e.children {
			cp.children[i] = c.Clone()
		}
	}
	return cp
}

// Equal reports structural equality: same name, resolved namespace,
// prefix, attributes, and pairwise-equal children in order.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	if e.name != other.name || e.namespace != other.namespace || e.prefix != other.prefix {
		return false
	}
	if !maps.Equal(e.attributes, other.attributes) {
		return false
	}
	if len(e.children) != len(other.children) {
		return false
	}
	for i := range e.children {
		if !Equal(e.children[i], other.children[i]) {
			return false
		}
	}
	return true
}

// Hash returns a weak hash over name and namespace only; use Equal for
// authoritative comparison.
func (e *Element) Hash() uint64 {
	return hashString(e.name, e.namespace)
}

func (e *Element) sealed() {}
