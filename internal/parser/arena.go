package parser

import "github.com/jacoelho/xmldom/dom"

// nodeID indexes into the arena's node slice.
type nodeID int

const invalidNode nodeID = -1

type arenaNode struct {
	node   dom.Node
	parent nodeID
}

// arena accumulates parsed nodes in arrival order. Children are
// attached to their parents only when the whole tree is known, so
// namespace context flows from the completed ancestry rather than from
// partially built elements.
type arena struct {
	nodes []arenaNode
	open  []nodeID
}

func newArena() *arena {
	return &arena{}
}

// add records a node under the currently open element.
func (a *arena) add(n dom.Node) nodeID {
	id := nodeID(len(a.nodes))
	parent := invalidNode
	if len(a.open) > 0 {
		parent = a.open[len(a.open)-1]
	}
	a.nodes = append(a.nodes, arenaNode{node: n, parent: parent})
	return id
}

// push opens an element: subsequent nodes become its children.
func (a *arena) push(e *dom.Element) nodeID {
	id := a.add(e)
	a.open = append(a.open, id)
	return id
}

// pop closes the innermost open element and returns it.
func (a *arena) pop() (*dom.Element, bool) {
	if len(a.open) == 0 {
		return nil, false
	}
	id := a.open[len(a.open)-1]
	a.open = a.open[:len(a.open)-1]
	return a.nodes[id].node.(*dom.Element), true
}

// top returns the innermost open element without closing it.
func (a *arena) top() (*dom.Element, bool) {
	if len(a.open) == 0 {
		return nil, false
	}
	return a.nodes[a.open[len(a.open)-1]].node.(*dom.Element), true
}

func (a *arena) depth() int {
	return len(a.open)
}

// root assembles the tree and returns the root element. Nodes are
// spliced in descending id order, each prepended to its parent, so
// sibling order comes out as arrival order and every element's children
// are complete before the element itself is attached.
func (a *arena) root() (*dom.Element, bool) {
	var root *dom.Element
	for id := len(a.nodes) - 1; id >= 0; id-- {
		entry := a.nodes[id]
		if entry.parent == invalidNode {
			if e, ok := entry.node.(*dom.Element); ok && root == nil {
				root = e
			}
			continue
		}
		parent := a.nodes[entry.parent].node.(*dom.Element)
		parent.Prepend(entry.node)
	}
	return root, root != nil
}
