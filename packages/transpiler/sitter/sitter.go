// Package sitter adapts tree-sitter nodes to the syntax.Node surface the
// transpiler consumes. Parsing stays with tree-sitter and whichever pug
// grammar the caller loads; this package only converts borrowed trees.
package sitter

import (
	ts "github.com/smacker/go-tree-sitter"

	"pug2html/packages/transpiler/syntax"
)

// Node wraps a tree-sitter node as a syntax.Node
type Node struct {
	inner *ts.Node
}

// Wrap adapts a tree-sitter node; a nil node maps to a nil syntax.Node
func Wrap(node *ts.Node) syntax.Node {
	if node == nil {
		return nil
	}
	return &Node{inner: node}
}

// Kind returns the grammar construct name of this node
func (n *Node) Kind() string {
	return n.inner.Type()
}

// IsNamed returns whether this node is a named grammar construct
func (n *Node) IsNamed() bool {
	return n.inner.IsNamed()
}

// StartByte returns the inclusive start offset of the node in the source
func (n *Node) StartByte() int {
	return int(n.inner.StartByte())
}

// EndByte returns the exclusive end offset of the node in the source
func (n *Node) EndByte() int {
	return int(n.inner.EndByte())
}

// ChildCount returns the number of children, anonymous ones included
func (n *Node) ChildCount() int {
	return int(n.inner.ChildCount())
}

// Child returns the i-th child, anonymous ones included
func (n *Node) Child(i int) syntax.Node {
	return Wrap(n.inner.Child(i))
}

// NamedChildCount returns the number of named children
func (n *Node) NamedChildCount() int {
	return int(n.inner.NamedChildCount())
}

// NamedChild returns the i-th named child
func (n *Node) NamedChild(i int) syntax.Node {
	return Wrap(n.inner.NamedChild(i))
}

// Content returns the raw source text covered by this node
func (n *Node) Content(source string) string {
	return n.inner.Content([]byte(source))
}

// String returns tree-sitter's canonical s-expression dump of the subtree
func (n *Node) String() string {
	return n.inner.String()
}
