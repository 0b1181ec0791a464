package syntax

import "strings"

// Node is the surface the transpiler requires from a parsed syntax tree.
// It mirrors the tree-sitter node API: a kind identifier, a half-open byte
// range into the source, ordered child access, raw text access and a
// canonical s-expression dump. Trees are owned by whoever produced them;
// the transpiler only borrows nodes for the duration of a traversal.
type Node interface {
	Kind() string
	IsNamed() bool
	StartByte() int
	EndByte() int
	ChildCount() int
	Child(i int) Node
	NamedChildCount() int
	NamedChild(i int) Node
	Content(source string) string
	String() string
}

// SyntaxNode is an in-memory Node implementation. It backs test fixtures
// and is the construction target for parser adapters.
type SyntaxNode struct {
	kind     string
	named    bool
	start    int
	end      int
	children []*SyntaxNode
}

// NewNode creates a named node covering source[start:end].
func NewNode(kind string, start, end int, children ...*SyntaxNode) *SyntaxNode {
	return &SyntaxNode{
		kind:     kind,
		named:    true,
		start:    start,
		end:      end,
		children: children,
	}
}

// NewAnonymousNode creates an unnamed node (punctuation, keyword tokens).
// Anonymous nodes occupy child positions but are never visited by the
// transpiler's dispatcher.
func NewAnonymousNode(kind string, start, end int) *SyntaxNode {
	return &SyntaxNode{
		kind:  kind,
		named: false,
		start: start,
		end:   end,
	}
}

// Kind returns the grammar construct name of this node.
func (n *SyntaxNode) Kind() string {
	return n.kind
}

// IsNamed returns whether this node is a named grammar construct.
func (n *SyntaxNode) IsNamed() bool {
	return n.named
}

// StartByte returns the inclusive start offset of the node in the source.
func (n *SyntaxNode) StartByte() int {
	return n.start
}

// EndByte returns the exclusive end offset of the node in the source.
func (n *SyntaxNode) EndByte() int {
	return n.end
}

// ChildCount returns the number of children, anonymous ones included.
func (n *SyntaxNode) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th child, anonymous ones included.
func (n *SyntaxNode) Child(i int) Node {
	return n.children[i]
}

// NamedChildCount returns the number of named children.
func (n *SyntaxNode) NamedChildCount() int {
	count := 0
	for _, child := range n.children {
		if child.named {
			count++
		}
	}
	return count
}

// NamedChild returns the i-th named child.
func (n *SyntaxNode) NamedChild(i int) Node {
	seen := 0
	for _, child := range n.children {
		if !child.named {
			continue
		}
		if seen == i {
			return child
		}
		seen++
	}
	return nil
}

// Content returns the raw source text covered by this node.
func (n *SyntaxNode) Content(source string) string {
	return source[n.start:n.end]
}

// String returns the canonical s-expression dump of the subtree rooted at
// this node, in the shape tree-sitter prints: named nodes only.
func (n *SyntaxNode) String() string {
	var sb strings.Builder
	n.writeSexp(&sb)
	return sb.String()
}

func (n *SyntaxNode) writeSexp(sb *strings.Builder) {
	sb.WriteString("(")
	sb.WriteString(n.kind)
	for _, child := range n.children {
		if !child.named {
			continue
		}
		sb.WriteString(" ")
		child.writeSexp(sb)
	}
	sb.WriteString(")")
}
