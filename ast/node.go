package ast

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrLeafNode      = errors.New("lexeme nodes can't accept children")
	ErrNotLexeme     = errors.New("category is not a lexical category")
	ErrNotStructural = errors.New("category is not a structural category")
	errNilChild      = errors.New("child node is nil")
)

// Node is the single entity used for both lexemes and parse tree structure.
// A lexeme carries the matched text and is always a leaf, a structural node
// carries no text and owns its children.
type Node struct {
	cat  Category
	text string

	line int
	col  int

	children []*Node
}

// NewLexeme creates a leaf node for a matched piece of source text
func NewLexeme(cat Category, text string, line int, col int) (*Node, error) {
	if !cat.IsLexeme() {
		return nil, fmt.Errorf("%w: %v", ErrNotLexeme, cat)
	}
	return &Node{
		cat:  cat,
		text: text,
		line: line,
		col:  col,
	}, nil
}

// NewStructural creates an empty node for a grammar production
func NewStructural(cat Category) (*Node, error) {
	if !cat.IsStructural() {
		return nil, fmt.Errorf("%w: %v", ErrNotStructural, cat)
	}
	return newStructural(cat), nil
}

func newStructural(cat Category) *Node {
	return &Node{
		cat:      cat,
		children: []*Node{},
	}
}

// NewProgram creates an empty program node
func NewProgram() *Node {
	return newStructural(Program)
}

// NewSExpr creates an empty s-expression node
func NewSExpr() *Node {
	return newStructural(SExpr)
}

// NewList creates an empty list node
func NewList() *Node {
	return newStructural(List)
}

// NewSeq creates an empty sequence node
func NewSeq() *Node {
	return newStructural(Seq)
}

// NewAtom creates an empty atom node
func NewAtom() *Node {
	return newStructural(Atom)
}

// Category returns the tag of the node
func (n *Node) Category() Category {
	return n.cat
}

// Text returns the matched text of a lexeme, or an empty string for
// structural nodes
func (n *Node) Text() string {
	return n.text
}

// Pos returns the line and column of a lexeme.
func (n *Node) Pos() (int, int) {
	return n.line, n.col
}

// Children returns a copy of the ordered children of the node. Changing
// the returned slice leaves the tree untouched.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child, or nil if out of range
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Is returns true if the node has the given category
func (n *Node) Is(cat Category) bool {
	return n != nil && n.cat == cat
}

// IsLexeme returns true if the node was produced by the tokenizer
func (n *Node) IsLexeme() bool {
	return n.cat.IsLexeme()
}

// Push appends a child node to a structural node.
func (n *Node) Push(child *Node) error {
	if child == nil {
		return errNilChild
	}
	if n.IsLexeme() {
		return ErrLeafNode
	}
	n.children = append(n.children, child)
	return nil
}

func (n *Node) String() string {
	if n.IsLexeme() {
		return fmt.Sprintf("(%v %q [%d %d])", n.cat, n.text, n.line, n.col)
	}
	return fmt.Sprintf("(%v)[%d]", n.cat, len(n.children))
}
