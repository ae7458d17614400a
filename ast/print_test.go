package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLexeme(t *testing.T, cat Category, text string, col int) *Node {
	t.Helper()
	n, err := NewLexeme(cat, text, 1, col)
	require.NoError(t, err)
	return n
}

func mustPush(t *testing.T, parent *Node, children ...*Node) *Node {
	t.Helper()
	for _, child := range children {
		require.NoError(t, parent.Push(child))
	}
	return parent
}

// buildTree builds the tree for "(+ 3)" by hand.
func buildTree(t *testing.T) *Node {
	plus := mustPush(t, NewSExpr(), mustPush(t, NewAtom(), mustLexeme(t, ID, "+", 2)))
	three := mustPush(t, NewSExpr(), mustPush(t, NewAtom(), mustLexeme(t, Int, "3", 4)))
	seq := mustPush(t, NewSeq(), plus, mustPush(t, NewSeq(), three))
	list := mustPush(t, NewList(), mustLexeme(t, Literal, "(", 1), seq, mustLexeme(t, Literal, ")", 5))
	return mustPush(t, NewProgram(), mustPush(t, NewSExpr(), list))
}

func TestFprint(t *testing.T) {
	root := buildTree(t)

	line := func(depth int, cat string, text string) string {
		prefix := strings.Repeat("  ", depth)
		return fmt.Sprintf("%s%-*s%s\n", prefix, DefaultWidth-len(prefix), cat, text)
	}
	expected := line(0, "Program", "") +
		line(1, "SExpr", "") +
		line(2, "List", "") +
		line(3, "LITERAL", "(") +
		line(3, "Seq", "") +
		line(4, "SExpr", "") +
		line(5, "Atom", "") +
		line(6, "ID", "+") +
		line(4, "Seq", "") +
		line(5, "SExpr", "") +
		line(6, "Atom", "") +
		line(7, "INT", "3") +
		line(3, "LITERAL", ")")

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, root, DefaultPrintOptions()))
	assert.Equal(t, expected, buf.String())
}

func TestFprintDeepPrefix(t *testing.T) {
	root := buildTree(t)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, root, PrintOptions{Width: 4, Indent: "."}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, "Program", lines[0])
	assert.Equal(t, "...LITERAL(", lines[3])
	assert.Equal(t, ".......INT3", lines[11])
}

func TestFprintColor(t *testing.T) {
	root := buildTree(t)

	var plain, colored bytes.Buffer
	require.NoError(t, Fprint(&plain, root, DefaultPrintOptions()))

	opts := DefaultPrintOptions()
	opts.Color = true
	require.NoError(t, Fprint(&colored, root, opts))

	assert.Contains(t, colored.String(), "\x1b[")
	assert.NotContains(t, plain.String(), "\x1b[")
}

func TestFprintTokens(t *testing.T) {
	tokens := []*Node{
		mustLexeme(t, Literal, "(", 1),
		mustLexeme(t, ID, "+", 2),
		mustLexeme(t, Real, "3.14", 4),
		mustLexeme(t, Literal, ")", 8),
	}

	var buf bytes.Buffer
	require.NoError(t, FprintTokens(&buf, tokens, PrintOptions{}))
	assert.Equal(t, ""+
		"LITERAL              : (\n"+
		"ID                   : +\n"+
		"REAL                 : 3.14\n"+
		"LITERAL              : )\n", buf.String())
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "(+ 3)", string(Encode(buildTree(t))))
	assert.Equal(t, "", string(Encode(NewProgram())))
}

func TestWalkSkipsChildren(t *testing.T) {
	root := buildTree(t)

	visited := 0
	Walk(root, func(n *Node, depth int) bool {
		visited++
		return !n.Is(List)
	})
	assert.Equal(t, 3, visited)
}

func TestSnapshot(t *testing.T) {
	rec := Snapshot(buildTree(t))
	assert.Equal(t, "Program", rec.Category)
	require.Len(t, rec.Children, 1)

	data, err := json.Marshal(rec.Children[0].Children[0].Children[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"LITERAL","text":"(","line":1,"column":1}`, string(data))
}
