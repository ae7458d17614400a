package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	node, err := NewLexeme(ID, "foo", 1, 1)
	require.NoError(t, err)

	child, err := NewLexeme(Int, "3", 1, 5)
	require.NoError(t, err)

	err = node.Push(child)
	assert.ErrorIs(t, err, ErrLeafNode)
	assert.Empty(t, node.Children())

	line, col := child.Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 5, col)
}

func TestNodeList(t *testing.T) {
	open, err := NewLexeme(Literal, "(", 1, 1)
	require.NoError(t, err)

	list := NewList()
	assert.NoError(t, list.Push(open))
	assert.Equal(t, []*Node{open}, list.Children())

	children := list.Children()
	children[0] = nil
	assert.Equal(t, open, list.Child(0))
	assert.Equal(t, 1, list.Len())
	assert.Nil(t, list.Child(1))

	assert.Error(t, list.Push(nil))
}

func TestConstructorsRejectWrongCategory(t *testing.T) {
	{
		_, err := NewLexeme(Program, "", 0, 0)
		assert.ErrorIs(t, err, ErrNotLexeme)
	}
	{
		_, err := NewLexeme(Invalid, "?", 1, 1)
		assert.ErrorIs(t, err, ErrNotLexeme)
	}
	{
		_, err := NewStructural(String)
		assert.ErrorIs(t, err, ErrNotStructural)
	}
	{
		n, err := NewStructural(Seq)
		require.NoError(t, err)
		assert.True(t, n.Is(Seq))
		assert.Equal(t, "", n.Text())
	}
}

func TestCategory(t *testing.T) {
	testCases := []struct {
		Cat        Category
		Name       string
		Lexeme     bool
		Structural bool
	}{
		{Invalid, "INVALID", false, false},
		{Program, "Program", false, true},
		{SExpr, "SExpr", false, true},
		{List, "List", false, true},
		{Seq, "Seq", false, true},
		{Atom, "Atom", false, true},
		{Literal, "LITERAL", true, false},
		{Real, "REAL", true, false},
		{Int, "INT", true, false},
		{String, "STRING", true, false},
		{ID, "ID", true, false},
		{Category(200), "INVALID", false, false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Name, testCases[i].Cat.String())
		assert.Equal(t, testCases[i].Lexeme, testCases[i].Cat.IsLexeme())
		assert.Equal(t, testCases[i].Structural, testCases[i].Cat.IsStructural())
	}
}
