// Package lispish checks the grammar of a small S-expression language and
// builds its parse tree.
//
//	program  ::= sexpr*
//	sexpr    ::= list | atom
//	list     ::= "(" ( ")" | seq ")" )
//	seq      ::= sexpr seq?
//	atom     ::= ID | INT | REAL | STRING | "(" | ")"
package lispish

import (
	"fmt"
	"log/slog"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

// Options configures Check
type Options struct {
	// PermissiveIdentifiers accepts any run of non-space, non-quote,
	// non-parenthesis characters as an identifier.
	PermissiveIdentifiers bool

	// ExtendedWhitespace also skips tabs, carriage returns and form feeds.
	ExtendedWhitespace bool

	// MaxDepth bounds list nesting. Zero keeps the parser default, a
	// negative value removes the bound.
	MaxDepth int

	Logger *slog.Logger
}

// Result holds the output of both stages
type Result struct {
	Tokens []*ast.Node
	Tree   *ast.Node
}

// Check tokenizes and parses src. On failure the error is either a
// *lexer.LexError or a *parser.ParseError and no partial result is
// returned.
func Check(src []byte, opts Options) (*Result, error) {
	tokens, err := lexer.Tokenize(src,
		lexer.WithPermissiveIdentifiers(opts.PermissiveIdentifiers),
		lexer.WithExtendedWhitespace(opts.ExtendedWhitespace),
		lexer.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	parserOpts := []parser.Option{parser.WithLogger(opts.Logger)}
	if opts.MaxDepth != 0 {
		parserOpts = append(parserOpts, parser.WithMaxDepth(opts.MaxDepth))
	}
	tree, err := parser.Parse(tokens, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return &Result{
		Tokens: tokens,
		Tree:   tree,
	}, nil
}

// Parse returns the parse tree of src using the default options
func Parse(src []byte) (*ast.Node, error) {
	res, err := Check(src, Options{})
	if err != nil {
		return nil, err
	}
	return res.Tree, nil
}

// Valid reports whether src is lexically and syntactically well formed
func Valid(src []byte) bool {
	_, err := Check(src, Options{})
	return err == nil
}
