package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lispish/ast"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)

// ParseError is returned when the token sequence doesn't form a program.
// Tok is the token that could not be accepted, or nil when the input ended
// early.
type ParseError struct {
	Err   error
	Tok   *ast.Node
	Index int
}

func (e *ParseError) Error() string {
	if e.Tok == nil {
		return fmt.Sprintf("token %d: %v", e.Index, e.Err)
	}
	line, col := e.Tok.Pos()
	return fmt.Sprintf("%d:%d: %v %v", line, col, e.Err, e.Tok)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
