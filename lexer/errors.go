package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// LexError is returned when the input at some position can't be matched by
// any lexical rule and is not whitespace.
type LexError struct {
	Offset int
	Line   int
	Column int
	Rune   rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Column, ErrUnexpectedCharacter, e.Rune)
}

func (e *LexError) Unwrap() error {
	return ErrUnexpectedCharacter
}
