package lexer

import (
	"regexp"

	"github.com/xiam/lispish/ast"
)

// rule matches one lexical category, anchored at the scan cursor
type rule struct {
	cat ast.Category
	re  *regexp.Regexp
}

// Lexical patterns, in priority order. Real must be tried before Int so
// "3.14" is not split, Literal first so a parenthesis never ends up inside
// an identifier.
var (
	literalRule = rule{ast.Literal, regexp.MustCompile(`^[()]`)}
	realRule    = rule{ast.Real, regexp.MustCompile(`^[+-]?[0-9]*\.[0-9]+`)}
	intRule     = rule{ast.Int, regexp.MustCompile(`^[+-]?[0-9]+`)}
	stringRule  = rule{ast.String, regexp.MustCompile(`^"(?:[^"\\\n]|\\+(?:"|[^"\\\n]))*"`)}

	identRule           = rule{ast.ID, regexp.MustCompile(`^[\pL\pN_+\-*/<>=!?.:%&|~^]+`)}
	permissiveIdentRule = rule{ast.ID, regexp.MustCompile(`^[^\s"()]+`)}
)

func rules(permissive bool) []rule {
	id := identRule
	if permissive {
		id = permissiveIdentRule
	}
	return []rule{
		literalRule,
		realRule,
		intRule,
		stringRule,
		id,
	}
}

func isWhitespace(r rune, extended bool) bool {
	switch r {
	case ' ', '\n':
		return true
	case '\t', '\r', '\f':
		return extended
	}
	return false
}
