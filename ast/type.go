package ast

// Category represents the tag of a node, either a lexical category or the
// name of the grammar production that built it
type Category uint8

// Node categories
const (
	Invalid Category = iota

	// Structural categories, one per grammar production.
	Program
	SExpr
	List
	Seq
	Atom

	// Lexical categories.
	Literal // A single parenthesis: "(" or ")"
	Real    // Signed decimal number with a fractional part: "-3.14"
	Int     // Signed whole number: "+42"
	String  // Double quoted string, backslash escapes allowed
	ID      // Identifier or symbol: "define", "+"
)

var categoryName = map[Category]string{
	Invalid: "INVALID",
	Program: "Program",
	SExpr:   "SExpr",
	List:    "List",
	Seq:     "Seq",
	Atom:    "Atom",
	Literal: "LITERAL",
	Real:    "REAL",
	Int:     "INT",
	String:  "STRING",
	ID:      "ID",
}

func (c Category) String() string {
	if s, ok := categoryName[c]; ok {
		return s
	}
	return categoryName[Invalid]
}

// IsLexeme returns true for categories produced by the tokenizer
func (c Category) IsLexeme() bool {
	return c >= Literal && c <= ID
}

// IsStructural returns true for categories produced by the parser
func (c Category) IsStructural() bool {
	return c >= Program && c <= Atom
}
