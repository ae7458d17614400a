package parser

import (
	"log/slog"

	"github.com/xiam/lispish/ast"
)

// DefaultMaxDepth is the list nesting bound used when no option is given
const DefaultMaxDepth = 10000

type config struct {
	maxDepth int
	logger   *slog.Logger
}

// Option configures a Parser
type Option func(c *config)

// WithMaxDepth bounds list nesting. Zero or less means unbounded.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithLogger traces every top-level form at debug level. A nil logger
// disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Parser builds a parse tree out of a sequence of lexemes.
//
//	program  ::= sexpr*
//	sexpr    ::= list | atom
//	list     ::= "(" ( ")" | seq ")" )
//	seq      ::= sexpr seq?
//	atom     ::= ID | INT | REAL | STRING | "(" | ")"
type Parser struct {
	tokens []*ast.Node
	index  int
	tok    *ast.Node // token at index, nil past the end

	depth    int
	maxDepth int

	logger *slog.Logger
}

// New creates a parser over the given lexemes
func New(tokens []*ast.Node, opts ...Option) *Parser {
	cfg := config{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Parser{
		tokens:   tokens,
		maxDepth: cfg.maxDepth,
		logger:   cfg.logger,
	}
	if len(tokens) > 0 {
		p.tok = tokens[0]
	}
	return p
}

// Parse consumes all the tokens and returns the Program node. A parser can
// only be used once.
func (p *Parser) Parse() (*ast.Node, error) {
	for i, tok := range p.tokens {
		if tok == nil || !tok.IsLexeme() {
			return nil, &ParseError{Err: ErrUnexpectedToken, Tok: tok, Index: i}
		}
	}
	return p.program()
}

// advance returns the current token and moves the cursor forward
func (p *Parser) advance() *ast.Node {
	tok := p.tok
	p.index++
	if p.index < len(p.tokens) {
		p.tok = p.tokens[p.index]
	} else {
		p.tok = nil
	}
	return tok
}

func (p *Parser) fail(err error) error {
	return &ParseError{Err: err, Tok: p.tok, Index: p.index}
}

func (p *Parser) program() (*ast.Node, error) {
	root := ast.NewProgram()
	for p.tok != nil {
		start := p.index
		sexpr, err := p.sexpr()
		if err != nil {
			return nil, err
		}
		if err := root.Push(sexpr); err != nil {
			return nil, err
		}
		if p.logger != nil {
			p.logger.Debug("form", "index", root.Len()-1, "tokens", p.index-start)
		}
	}
	return root, nil
}

func (p *Parser) sexpr() (*ast.Node, error) {
	if p.tok == nil {
		return nil, p.fail(ErrUnexpectedEOF)
	}

	var child *ast.Node
	var err error
	if isOpen(p.tok) {
		child, err = p.list()
	} else {
		child, err = p.atom()
	}
	if err != nil {
		return nil, err
	}

	sexpr := ast.NewSExpr()
	if err := sexpr.Push(child); err != nil {
		return nil, err
	}
	return sexpr, nil
}

func (p *Parser) list() (*ast.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return nil, p.fail(ErrMaxDepth)
	}

	list := ast.NewList()
	if err := list.Push(p.advance()); err != nil {
		return nil, err
	}

	if p.tok == nil {
		return nil, p.fail(ErrUnexpectedEOF)
	}
	if isClose(p.tok) {
		if err := list.Push(p.advance()); err != nil {
			return nil, err
		}
		return list, nil
	}

	seq, err := p.seq()
	if err != nil {
		return nil, err
	}
	if err := list.Push(seq); err != nil {
		return nil, err
	}

	// seq only returns once the cursor is on ")"
	if err := list.Push(p.advance()); err != nil {
		return nil, err
	}
	return list, nil
}

// seq builds the right-nested chain of Seq nodes with a loop, so long
// sequences don't grow the stack.
func (p *Parser) seq() (*ast.Node, error) {
	head := ast.NewSeq()
	for curr := head; ; {
		sexpr, err := p.sexpr()
		if err != nil {
			return nil, err
		}
		if err := curr.Push(sexpr); err != nil {
			return nil, err
		}

		if p.tok == nil {
			return nil, p.fail(ErrUnexpectedEOF)
		}
		if isClose(p.tok) {
			return head, nil
		}

		next := ast.NewSeq()
		if err := curr.Push(next); err != nil {
			return nil, err
		}
		curr = next
	}
}

func (p *Parser) atom() (*ast.Node, error) {
	atom := ast.NewAtom()
	if err := atom.Push(p.advance()); err != nil {
		return nil, err
	}
	return atom, nil
}

func isOpen(tok *ast.Node) bool {
	return tok.Text() == "("
}

func isClose(tok *ast.Node) bool {
	return tok.Text() == ")"
}

// Parse builds the parse tree for the given lexemes. An empty sequence
// produces a Program node with no children.
func Parse(tokens []*ast.Node, opts ...Option) (*ast.Node, error) {
	return New(tokens, opts...).Parse()
}
