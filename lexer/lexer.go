package lexer

import (
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/xiam/lispish/ast"
)

type config struct {
	permissive bool
	whitespace bool
	logger     *slog.Logger
}

// Option configures a Lexer
type Option func(c *config)

// WithPermissiveIdentifiers accepts any run of characters that are not
// whitespace, a double quote or a parenthesis as an identifier.
func WithPermissiveIdentifiers(flag bool) Option {
	return func(c *config) {
		c.permissive = flag
	}
}

// WithExtendedWhitespace skips tabs, carriage returns and form feeds
// besides spaces and newlines.
func WithExtendedWhitespace(flag bool) Option {
	return func(c *config) {
		c.whitespace = flag
	}
}

// WithLogger traces every lexeme at debug level. A nil logger disables
// logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	src        []byte
	rules      []rule
	whitespace bool

	offset int
	line   int
	col    int

	logger *slog.Logger
}

// New initializes a Lexer over the given source
func New(src []byte, opts ...Option) *Lexer {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Lexer{
		src:        src,
		rules:      rules(cfg.permissive),
		whitespace: cfg.whitespace,
		line:       1,
		col:        1,
		logger:     cfg.logger,
	}
}

// Pos returns the line and column of the scan cursor
func (lx *Lexer) Pos() (int, int) {
	return lx.line, lx.col
}

// Next returns the next lexeme, skipping whitespace. It returns io.EOF once
// the input is exhausted and a *LexError if the input at the cursor can't
// be matched.
func (lx *Lexer) Next() (*ast.Node, error) {
	for lx.offset < len(lx.src) {
		rest := lx.src[lx.offset:]

		for _, rl := range lx.rules {
			loc := rl.re.FindIndex(rest)
			if loc == nil || loc[1] == 0 {
				continue
			}
			text := string(rest[:loc[1]])
			node, err := ast.NewLexeme(rl.cat, text, lx.line, lx.col)
			if err != nil {
				return nil, err
			}
			lx.skip(rest[:loc[1]])
			lx.debug(node)
			return node, nil
		}

		r, w := utf8.DecodeRune(rest)
		if !isWhitespace(r, lx.whitespace) {
			return nil, &LexError{
				Offset: lx.offset,
				Line:   lx.line,
				Column: lx.col,
				Rune:   r,
			}
		}
		lx.skip(rest[:w])
	}
	return nil, io.EOF
}

// skip moves the cursor past the given bytes, updating line and column
func (lx *Lexer) skip(b []byte) {
	lx.offset += len(b)
	for len(b) > 0 {
		r, w := utf8.DecodeRune(b)
		if r == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		b = b[w:]
	}
}

func (lx *Lexer) debug(node *ast.Node) {
	if lx.logger == nil {
		return
	}
	line, col := node.Pos()
	lx.logger.Debug("lexeme", "category", node.Category().String(), "text", node.Text(), "line", line, "col", col)
}

// Tokenize takes an array of bytes and returns all the lexemes within it,
// or an error if some part of the input can't be identified.
func Tokenize(src []byte, opts ...Option) ([]*ast.Node, error) {
	tokens := []*ast.Node{}

	lx := New(src, opts...)
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
