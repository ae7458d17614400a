package ast

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWidth is the column at which the text of a node starts
	DefaultWidth = 41

	// DefaultIndent is added once per tree level
	DefaultIndent = "  "

	tokenWidth = 20
)

// PrintOptions controls how trees and token lists are rendered
type PrintOptions struct {
	Width  int
	Indent string
	Color  bool
}

// DefaultPrintOptions returns the options used by Print
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Width:  DefaultWidth,
		Indent: DefaultIndent,
	}
}

type palette struct {
	structural *color.Color
	lexeme     *color.Color
	text       *color.Color
}

func newPalette(enabled bool) *palette {
	if !enabled {
		return nil
	}
	p := &palette{
		structural: color.New(color.FgCyan, color.Bold),
		lexeme:     color.New(color.FgYellow),
		text:       color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.structural, p.lexeme, p.text} {
		c.EnableColor()
	}
	return p
}

func (p *palette) category(cat Category, s string) string {
	if p == nil {
		return s
	}
	if cat.IsStructural() {
		return p.structural.Sprint(s)
	}
	return p.lexeme.Sprint(s)
}

func (p *palette) value(s string) string {
	if p == nil || s == "" {
		return s
	}
	return p.text.Sprint(s)
}

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walkLevel(n, 0, fn)
}

func walkLevel(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		walkLevel(child, depth+1, fn)
	}
}

// Print displays a human-readable representation of a tree on stdout
func Print(n *Node) {
	_ = Fprint(os.Stdout, n, DefaultPrintOptions())
}

// Fprint writes one line per node: the category padded to the configured
// width, followed by the text. Each level is indented once.
func Fprint(w io.Writer, n *Node, opts PrintOptions) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	pal := newPalette(opts.Color)

	bw := bufio.NewWriter(w)
	var err error
	Walk(n, func(node *Node, depth int) bool {
		if err != nil {
			return false
		}
		prefix := strings.Repeat(opts.Indent, depth)
		_, err = fmt.Fprintf(bw, "%s%s%s\n", prefix, pad(pal, node.cat, opts.Width-runewidth.StringWidth(prefix)), pal.value(node.text))
		return true
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// FprintTokens writes one line per lexeme: "CATEGORY : text"
func FprintTokens(w io.Writer, tokens []*Node, opts PrintOptions) error {
	pal := newPalette(opts.Color)

	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(bw, "%s : %s\n", pad(pal, tok.cat, tokenWidth), pal.value(tok.text)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func pad(pal *palette, cat Category, width int) string {
	name := cat.String()
	if width < 0 {
		width = 0
	}
	filled := runewidth.FillRight(name, width)
	return pal.category(cat, name) + filled[len(name):]
}

// Encode transforms a tree back into canonical source text: lexemes are
// separated by a single space, except right after "(" and right before ")".
func Encode(n *Node) []byte {
	var buf strings.Builder
	var prev *Node
	Walk(n, func(node *Node, _ int) bool {
		if !node.IsLexeme() {
			return true
		}
		if prev != nil && !isOpen(prev) && !isClose(node) {
			buf.WriteByte(' ')
		}
		buf.WriteString(node.text)
		prev = node
		return true
	})
	return []byte(buf.String())
}

func isOpen(n *Node) bool {
	return n.cat == Literal && n.text == "("
}

func isClose(n *Node) bool {
	return n.cat == Literal && n.text == ")"
}
