// Package config loads the lispish.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xiam/lispish/ast"
	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

// FileName is the name Find looks for
const FileName = "lispish.toml"

// Color modes
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config is the decoded contents of a lispish.toml file
type Config struct {
	Lexer  LexerConfig  `toml:"lexer"`
	Parser ParserConfig `toml:"parser"`
	Render RenderConfig `toml:"render"`
}

// LexerConfig holds the [lexer] table
type LexerConfig struct {
	PermissiveIdentifiers bool `toml:"permissive_identifiers"`
	ExtendedWhitespace    bool `toml:"extended_whitespace"`
}

// ParserConfig holds the [parser] table
type ParserConfig struct {
	// MaxDepth bounds list nesting, 0 means unbounded.
	MaxDepth int `toml:"max_depth"`
}

// RenderConfig holds the [render] table. Color is one of auto, on or off.
type RenderConfig struct {
	Width  int    `toml:"width"`
	Indent string `toml:"indent"`
	Color  string `toml:"color"`
}

// Default returns the configuration used when no file is found
func Default() Config {
	return Config{
		Parser: ParserConfig{
			MaxDepth: parser.DefaultMaxDepth,
		},
		Render: RenderConfig{
			Width:  ast.DefaultWidth,
			Indent: ast.DefaultIndent,
			Color:  ColorAuto,
		},
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find walks up from startDir looking for FileName. It returns an empty
// path and no error when there is none.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("[parser].max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	if c.Render.Width <= 0 {
		return fmt.Errorf("[render].width must be positive, got %d", c.Render.Width)
	}
	if strings.TrimSpace(c.Render.Indent) != "" {
		return fmt.Errorf("[render].indent must only contain whitespace, got %q", c.Render.Indent)
	}
	switch c.Render.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("[render].color must be one of auto, on, off, got %q", c.Render.Color)
	}
	return nil
}

// LexerOptions returns the tokenizer options for this configuration
func (c Config) LexerOptions() []lexer.Option {
	return []lexer.Option{
		lexer.WithPermissiveIdentifiers(c.Lexer.PermissiveIdentifiers),
		lexer.WithExtendedWhitespace(c.Lexer.ExtendedWhitespace),
	}
}

// ParserOptions returns the parser options for this configuration
func (c Config) ParserOptions() []parser.Option {
	return []parser.Option{
		parser.WithMaxDepth(c.Parser.MaxDepth),
	}
}

// RenderOptions returns the print options for this configuration. isTTY
// resolves the "auto" color mode.
func (c Config) RenderOptions(isTTY bool) ast.PrintOptions {
	return ast.PrintOptions{
		Width:  c.Render.Width,
		Indent: c.Render.Indent,
		Color:  c.Render.Color == ColorOn || (c.Render.Color == ColorAuto && isTTY),
	}
}
