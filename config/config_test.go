package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lispish/lexer"
	"github.com/xiam/lispish/parser"
)

func writeFile(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 41, cfg.Render.Width)
	assert.Equal(t, "  ", cfg.Render.Indent)
	assert.Equal(t, ColorAuto, cfg.Render.Color)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.False(t, cfg.Lexer.PermissiveIdentifiers)
	assert.False(t, cfg.Lexer.ExtendedWhitespace)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
[lexer]
permissive_identifiers = true
extended_whitespace = true

[render]
width = 30
color = "off"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Lexer.PermissiveIdentifiers)
	assert.Equal(t, 30, cfg.Render.Width)
	assert.Equal(t, "  ", cfg.Render.Indent)
	assert.Equal(t, ColorOff, cfg.Render.Color)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)

	tokens, err := lexer.Tokenize([]byte("@#$\t"), cfg.LexerOptions()...)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestLoadErrors(t *testing.T) {
	testCases := []string{
		`[render]
width = 0`,
		`[render]
color = "sometimes"`,
		`[render]
indent = "--"`,
		`[parser]
max_depth = -1`,
		`[lexer
permissive_identifiers = true`,
	}

	for i := range testCases {
		path := writeFile(t, t.TempDir(), testCases[i])
		_, err := Load(path)
		assert.Error(t, err, "config %q", testCases[i])
		t.Log(err)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := Find(nested)
	require.NoError(t, err)
	if path != "" {
		// a lispish.toml above the temp directory, nothing to assert
		t.Skipf("found unrelated %s", path)
	}

	expected := writeFile(t, root, "")
	path, err = Find(nested)
	require.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Parser.MaxDepth = 1

	tokens, err := lexer.Tokenize([]byte(`((x))`), cfg.LexerOptions()...)
	require.NoError(t, err)
	_, err = parser.Parse(tokens, cfg.ParserOptions()...)
	assert.ErrorIs(t, err, parser.ErrMaxDepth)

	assert.False(t, cfg.RenderOptions(false).Color)
	assert.True(t, cfg.RenderOptions(true).Color)

	cfg.Render.Color = ColorOn
	assert.True(t, cfg.RenderOptions(false).Color)

	cfg.Render.Color = ColorOff
	opts := cfg.RenderOptions(true)
	assert.False(t, opts.Color)
	assert.Equal(t, 41, opts.Width)
}
