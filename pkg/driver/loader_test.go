package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelScheit/xlang/pkg/lexer"
	"github.com/SamuelScheit/xlang/pkg/parser"
	"github.com/SamuelScheit/xlang/pkg/token"
)

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.xl", "var x = 1;\nprint(x);\n")

	loader, err := NewLoader(4)
	require.NoError(t, err)

	program, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, program.Path)
	assert.Len(t, program.Statements, 2)
	assert.Equal(t, token.EOF, program.Tokens[len(program.Tokens)-1].Kind)
	assert.Equal(t, HashSource("var x = 1;\nprint(x);\n"), program.Hash)
	assert.Equal(t, 1, loader.Cached())
}

func TestLoaderCachesByContent(t *testing.T) {
	loader, err := NewLoader(4)
	require.NoError(t, err)

	first, err := loader.LoadSource("a.xl", "1 + 2;")
	require.NoError(t, err)
	second, err := loader.LoadSource("b.xl", "1 + 2;")
	require.NoError(t, err)

	assert.Equal(t, "b.xl", second.Path)
	assert.Equal(t, "a.xl", first.Path)
	assert.Same(t, first.Statements[0], second.Statements[0])
	assert.Equal(t, 1, loader.Cached())

	loader.Purge()
	assert.Equal(t, 0, loader.Cached())
}

func TestLoaderWithoutCache(t *testing.T) {
	loader, err := NewLoader(0)
	require.NoError(t, err)

	first, err := loader.LoadSource("a.xl", "x;")
	require.NoError(t, err)
	second, err := loader.LoadSource("a.xl", "x;")
	require.NoError(t, err)
	assert.NotSame(t, first.Statements[0], second.Statements[0])
	assert.Equal(t, 0, loader.Cached())
}

func TestLoaderReportsStageErrors(t *testing.T) {
	loader, err := NewLoader(4)
	require.NoError(t, err)

	_, err = loader.LoadSource("bad.xl", `"open`)
	var lexErr *lexer.LexicalError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "Unterminated string.", lexErr.Message)

	_, err = loader.LoadSource("bad.xl", "var 1;")
	var synErr *parser.SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, "Expect variable name.", synErr.Message)
	assert.Equal(t, 0, loader.Cached())

	_, err = loader.Load("does-not-exist.xl")
	require.Error(t, err)
}

func TestLoaderKeepsWarnings(t *testing.T) {
	loader, err := NewLoader(4)
	require.NoError(t, err)
	program, err := loader.LoadSource("w.xl", "1 = 2;")
	require.NoError(t, err)
	require.Len(t, program.Warnings, 1)
	assert.Equal(t, "Invalid assignment target.", program.Warnings[0].Message)
}
