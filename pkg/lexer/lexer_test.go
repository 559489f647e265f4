package lexer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/SamuelScheit/xlang/pkg/lexer"
	"github.com/SamuelScheit/xlang/pkg/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, source string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("Lex(%q) returned error: %v", source, err)
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Lex(%q) = %v, want %v", source, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lex(%q) token[%d] = %s, want %s (all: %v)", source, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestLexArithmetic(t *testing.T) {
	toks := expectKinds(t, "1 + 2 * 3",
		token.Number, token.Plus, token.Number, token.Star, token.Number, token.EOF)
	for i, want := range map[int]float64{0: 1, 2: 2, 4: 3} {
		if toks[i].Literal != want {
			t.Fatalf("token[%d] literal = %v, want %v", i, toks[i].Literal, want)
		}
	}
}

func TestLexOperators(t *testing.T) {
	expectKinds(t, "! != = == < <= > >= => ++ -- - + / * % , . ; ( ) { }",
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.Arrow,
		token.Increment, token.Decrement, token.Minus, token.Plus, token.Slash, token.Star, token.Percent,
		token.Comma, token.Dot, token.Semicolon,
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.EOF)
}

func TestLexKeywordsIgnoreCase(t *testing.T) {
	toks := expectKinds(t, "var VAR Fun while_ whilex _x and or null this",
		token.Var, token.Var, token.Fun, token.Identifier, token.Identifier, token.Identifier,
		token.And, token.Or, token.Null, token.This, token.EOF)
	if toks[3].Literal != nil {
		t.Fatalf("identifier should carry no literal, got %v", toks[3].Literal)
	}
	if toks[1].Lexeme != "VAR" {
		t.Fatalf("lexeme = %q, want VAR", toks[1].Lexeme)
	}
}

func TestLexNumbers(t *testing.T) {
	toks := expectKinds(t, "12.5 7. 0.25", token.Number, token.Number, token.Dot, token.Number, token.EOF)
	if toks[0].Literal != 12.5 {
		t.Fatalf("literal = %v, want 12.5", toks[0].Literal)
	}
	if toks[1].Lexeme != "7" {
		t.Fatalf("trailing dot should not be part of number, got %q", toks[1].Lexeme)
	}
	if v, ok := toks[3].Literal.(float64); !ok || math.Abs(v-0.25) > 1e-12 {
		t.Fatalf("literal = %v, want 0.25", toks[3].Literal)
	}
}

func TestLexStringSpansLines(t *testing.T) {
	toks := expectKinds(t, "\"a\nb\" x", token.String, token.Identifier, token.EOF)
	if toks[0].Literal != "a\nb" {
		t.Fatalf("string literal = %q", toks[0].Literal)
	}
	if toks[0].Lexeme != "\"a\nb\"" {
		t.Fatalf("string lexeme = %q", toks[0].Lexeme)
	}
	if toks[1].Line != 2 {
		t.Fatalf("identifier line = %d, want 2", toks[1].Line)
	}
}

func TestLexCommentsAndPositions(t *testing.T) {
	toks := expectKinds(t, "// header\n  foo / bar // trailing\nbaz",
		token.Identifier, token.Slash, token.Identifier, token.Identifier, token.EOF)
	cases := []struct {
		idx       int
		line, col int
	}{
		{0, 2, 3},
		{1, 2, 7},
		{2, 2, 9},
		{3, 3, 1},
	}
	for _, tc := range cases {
		if toks[tc.idx].Line != tc.line || toks[tc.idx].Column != tc.col {
			t.Fatalf("token[%d] %q at %s, want %d:%d", tc.idx, toks[tc.idx].Lexeme, toks[tc.idx].Pos(), tc.line, tc.col)
		}
	}
}

func TestLexEmptySource(t *testing.T) {
	expectKinds(t, "", token.EOF)
	expectKinds(t, "   \n\t// only a comment", token.EOF)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := lexer.Lex(`"abc`)
	var lexErr *lexer.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexicalError, got %v", err)
	}
	if lexErr.Line != 1 || lexErr.Column != 1 {
		t.Fatalf("error position = %d:%d, want 1:1", lexErr.Line, lexErr.Column)
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := lexer.Lex("var x = 1;\n  @")
	var lexErr *lexer.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexicalError, got %v", err)
	}
	if lexErr.Line != 2 || lexErr.Column != 3 {
		t.Fatalf("error position = %d:%d, want 2:3", lexErr.Line, lexErr.Column)
	}
}

func TestLexColumnsCountCharacters(t *testing.T) {
	toks := expectKinds(t, "\"héllo wörld\" x;",
		token.String, token.Identifier, token.Semicolon, token.EOF)
	if toks[0].Literal != "héllo wörld" {
		t.Fatalf("string literal = %#v", toks[0].Literal)
	}
	if toks[1].Line != 1 || toks[1].Column != 15 {
		t.Fatalf("identifier at %s, want 1:15", toks[1].Pos())
	}
	if toks[2].Column != 16 {
		t.Fatalf("semicolon at %s, want 1:16", toks[2].Pos())
	}
}

func TestLexUnexpectedMultibyteCharacter(t *testing.T) {
	_, err := lexer.Lex("x é")
	var lexErr *lexer.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexicalError, got %v", err)
	}
	if lexErr.Message != "Unexpected character 'é'." {
		t.Fatalf("message = %q", lexErr.Message)
	}
	if lexErr.Column != 3 {
		t.Fatalf("error column = %d, want 3", lexErr.Column)
	}
}

func TestLexDeterministic(t *testing.T) {
	src := `fun add(a, b) { a + b; } print(add(1, 2));`
	first, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	second, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token[%d] differs: %v vs %v", i, first[i], second[i])
		}
	}
}
