// Package parser builds xlang statement trees from a token sequence using
// recursive descent with one level of precedence per binary operator group.
//
// The parser keeps one token of lookahead and never backtracks. The first
// grammar mismatch aborts the parse with a *SyntaxError; there is no
// statement-level recovery.
package parser

import (
	"fmt"

	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/lexer"
	"github.com/SamuelScheit/xlang/pkg/token"
)

// SyntaxError reports a grammar mismatch at a token.
type SyntaxError struct {
	Line    int
	Column  int
	Lexeme  string
	AtEnd   bool
	Message string
}

func (e *SyntaxError) Error() string {
	where := fmt.Sprintf("at '%s'", e.Lexeme)
	if e.AtEnd {
		where = "at end"
	}
	return fmt.Sprintf("[line %d:%d] syntax error %s: %s", e.Line, e.Column, where, e.Message)
}

func newSyntaxError(tok token.Token, message string) *SyntaxError {
	return &SyntaxError{
		Line:    tok.Line,
		Column:  tok.Column,
		Lexeme:  tok.Lexeme,
		AtEnd:   tok.Kind == token.EOF,
		Message: message,
	}
}

// Parser consumes a token sequence produced by the lexer.
type Parser struct {
	tokens  []token.Token
	current int

	// Warnings collects reported-but-not-fatal problems such as an invalid
	// assignment target.
	Warnings []*SyntaxError
}

// New creates a parser. A missing trailing EOF token is supplied.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		line, col := 1, 1
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			line, col = last.Line, last.Column+len(last.Lexeme)
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, "", nil, line, col))
	}
	return &Parser{tokens: tokens}
}

// Parse parses tokens into a program.
func Parse(tokens []token.Token) ([]ast.Statement, error) {
	return New(tokens).Parse()
}

// ParseSource lexes and parses source in one step, returning any warnings
// reported along the way.
func ParseSource(source string) ([]ast.Statement, []*SyntaxError, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, nil, err
	}
	p := New(tokens)
	program, err := p.Parse()
	if err != nil {
		return nil, p.Warnings, err
	}
	return program, p.Warnings, nil
}

// Parse reads statements until end of input.
func (p *Parser) Parse() ([]ast.Statement, error) {
	program := make([]ast.Statement, 0)
	for !p.atEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

//-----------------------------------------------------------------------------
// Token cursor
//-----------------------------------------------------------------------------

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, newSyntaxError(p.peek(), message)
}

func (p *Parser) warn(tok token.Token, message string) {
	p.Warnings = append(p.Warnings, newSyntaxError(tok, message))
}
