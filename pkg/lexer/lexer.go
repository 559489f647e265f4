// Package lexer turns xlang source text into a token sequence in a single
// pass. There is no error recovery: the first malformed construct aborts the
// whole run with a *LexicalError.
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/SamuelScheit/xlang/pkg/token"
)

// LexicalError reports an unterminated string or an unrecognised character.
type LexicalError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("[line %d:%d] lexical error: %s", e.Line, e.Column, e.Message)
}

// Lexer holds the cursor state for one tokenization run.
type Lexer struct {
	src    string
	tokens []token.Token

	start     int // byte offset of the current token
	cur       int // byte offset of the next rune to consume
	line      int
	col       int // counted in runes
	startLine int
	startCol  int
}

// New creates a lexer over source.
func New(source string) *Lexer {
	return &Lexer{src: source, line: 1, col: 1}
}

// Lex tokenizes source. The result always ends with exactly one EOF token.
func Lex(source string) ([]token.Token, error) {
	return New(source).Tokenize()
}

// Tokenize consumes the whole input.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	for !l.atEnd() {
		l.start = l.cur
		l.startLine, l.startCol = l.line, l.col
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, token.New(token.EOF, "", nil, l.line, l.col))
	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	c := l.advance()
	switch c {
	case '(':
		l.emit(token.LeftParen)
	case ')':
		l.emit(token.RightParen)
	case '{':
		l.emit(token.LeftBrace)
	case '}':
		l.emit(token.RightBrace)
	case ',':
		l.emit(token.Comma)
	case '.':
		l.emit(token.Dot)
	case ';':
		l.emit(token.Semicolon)
	case '*':
		l.emit(token.Star)
	case '%':
		l.emit(token.Percent)
	case '-':
		if l.match('-') {
			l.emit(token.Decrement)
		} else {
			l.emit(token.Minus)
		}
	case '+':
		if l.match('+') {
			l.emit(token.Increment)
		} else {
			l.emit(token.Plus)
		}
	case '!':
		if l.match('=') {
			l.emit(token.BangEqual)
		} else {
			l.emit(token.Bang)
		}
	case '=':
		switch {
		case l.match('='):
			l.emit(token.EqualEqual)
		case l.match('>'):
			l.emit(token.Arrow)
		default:
			l.emit(token.Equal)
		}
	case '<':
		if l.match('=') {
			l.emit(token.LessEqual)
		} else {
			l.emit(token.Less)
		}
	case '>':
		if l.match('=') {
			l.emit(token.GreaterEqual)
		} else {
			l.emit(token.Greater)
		}
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
		} else {
			l.emit(token.Slash)
		}
	case ' ', '\r', '\t', '\n':
		// advance already tracked the line break.
	case '"':
		return l.readString()
	default:
		switch {
		case isDigit(c):
			return l.readNumber()
		case isAlpha(c):
			l.readIdentifier()
		default:
			return l.errorf("Unexpected character %q.", c)
		}
	}
	return nil
}

func (l *Lexer) readString() error {
	for l.peek() != '"' && !l.atEnd() {
		l.advance()
	}
	if l.atEnd() {
		return l.errorf("Unterminated string.")
	}
	l.advance() // closing quote
	value := l.src[l.start+1 : l.cur-1]
	l.emitLiteral(token.String, value)
	return nil
}

func (l *Lexer) readNumber() error {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	value, err := strconv.ParseFloat(l.src[l.start:l.cur], 64)
	if err != nil {
		return l.errorf("Invalid number %q.", l.src[l.start:l.cur])
	}
	l.emitLiteral(token.Number, value)
	return nil
}

func (l *Lexer) readIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	l.emit(token.LookupIdent(l.src[l.start:l.cur]))
}

func (l *Lexer) emit(kind token.Kind) {
	l.emitLiteral(kind, nil)
}

func (l *Lexer) emitLiteral(kind token.Kind, literal any) {
	lexeme := l.src[l.start:l.cur]
	l.tokens = append(l.tokens, token.New(kind, lexeme, literal, l.startLine, l.startCol))
}

func (l *Lexer) errorf(format string, args ...any) error {
	return &LexicalError{Line: l.startLine, Column: l.startCol, Message: fmt.Sprintf(format, args...)}
}

// advance consumes one rune, keeping line/column in step with it.
func (l *Lexer) advance() rune {
	c, width := utf8.DecodeRuneInString(l.src[l.cur:])
	l.cur += width
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.cur] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.src[l.cur:])
	return c
}

func (l *Lexer) peekNext() rune {
	if l.atEnd() {
		return 0
	}
	_, width := utf8.DecodeRuneInString(l.src[l.cur:])
	if l.cur+width >= len(l.src) {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.src[l.cur+width:])
	return c
}

func (l *Lexer) atEnd() bool {
	return l.cur >= len(l.src)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
