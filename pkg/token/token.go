package token

import (
	"fmt"
	"strings"
)

// Kind identifies the lexical category of a token.
type Kind int

const (
	EOF Kind = iota

	// Comparison and equality.
	Bang
	BangEqual
	Equal
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Arrow

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Else
	False
	For
	If
	Null
	Or
	Return
	This
	True
	Var
	While
	Fun

	// Punctuation.
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Percent

	Increment
	Decrement
)

var kindNames = [...]string{
	EOF:          "EOF",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Arrow:        "=>",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "and",
	Else:         "else",
	False:        "false",
	For:          "for",
	If:           "if",
	Null:         "null",
	Or:           "or",
	Return:       "return",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
	Fun:          "fun",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Percent:      "%",
	Increment:    "++",
	Decrement:    "--",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= And && k <= Fun
}

// keywords is keyed by the uppercased spelling; identifiers are uppercased
// before lookup so keyword matching ignores the source casing.
var keywords = map[string]Kind{
	"AND":    And,
	"ELSE":   Else,
	"FALSE":  False,
	"FOR":    For,
	"IF":     If,
	"NULL":   Null,
	"OR":     Or,
	"RETURN": Return,
	"THIS":   This,
	"TRUE":   True,
	"VAR":    Var,
	"WHILE":  While,
	"FUN":    Fun,
}

// LookupIdent returns the keyword kind for ident, or Identifier.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[strings.ToUpper(ident)]; ok {
		return kind
	}
	return Identifier
}

// Token is a classified, positioned lexical unit. Literal holds a float64
// for numbers, a string for strings and nil otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

// New builds a token.
func New(kind Kind, lexeme string, literal any, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line, Column: column}
}

// Pos renders the token position as line:column.
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s %q %v", t.Kind, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
