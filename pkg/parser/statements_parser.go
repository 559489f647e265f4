package parser

import (
	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/token"
)

// statement is the full statement grammar. It is the entry point for
// top-level statements and for the single-statement bodies of if, while
// and for.
func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(token.Var):
		return p.varDeclaration()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.LeftBrace):
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStatement(body), nil
	case p.match(token.Fun):
		return p.functionDeclaration()
	default:
		return p.expressionStatement()
	}
}

// blockBodyStatement is the grammar for the direct children of a `{ }`
// block: expression statements only. Declarations and control flow inside
// a multi-statement block are a syntax error.
func (p *Parser) blockBodyStatement() (ast.Statement, error) {
	return p.expressionStatement()
}

// block parses statements up to the closing brace; the opening brace has
// already been consumed.
func (p *Parser) block() ([]ast.Statement, error) {
	body := make([]ast.Statement, 0)
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt, err := p.blockBodyStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.consume(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) varDeclaration() (ast.Statement, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(ast.NewIdentifier(name.Lexeme), initializer), nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	condition, err := p.parenthesizedCondition("if")
	if err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var otherwise ast.Statement
	if p.match(token.Else) {
		otherwise, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(condition, then, otherwise), nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	condition, err := p.parenthesizedCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(condition, body), nil
}

func (p *Parser) parenthesizedCondition(keyword string) (ast.Expression, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after '"+keyword+"'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after "+keyword+" condition."); err != nil {
		return nil, err
	}
	return condition, nil
}

func (p *Parser) forStatement() (ast.Statement, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var (
		initializer ast.Statement
		condition   ast.Expression
		increment   ast.Expression
		err         error
	)
	switch {
	case p.match(token.Semicolon):
	case p.match(token.Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	if !p.check(token.Semicolon) {
		if condition, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	if !p.check(token.RightParen) {
		if increment, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewForStatement(initializer, condition, increment, body), nil
}

func (p *Parser) returnStatement() (ast.Statement, error) {
	var value ast.Expression
	if !p.check(token.Semicolon) {
		var err error
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(value), nil
}

func (p *Parser) functionDeclaration() (ast.Statement, error) {
	name, err := p.consume(token.Identifier, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	params := make([]*ast.Identifier, 0)
	if !p.check(token.RightParen) {
		for {
			param, err := p.consume(token.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewIdentifier(param.Lexeme))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDeclaration(ast.NewIdentifier(name.Lexeme), params, body), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}
