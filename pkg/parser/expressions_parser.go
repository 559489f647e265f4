package parser

import (
	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/token"
)

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

// assignment is right-associative. A non-identifier target is reported as
// a warning and the left-hand side is kept as the expression.
func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Equal) {
		return expr, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if id, ok := expr.(*ast.Identifier); ok {
		return ast.NewAssignmentExpression(id, value), nil
	}
	p.warn(equals, "Invalid assignment target.")
	return expr, nil
}

func (p *Parser) or() (ast.Expression, error) {
	return p.logical(token.Or, p.and)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.logical(token.And, p.equality)
}

func (p *Parser) logical(kind token.Kind, next func() (ast.Expression, error)) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		operator := p.previous().Lexeme
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogicalExpression(normalizeKeyword(kind, operator), expr, right)
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(p.additive, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) additive() (ast.Expression, error) {
	return p.binary(p.multiplicative, token.Minus, token.Plus)
}

func (p *Parser) multiplicative() (ast.Expression, error) {
	return p.binary(p.preUnary, token.Slash, token.Star, token.Percent)
}

// binary folds a left-leaning chain of next-level operands joined by any of
// the given operators.
func (p *Parser) binary(next func() (ast.Expression, error), operators ...token.Kind) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous().Lexeme
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpression(operator, expr, right)
	}
	return expr, nil
}

// preUnary parses an operand and wraps it when a postfix `++`/`--` follows.
func (p *Parser) preUnary() (ast.Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	if p.match(token.Increment, token.Decrement) {
		return ast.NewUnaryExpression(p.previous().Lexeme, expr, true), nil
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(token.Bang, token.Minus, token.Plus, token.Increment, token.Decrement) {
		operator := p.previous().Lexeme
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(operator, operand, false), nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(token.LeftParen) {
		if expr, err = p.finishCall(expr); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, error) {
	args := make([]ast.Expression, 0)
	if !p.check(token.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after arguments."); err != nil {
		return nil, err
	}
	return ast.NewCallExpression(callee, args), nil
}

func (p *Parser) primary() (ast.Expression, error) {
	switch {
	case p.match(token.False):
		return ast.NewLiteral(false), nil
	case p.match(token.True):
		return ast.NewLiteral(true), nil
	case p.match(token.Null):
		return ast.NewLiteral(nil), nil
	case p.match(token.Number, token.String):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.match(token.Identifier):
		return ast.NewIdentifier(p.previous().Lexeme), nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGroupingExpression(expr), nil
	}
	return nil, newSyntaxError(p.peek(), "Expected expression.")
}

// normalizeKeyword gives keyword operators their canonical lowercase
// spelling, since keywords match regardless of source casing.
func normalizeKeyword(kind token.Kind, lexeme string) string {
	if kind.IsKeyword() {
		return kind.String()
	}
	return lexeme
}
