package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value float64) *Literal {
	return NewLiteral(value)
}

func Str(value string) *Literal {
	return NewLiteral(value)
}

func Bool(value bool) *Literal {
	return NewLiteral(value)
}

func Null() *Literal {
	return NewLiteral(nil)
}

// Expression helpers.

func Un(operator string, operand Expression) *UnaryExpression {
	return NewUnaryExpression(operator, operand, false)
}

func Postfix(operator string, operand Expression) *UnaryExpression {
	return NewUnaryExpression(operator, operand, true)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Group(expr Expression) *GroupingExpression {
	return NewGroupingExpression(expr)
}

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(ID(name), value)
}

func And(left, right Expression) *LogicalExpression {
	return NewLogicalExpression("and", left, right)
}

func Or(left, right Expression) *LogicalExpression {
	return NewLogicalExpression("or", left, right)
}

func Call(callee Expression, args ...Expression) *CallExpression {
	if args == nil {
		args = []Expression{}
	}
	return NewCallExpression(callee, args)
}

func Lambda(params []string, body ...Statement) *FunctionExpression {
	return NewFunctionExpression(identifiers(params), body)
}

// Statement helpers.

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func Var(name string, initializer Expression) *VarDeclaration {
	return NewVarDeclaration(ID(name), initializer)
}

func Block(body ...Statement) *BlockStatement {
	if body == nil {
		body = []Statement{}
	}
	return NewBlockStatement(body)
}

func If(condition Expression, then Statement, otherwise Statement) *IfStatement {
	return NewIfStatement(condition, then, otherwise)
}

func While(condition Expression, body Statement) *WhileStatement {
	return NewWhileStatement(condition, body)
}

func For(initializer Statement, condition, increment Expression, body Statement) *ForStatement {
	return NewForStatement(initializer, condition, increment, body)
}

func Ret(value Expression) *ReturnStatement {
	return NewReturnStatement(value)
}

func Fn(name string, params []string, body ...Statement) *FunctionDeclaration {
	if body == nil {
		body = []Statement{}
	}
	return NewFunctionDeclaration(ID(name), identifiers(params), body)
}

func identifiers(names []string) []*Identifier {
	out := make([]*Identifier, len(names))
	for i, name := range names {
		out[i] = ID(name)
	}
	return out
}
