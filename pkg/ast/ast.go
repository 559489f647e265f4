package ast

type NodeType string

const (
	NodeLiteral             NodeType = "Literal"
	NodeUnaryExpression     NodeType = "UnaryExpression"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeGroupingExpression  NodeType = "GroupingExpression"
	NodeIdentifier          NodeType = "Identifier"
	NodeAssignment          NodeType = "AssignmentExpression"
	NodeLogicalExpression   NodeType = "LogicalExpression"
	NodeCallExpression      NodeType = "CallExpression"
	NodeFunctionExpression  NodeType = "FunctionExpression"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeVarDeclaration      NodeType = "VarDeclaration"
	NodeBlockStatement      NodeType = "BlockStatement"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileStatement      NodeType = "WhileStatement"
	NodeForStatement        NodeType = "ForStatement"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeFunctionDeclaration NodeType = "FunctionDeclaration"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces. Expressions and statements are disjoint: an expression
// only appears at statement level wrapped in an ExpressionStatement.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Expressions

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literal holds a constant: bool, nil (null), float64 or string.
type Literal struct {
	nodeImpl
	expressionMarker

	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Value: value}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string
	Operand  Expression
	Postfix  bool
}

func NewUnaryExpression(operator string, operand Expression, postfix bool) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand, Postfix: postfix}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string
	Left     Expression
	Right    Expression
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type GroupingExpression struct {
	nodeImpl
	expressionMarker

	Expression Expression
}

func NewGroupingExpression(expr Expression) *GroupingExpression {
	return &GroupingExpression{nodeImpl: newNodeImpl(NodeGroupingExpression), Expression: expr}
}

type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Name  *Identifier
	Value Expression
}

func NewAssignmentExpression(name *Identifier, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

// LogicalExpression is `and` / `or`.
type LogicalExpression struct {
	nodeImpl
	expressionMarker

	Operator string
	Left     Expression
	Right    Expression
}

func NewLogicalExpression(operator string, left, right Expression) *LogicalExpression {
	return &LogicalExpression{nodeImpl: newNodeImpl(NodeLogicalExpression), Operator: operator, Left: left, Right: right}
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Callee    Expression
	Arguments []Expression
}

func NewCallExpression(callee Expression, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: args}
}

// FunctionExpression is an anonymous function. The parser never produces it;
// it exists for programs assembled directly from nodes.
type FunctionExpression struct {
	nodeImpl
	expressionMarker

	Params []*Identifier
	Body   []Statement
}

func NewFunctionExpression(params []*Identifier, body []Statement) *FunctionExpression {
	return &FunctionExpression{nodeImpl: newNodeImpl(NodeFunctionExpression), Params: params, Body: body}
}

// Statements

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type VarDeclaration struct {
	nodeImpl
	statementMarker

	Name        *Identifier
	Initializer Expression
}

func NewVarDeclaration(name *Identifier, initializer Expression) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name, Initializer: initializer}
}

type BlockStatement struct {
	nodeImpl
	statementMarker

	Body []Statement
}

func NewBlockStatement(body []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression
	Then      Statement
	Else      Statement
}

func NewIfStatement(condition Expression, then, otherwise Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: otherwise}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression
	Body      Statement
}

func NewWhileStatement(condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

// ForStatement keeps the C-style loop intact instead of lowering it to a
// while loop. Every header part is optional.
type ForStatement struct {
	nodeImpl
	statementMarker

	Initializer Statement
	Condition   Expression
	Increment   Expression
	Body        Statement
}

func NewForStatement(initializer Statement, condition, increment Expression, body Statement) *ForStatement {
	return &ForStatement{nodeImpl: newNodeImpl(NodeForStatement), Initializer: initializer, Condition: condition, Increment: increment, Body: body}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

type FunctionDeclaration struct {
	nodeImpl
	statementMarker

	ID     *Identifier
	Params []*Identifier
	Body   []Statement
}

func NewFunctionDeclaration(id *Identifier, params []*Identifier, body []Statement) *FunctionDeclaration {
	return &FunctionDeclaration{nodeImpl: newNodeImpl(NodeFunctionDeclaration), ID: id, Params: params, Body: body}
}
