package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node in parenthesized prefix form, e.g. `(+ 1 (* 2 3))`.
// Statements are rendered the same way, so a whole program prints as one
// form per line.
func Print(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

// PrintProgram renders each statement on its own line.
func PrintProgram(program []Statement) string {
	lines := make([]string, len(program))
	for i, stmt := range program {
		lines[i] = Print(stmt)
	}
	return strings.Join(lines, "\n")
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("nil")
	case *Literal:
		b.WriteString(literalString(n.Value))
	case *Identifier:
		b.WriteString(n.Name)
	case *UnaryExpression:
		if n.Postfix {
			parenthesize(b, "postfix"+n.Operator, n.Operand)
			return
		}
		parenthesize(b, n.Operator, n.Operand)
	case *BinaryExpression:
		parenthesize(b, n.Operator, n.Left, n.Right)
	case *LogicalExpression:
		parenthesize(b, n.Operator, n.Left, n.Right)
	case *GroupingExpression:
		parenthesize(b, "group", n.Expression)
	case *AssignmentExpression:
		parenthesize(b, "= "+n.Name.Name, n.Value)
	case *CallExpression:
		nodes := make([]Node, 0, len(n.Arguments)+1)
		nodes = append(nodes, n.Callee)
		for _, arg := range n.Arguments {
			nodes = append(nodes, arg)
		}
		parenthesize(b, "call", nodes...)
	case *FunctionExpression:
		parenthesize(b, "fun ("+joinIdentifiers(n.Params)+")", statementsToNodes(n.Body)...)
	case *ExpressionStatement:
		parenthesize(b, ";", n.Expression)
	case *VarDeclaration:
		if n.Initializer == nil {
			parenthesize(b, "var "+n.Name.Name)
			return
		}
		parenthesize(b, "var "+n.Name.Name, n.Initializer)
	case *BlockStatement:
		parenthesize(b, "block", statementsToNodes(n.Body)...)
	case *IfStatement:
		if n.Else == nil {
			parenthesize(b, "if", n.Condition, n.Then)
			return
		}
		parenthesize(b, "if-else", n.Condition, n.Then, n.Else)
	case *WhileStatement:
		parenthesize(b, "while", n.Condition, n.Body)
	case *ForStatement:
		parenthesize(b, "for", n.Initializer, n.Condition, n.Increment, n.Body)
	case *ReturnStatement:
		if n.Value == nil {
			parenthesize(b, "return")
			return
		}
		parenthesize(b, "return", n.Value)
	case *FunctionDeclaration:
		parenthesize(b, "fun "+n.ID.Name+"("+joinIdentifiers(n.Params)+")", statementsToNodes(n.Body)...)
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func parenthesize(b *strings.Builder, head string, nodes ...Node) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, node := range nodes {
		b.WriteByte(' ')
		writeNode(b, node)
	}
	b.WriteByte(')')
}

func statementsToNodes(stmts []Statement) []Node {
	nodes := make([]Node, len(stmts))
	for i, stmt := range stmts {
		nodes[i] = stmt
	}
	return nodes
}

func joinIdentifiers(ids []*Identifier) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return strings.Join(names, " ")
}

func literalString(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
