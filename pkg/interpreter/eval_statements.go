package interpreter

import (
	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return i.evaluateExpression(n.Expression, env)
	case *ast.VarDeclaration:
		return i.evaluateVarDeclaration(n, env)
	case *ast.BlockStatement:
		return i.evaluateStatements(n.Body, env)
	case *ast.IfStatement:
		return i.evaluateIfStatement(n, env)
	case *ast.WhileStatement:
		return i.evaluateWhileStatement(n, env)
	case *ast.ForStatement:
		return i.evaluateForStatement(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	case *ast.FunctionDeclaration:
		env.Define(n.ID.Name, runtime.NewFunctionFromDeclaration(n))
		return runtime.Undefined, nil
	case nil:
		return nil, newRuntimeError("nil statement")
	default:
		return nil, newRuntimeError("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateVarDeclaration(decl *ast.VarDeclaration, env *runtime.Environment) (runtime.Value, error) {
	value := runtime.Null
	if decl.Initializer != nil {
		val, err := i.evaluateExpression(decl.Initializer, env)
		if err != nil {
			return nil, err
		}
		value = val
	}
	env.Define(decl.Name.Name, value)
	return runtime.Undefined, nil
}

func (i *Interpreter) evaluateIfStatement(stmt *ast.IfStatement, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(cond) {
		return i.evaluateStatement(stmt.Then, env)
	}
	if stmt.Else != nil {
		return i.evaluateStatement(stmt.Else, env)
	}
	return runtime.Undefined, nil
}

func (i *Interpreter) evaluateWhileStatement(loop *ast.WhileStatement, env *runtime.Environment) (runtime.Value, error) {
	result := runtime.Undefined
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(cond) {
			return result, nil
		}
		val, err := i.evaluateStatement(loop.Body, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
}

// evaluateForStatement runs the initializer once, then repeats condition,
// body and increment. A missing condition never ends the loop.
func (i *Interpreter) evaluateForStatement(loop *ast.ForStatement, env *runtime.Environment) (runtime.Value, error) {
	if loop.Initializer != nil {
		if _, err := i.evaluateStatement(loop.Initializer, env); err != nil {
			return nil, err
		}
	}
	result := runtime.Undefined
	for {
		if loop.Condition != nil {
			cond, err := i.evaluateExpression(loop.Condition, env)
			if err != nil {
				return nil, err
			}
			if !runtime.Truthy(cond) {
				return result, nil
			}
		}
		val, err := i.evaluateStatement(loop.Body, env)
		if err != nil {
			return nil, err
		}
		result = val
		if loop.Increment != nil {
			if _, err := i.evaluateExpression(loop.Increment, env); err != nil {
				return nil, err
			}
		}
	}
}

// evaluateReturnStatement yields the returned value as the statement
// result. It does not stop the enclosing block: later statements still run
// and the last one decides the block's value.
func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) (runtime.Value, error) {
	if stmt.Value == nil {
		return runtime.Undefined, nil
	}
	return i.evaluateExpression(stmt.Value, env)
}
