package interpreter

import (
	"fmt"

	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return runtime.FromLiteral(n.Value)
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.Identifier:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, &RuntimeError{Message: err.Error()}
		}
		return val, nil
	case *ast.AssignmentExpression:
		val, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Assign(n.Name.Name, val)
		return val, nil
	case *ast.LogicalExpression:
		return i.evaluateLogicalExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.CallExpression:
		return i.evaluateCallExpression(n, env)
	case *ast.FunctionExpression:
		return runtime.NewFunctionFromExpression(n), nil
	case nil:
		return nil, newRuntimeError("nil expression")
	default:
		return nil, newRuntimeError("unsupported expression type: %s", n.NodeType())
	}
}

// evaluateLogicalExpression always evaluates both operands before choosing
// one of them.
func (i *Interpreter) evaluateLogicalExpression(expr *ast.LogicalExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case "and":
		if !runtime.Truthy(left) {
			return left, nil
		}
		return right, nil
	case "or":
		if runtime.Truthy(left) {
			return left, nil
		}
		return right, nil
	default:
		return nil, newRuntimeError("Unknown operator: %s", expr.Operator)
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(expr.Operator, left, right)
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	return applyUnaryOperator(expr.Operator, operand)
}

func (i *Interpreter) evaluateCallExpression(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpression(call.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	switch fn := callee.(type) {
	case *runtime.NativeFunctionValue:
		return i.callNativeFunction(fn, args, env)
	case *runtime.FunctionValue:
		return i.invokeFunction(fn, args, env)
	default:
		return nil, newRuntimeError("Can only call functions.")
	}
}

func (i *Interpreter) callNativeFunction(fn *runtime.NativeFunctionValue, args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if fn.Arity >= 0 && len(args) != fn.Arity {
		return nil, newRuntimeError("%s expects %d arguments, got %d", fn.Name, fn.Arity, len(args))
	}
	ctx := &runtime.NativeCallContext{Env: env, Stdout: i.stdout}
	result, err := fn.Impl(ctx, args)
	if err != nil {
		if _, ok := err.(*RuntimeError); ok {
			return nil, err
		}
		return nil, &RuntimeError{Message: fmt.Sprintf("%s: %v", fn.Name, err), Cause: err}
	}
	if result == nil {
		return runtime.Undefined, nil
	}
	return result, nil
}

// invokeFunction evaluates a user function body against a flat copy of the
// caller's environment. Parameters without an argument are undefined and
// extra arguments are dropped. Nothing the body assigns is visible to the
// caller.
func (i *Interpreter) invokeFunction(fn *runtime.FunctionValue, args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if i.maxDepth > 0 && i.depth >= i.maxDepth {
		return nil, newRuntimeError("Maximum call depth exceeded")
	}
	i.depth++
	defer func() { i.depth-- }()

	callEnv := env.Clone()
	for idx, param := range fn.Params {
		if idx < len(args) {
			callEnv.Define(param.Name, args[idx])
		} else {
			callEnv.Define(param.Name, runtime.Undefined)
		}
	}
	i.log.Trace("Calling function", "name", runtime.Stringify(fn), "args", len(args), "depth", i.depth)
	return i.evaluateStatements(fn.Body, callEnv)
}
