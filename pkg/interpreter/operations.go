package interpreter

import (
	"math"

	"github.com/SamuelScheit/xlang/pkg/runtime"
)

func applyBinaryOperator(op string, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case "==":
		return runtime.BoolValue{Val: runtime.StrictEquals(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !runtime.StrictEquals(left, right)}, nil
	case "+":
		return addValues(left, right)
	case "-", "*", "/", "%":
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError("Operands of '%s' must be numbers, got %s and %s", op, left.Kind(), right.Kind())
		}
		return runtime.NumberValue{Val: arithmetic(op, l, r)}, nil
	case "<", "<=", ">", ">=":
		return compareValues(op, left, right)
	default:
		return nil, newRuntimeError("Unknown operator: %s", op)
	}
}

// addValues adds two numbers, or concatenates when either side is a string.
func addValues(left, right runtime.Value) (runtime.Value, error) {
	if l, r, ok := numberOperands(left, right); ok {
		return runtime.NumberValue{Val: l + r}, nil
	}
	_, ls := left.(runtime.StringValue)
	_, rs := right.(runtime.StringValue)
	if ls || rs {
		return runtime.StringValue{Val: runtime.Stringify(left) + runtime.Stringify(right)}, nil
	}
	return nil, newRuntimeError("Operands of '+' must be numbers or strings, got %s and %s", left.Kind(), right.Kind())
}

func arithmetic(op string, l, r float64) float64 {
	switch op {
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	default:
		return math.Mod(l, r)
	}
}

func compareValues(op string, left, right runtime.Value) (runtime.Value, error) {
	var cmp int
	if l, r, ok := numberOperands(left, right); ok {
		if math.IsNaN(l) || math.IsNaN(r) {
			return runtime.BoolValue{Val: false}, nil
		}
		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		}
	} else {
		ls, lok := left.(runtime.StringValue)
		rs, rok := right.(runtime.StringValue)
		if !lok || !rok {
			return nil, newRuntimeError("Operands of '%s' must be two numbers or two strings, got %s and %s", op, left.Kind(), right.Kind())
		}
		switch {
		case ls.Val < rs.Val:
			cmp = -1
		case ls.Val > rs.Val:
			cmp = 1
		}
	}
	var result bool
	switch op {
	case "<":
		result = cmp < 0
	case "<=":
		result = cmp <= 0
	case ">":
		result = cmp > 0
	default:
		result = cmp >= 0
	}
	return runtime.BoolValue{Val: result}, nil
}

// applyUnaryOperator handles `!` and `-`. Increment and decrement parse but
// have no runtime meaning, and unary plus is treated the same way.
func applyUnaryOperator(op string, operand runtime.Value) (runtime.Value, error) {
	switch op {
	case "!":
		return runtime.BoolValue{Val: !runtime.Truthy(operand)}, nil
	case "-":
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, newRuntimeError("Operand of '-' must be a number, got %s", operand.Kind())
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	default:
		return nil, newRuntimeError("Unknown operator: %s", op)
	}
}

func numberOperands(left, right runtime.Value) (float64, float64, bool) {
	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, false
	}
	return l.Val, r.Val, true
}
