package runtime

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/SamuelScheit/xlang/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// UndefinedValue is produced by statements without a value, by functions
// that yield nothing and by parameters that received no argument.
type UndefinedValue struct{}

func (UndefinedValue) Kind() Kind { return KindUndefined }

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// NumberValue is the only numeric type; arithmetic follows float64 rules.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Functions
//-----------------------------------------------------------------------------

// FunctionValue binds a user function to its declaring node. There is no
// captured environment: a call sees a snapshot of the caller's bindings.
type FunctionValue struct {
	Name   string
	Params []*ast.Identifier
	Body   []ast.Statement

	// Declaration is the node the function came from, either a
	// *ast.FunctionDeclaration or a *ast.FunctionExpression.
	Declaration ast.Node
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// NewFunctionFromDeclaration wraps a declaration statement.
func NewFunctionFromDeclaration(decl *ast.FunctionDeclaration) *FunctionValue {
	return &FunctionValue{Name: decl.ID.Name, Params: decl.Params, Body: decl.Body, Declaration: decl}
}

// NewFunctionFromExpression wraps an anonymous function expression.
func NewFunctionFromExpression(expr *ast.FunctionExpression) *FunctionValue {
	return &FunctionValue{Params: expr.Params, Body: expr.Body, Declaration: expr}
}

// NativeCallContext gives host functions access to the calling evaluation.
type NativeCallContext struct {
	Env    *Environment
	Stdout io.Writer
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

// NativeFunctionValue is a host-provided callable. Arity < 0 means variadic.
type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v *NativeFunctionValue) Kind() Kind { return KindNativeFunction }

//-----------------------------------------------------------------------------
// Utility helpers
//-----------------------------------------------------------------------------

// Undefined and Null are the shared instances of the unit values.
var (
	Undefined Value = UndefinedValue{}
	Null      Value = NullValue{}
)

// FromLiteral converts a parsed literal constant into a runtime value.
func FromLiteral(value any) (Value, error) {
	switch v := value.(type) {
	case nil:
		return Null, nil
	case bool:
		return BoolValue{Val: v}, nil
	case float64:
		return NumberValue{Val: v}, nil
	case string:
		return StringValue{Val: v}, nil
	default:
		return nil, fmt.Errorf("unsupported literal type %T", value)
	}
}

// Truthy reports the boolean interpretation of a value: false, null,
// undefined, 0, NaN and "" are falsy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, UndefinedValue, NullValue:
		return false
	case BoolValue:
		return val.Val
	case NumberValue:
		return val.Val != 0 && !math.IsNaN(val.Val)
	case StringValue:
		return val.Val != ""
	default:
		return true
	}
}

// StrictEquals compares kind and value without coercion. Functions compare
// by identity and NaN is unequal to everything.
func StrictEquals(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case UndefinedValue, NullValue:
		return true
	case BoolValue:
		return av.Val == b.(BoolValue).Val
	case NumberValue:
		return av.Val == b.(NumberValue).Val
	case StringValue:
		return av.Val == b.(StringValue).Val
	case *FunctionValue:
		return av == b.(*FunctionValue)
	case *NativeFunctionValue:
		return av == b.(*NativeFunctionValue)
	default:
		return false
	}
}

// FormatNumber renders a number the way `print` shows it: shortest
// round-trip decimal, Infinity/-Infinity/NaN for the special values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Stringify renders any value for display.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil, UndefinedValue:
		return "undefined"
	case NullValue:
		return "null"
	case BoolValue:
		return strconv.FormatBool(val.Val)
	case NumberValue:
		return FormatNumber(val.Val)
	case StringValue:
		return val.Val
	case *FunctionValue:
		if val.Name == "" {
			return "<fn>"
		}
		return "<fn " + val.Name + ">"
	case *NativeFunctionValue:
		return "<native fn " + val.Name + ">"
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}
