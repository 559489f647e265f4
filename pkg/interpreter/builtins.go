package interpreter

import (
	"io"
	"strings"

	"github.com/SamuelScheit/xlang/pkg/runtime"
)

// DefaultBuiltins returns the capabilities bound into a fresh environment.
func DefaultBuiltins() map[string]runtime.Value {
	return map[string]runtime.Value{
		"print": NewPrint(nil),
	}
}

// NewPrint builds the `print` builtin. It writes its arguments separated by
// single spaces and followed by a newline. A nil writer selects the stdout
// of the calling interpreter.
func NewPrint(w io.Writer) *runtime.NativeFunctionValue {
	return &runtime.NativeFunctionValue{
		Name:  "print",
		Arity: -1,
		Impl: func(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			out := w
			if out == nil {
				out = ctx.Stdout
			}
			parts := make([]string, 0, len(args))
			for _, arg := range args {
				parts = append(parts, runtime.Stringify(arg))
			}
			if _, err := io.WriteString(out, strings.Join(parts, " ")+"\n"); err != nil {
				return nil, err
			}
			return runtime.Undefined, nil
		},
	}
}
