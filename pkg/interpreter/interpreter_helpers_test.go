package interpreter

import (
	"bytes"
	"testing"

	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/parser"
	"github.com/SamuelScheit/xlang/pkg/runtime"
)

// testingT captures the subset of testing.T used by test helpers.
type testingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

func mustParse(t testingT, source string) []ast.Statement {
	t.Helper()
	program, _, err := parser.ParseSource(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return program
}

// evalProgram runs program in a fresh environment and returns the result
// together with everything print wrote.
func evalProgram(t testingT, program []ast.Statement, opts Options) (runtime.Value, string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.Stdout = &out
	val, err := New(program, opts).Run()
	return val, out.String(), err
}

func evalSource(t *testing.T, source string) (runtime.Value, string) {
	t.Helper()
	val, out, err := evalProgram(t, mustParse(t, source), Options{})
	if err != nil {
		t.Fatalf("evaluate %q: %v", source, err)
	}
	return val, out
}

func expectNumber(t *testing.T, val runtime.Value, want float64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok || num.Val != want {
		t.Fatalf("expected number %v, got %#v", want, val)
	}
}

func expectRuntimeError(t *testing.T, source string, message string) {
	t.Helper()
	_, _, err := evalProgram(t, mustParse(t, source), Options{})
	rtErr, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("evaluate %q: expected RuntimeError, got %v", source, err)
	}
	if rtErr.Message != message {
		t.Fatalf("evaluate %q: message %q, want %q", source, rtErr.Message, message)
	}
}
