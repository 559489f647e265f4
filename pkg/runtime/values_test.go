package runtime

import (
	"math"
	"testing"

	"github.com/SamuelScheit/xlang/pkg/ast"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		value Value
		want  bool
	}{
		{BoolValue{Val: false}, false},
		{BoolValue{Val: true}, true},
		{Null, false},
		{Undefined, false},
		{NumberValue{Val: 0}, false},
		{NumberValue{Val: math.NaN()}, false},
		{NumberValue{Val: -1}, true},
		{StringValue{Val: ""}, false},
		{StringValue{Val: "0"}, true},
		{NewFunctionFromDeclaration(ast.Fn("f", nil)), true},
	}
	for _, tc := range cases {
		if got := Truthy(tc.value); got != tc.want {
			t.Fatalf("Truthy(%s) = %v, want %v", Stringify(tc.value), got, tc.want)
		}
	}
}

func TestStrictEquals(t *testing.T) {
	fn := NewFunctionFromDeclaration(ast.Fn("f", nil))
	cases := []struct {
		a, b Value
		want bool
	}{
		{NumberValue{Val: 1}, NumberValue{Val: 1}, true},
		{NumberValue{Val: 1}, StringValue{Val: "1"}, false},
		{StringValue{Val: "a"}, StringValue{Val: "a"}, true},
		{Null, Null, true},
		{Null, Undefined, false},
		{BoolValue{Val: false}, NumberValue{Val: 0}, false},
		{NumberValue{Val: math.NaN()}, NumberValue{Val: math.NaN()}, false},
		{fn, fn, true},
		{fn, NewFunctionFromDeclaration(ast.Fn("f", nil)), false},
	}
	for _, tc := range cases {
		if got := StrictEquals(tc.a, tc.b); got != tc.want {
			t.Fatalf("StrictEquals(%s, %s) = %v, want %v", Stringify(tc.a), Stringify(tc.b), got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{7, "7"},
		{0.5, "0.5"},
		{-2.25, "-2.25"},
		{1e21, "1e+21"},
		{123456789, "123456789"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := FormatNumber(math.NaN()); got != "NaN" {
		t.Fatalf("FormatNumber(NaN) = %q", got)
	}
}

func TestStringify(t *testing.T) {
	native := &NativeFunctionValue{Name: "print", Arity: -1}
	cases := []struct {
		value Value
		want  string
	}{
		{StringValue{Val: "raw"}, "raw"},
		{BoolValue{Val: true}, "true"},
		{Null, "null"},
		{Undefined, "undefined"},
		{NewFunctionFromDeclaration(ast.Fn("add", []string{"a"})), "<fn add>"},
		{NewFunctionFromExpression(ast.Lambda(nil)), "<fn>"},
		{native, "<native fn print>"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.value); got != tc.want {
			t.Fatalf("Stringify = %q, want %q", got, tc.want)
		}
	}
}

func TestFromLiteral(t *testing.T) {
	if v, err := FromLiteral(nil); err != nil || v.Kind() != KindNull {
		t.Fatalf("FromLiteral(nil) = %v, %v", v, err)
	}
	if v, err := FromLiteral(2.5); err != nil || v != (NumberValue{Val: 2.5}) {
		t.Fatalf("FromLiteral(2.5) = %v, %v", v, err)
	}
	if _, err := FromLiteral(3); err == nil {
		t.Fatalf("expected error for int literal")
	}
}
