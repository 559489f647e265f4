package ast

import "testing"

func TestPrint(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{Bin("+", Num(1), Bin("*", Num(2), Num(3))), "(+ 1 (* 2 3))"},
		{Group(Un("-", ID("x"))), "(group (- x))"},
		{Postfix("++", ID("i")), "(postfix++ i)"},
		{Assign("a", Str("s")), `(= a "s")`},
		{Or(Bool(true), Null()), "(or true null)"},
		{Call(ID("f"), Num(0.5)), "(call f 0.5)"},
		{Lambda([]string{"a", "b"}, Expr(ID("a"))), "(fun (a b) (; a))"},
		{Var("x", nil), "(var x)"},
		{Block(), "(block)"},
		{If(ID("c"), Expr(Num(1)), nil), "(if c (; 1))"},
		{While(ID("c"), Block(Expr(ID("x")))), "(while c (block (; x)))"},
		{For(nil, nil, nil, Expr(ID("x"))), "(for nil nil nil (; x))"},
		{Ret(nil), "(return)"},
		{Fn("add", []string{"a", "b"}, Expr(Bin("+", ID("a"), ID("b")))), "(fun add(a b) (; (+ a b)))"},
	}
	for _, tc := range cases {
		if got := Print(tc.node); got != tc.want {
			t.Fatalf("Print = %q, want %q", got, tc.want)
		}
	}
}

func TestDSLNormalizesEmptySlices(t *testing.T) {
	if call := Call(ID("f")); call.Arguments == nil {
		t.Fatalf("Call without arguments should carry an empty slice")
	}
	if fn := Fn("f", nil); fn.Params == nil || fn.Body == nil {
		t.Fatalf("Fn should carry empty params and body")
	}
	if fn := Fn("f", nil); fn.NodeType() != NodeFunctionDeclaration {
		t.Fatalf("unexpected node type %s", fn.NodeType())
	}
}
