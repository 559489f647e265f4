package runtime

import (
	"reflect"
	"testing"
)

func TestEnvironmentDefineGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", NumberValue{Val: 1})
	got, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != (NumberValue{Val: 1}) {
		t.Fatalf("Get(x) = %#v, want 1", got)
	}
}

func TestEnvironmentGetMissing(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Get("nope"); err == nil || err.Error() != "Variable not found: nope" {
		t.Fatalf("Get(nope) error = %v", err)
	}
}

func TestEnvironmentAssignCreatesBinding(t *testing.T) {
	env := NewEnvironment()
	env.Assign("y", StringValue{Val: "v"})
	if !env.Has("y") {
		t.Fatalf("expected assign to create binding")
	}
}

func TestEnvironmentCloneIsIndependent(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", NumberValue{Val: 1})
	clone := env.Clone()
	clone.Assign("a", NumberValue{Val: 2})
	clone.Define("b", BoolValue{Val: true})

	got, _ := env.Get("a")
	if got != (NumberValue{Val: 1}) {
		t.Fatalf("original binding changed to %#v", got)
	}
	if env.Has("b") {
		t.Fatalf("clone leaked binding into original")
	}
	if clone.Len() != 2 {
		t.Fatalf("clone.Len() = %d, want 2", clone.Len())
	}
}

func TestEnvironmentKeysSorted(t *testing.T) {
	env := NewEnvironmentFrom(map[string]Value{"c": Null, "a": Null, "b": Null})
	if keys := env.Keys(); !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Fatalf("Keys() = %v", keys)
	}
	snap := env.Snapshot()
	delete(snap, "a")
	if !env.Has("a") {
		t.Fatalf("Snapshot shares storage with environment")
	}
}
