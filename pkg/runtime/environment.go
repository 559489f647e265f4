package runtime

import (
	"fmt"
	"sort"
)

// Environment is a flat name-to-value mapping. There are no nested scopes:
// a function call works on a Clone of its caller's environment.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnvironmentFrom creates an environment holding a copy of bindings.
func NewEnvironmentFrom(bindings map[string]Value) *Environment {
	env := &Environment{values: make(map[string]Value, len(bindings))}
	for k, v := range bindings {
		env.values[k] = v
	}
	return env
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent environment with the same bindings.
func (e *Environment) Clone() *Environment {
	return NewEnvironmentFrom(e.values)
}

// Define inserts or overwrites a binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign stores value under name, creating the binding when absent.
func (e *Environment) Assign(name string, value Value) {
	e.values[name] = value
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Get retrieves a binding.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("Variable not found: %s", name)
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}
