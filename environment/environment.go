// Package environment implements the lexically nested name→value scopes
// the evaluator reads and writes. It is the spec's Environment module,
// adapted from the teacher's scope package: the same parent-chain lookup
// and define/assign split, with the const/let/type bookkeeping the teacher
// carries for its richer language dropped (this language has none of
// that — spec.md's Non-goals exclude static typing), and with the
// teacher's Scope.Copy()-on-return workaround for closures replaced by a
// direct shared pointer, per spec.md §3: "a child environment holds a
// shared (non-owning) handle to its enclosing environment."
package environment

import (
	"fmt"
	"io"

	"github.com/devkarthik/quill/object"
)

// Environment is one scope frame: its own bindings plus a (possibly nil)
// pointer to the enclosing scope.
type Environment struct {
	values map[string]object.Value
	parent *Environment
}

// New creates a scope enclosed by parent. parent is nil for the global
// scope.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), parent: parent}
}

// Parent returns the enclosing scope, or nil at the global scope.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define unconditionally binds name to value in this environment, per
// spec.md §3's invariant that "definition always writes into the current
// environment" — redeclaring a name already bound here simply replaces it.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get resolves name by walking outward from this environment. If name is
// bound but still holds the Absent sentinel (declared without an
// initializer), it writes an "uninitialized" diagnostic to diag and
// returns Absent. If name is bound nowhere in the chain, it writes an
// "undefined variable" diagnostic to diag and also returns Absent. Neither
// case aborts the run — this is the spec's deliberately lenient
// Environment behavior (spec.md §4.4, §9 open question).
func (e *Environment) Get(name string, diag io.Writer) object.Value {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			if _, uninitialized := v.(object.Absent); uninitialized {
				fmt.Fprintf(diag, "Variable '%s' used before assignment.\n", name)
			}
			return v
		}
	}
	fmt.Fprintf(diag, "Undefined variable '%s'.\n", name)
	return object.Absent{}
}

// Assign walks outward and writes value into the nearest environment that
// already defines name. If no environment in the chain defines it, it
// writes a "can't (re-)assign undefined variable" diagnostic to diag and
// leaves every scope untouched — again, lenient rather than fatal.
func (e *Environment) Assign(name string, value object.Value, diag io.Writer) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return
		}
	}
	fmt.Fprintf(diag, "Can't (re-)assign undefined variable '%s'.\n", name)
}
