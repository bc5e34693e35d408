// Package function implements the language's sole Callable value: a
// user-defined function capturing its declaration-time environment. It
// bridges object (the value domain) and environment (the scope chain) the
// way the teacher's function package bridges objects and scope — by
// depending on both without either of those packages needing to know
// Function exists.
package function

import (
	"fmt"

	"github.com/devkarthik/quill/ast"
	"github.com/devkarthik/quill/environment"
	"github.com/devkarthik/quill/lexer"
	"github.com/devkarthik/quill/object"
)

// MaxParams is the hard parameter-count ceiling spec.md §4.2 assigns to the
// evaluator (the parser itself accepts arbitrarily many).
const MaxParams = 255

// Evaluator is the narrow slice of eval.Interpreter that Function.Call
// needs: the ability to actually run the function body. Defining the
// interface here (rather than importing the eval package, which imports
// this one) keeps the dependency one-directional.
type Evaluator interface {
	CallFunction(fn *Function, args []object.Value) (object.Value, error)
}

// Function is a user-defined function value: its parameter names, its
// body, the line it was declared on (shown by String),
// and a direct pointer to the environment that was current at its
// declaration site — the shared, non-owning handle spec.md §3 describes,
// which is what makes closures observe later mutations of their captured
// variables (spec.md §8 property 6) without any copy-on-return trick.
type Function struct {
	Name         string
	Params       []lexer.Token
	Body         []ast.Stmt
	DeclaredLine int
	Closure      *environment.Environment
}

func (*Function) Type() object.Kind { return object.FunctionKind }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s declared on L%d>", f.Name, f.DeclaredLine)
}

// Arity is the number of declared parameters; a call site must supply
// exactly this many arguments (spec.md §3 invariant).
func (f *Function) Arity() int {
	return len(f.Params)
}

// Call delegates back into the evaluator, which owns the call-frame setup,
// argument binding, and non-local return unwinding (eval.Interpreter.
// CallFunction). Function itself stays free of evaluation logic, the same
// separation the teacher keeps between its Function value and its
// Evaluator.CallFunction method.
func (f *Function) Call(ev Evaluator, args []object.Value) (object.Value, error) {
	return ev.CallFunction(f, args)
}
