// Package eval walks the AST the parser produces, dispatching on node
// variant with a Go type switch rather than the teacher's visitor
// interface (see ast's package doc). It owns the single mutable
// current-environment slot spec.md §4.5/§5 describes, and is the one
// package allowed to import ast, lexer, object, environment, and function
// all at once — everything upstream of it is kept deliberately narrow to
// avoid import cycles.
package eval

import (
	"fmt"
	"io"

	"github.com/devkarthik/quill/ast"
	"github.com/devkarthik/quill/environment"
	"github.com/devkarthik/quill/function"
	"github.com/devkarthik/quill/object"
)

// Interpreter is a tree-walking evaluator instance: a persistent global
// environment, the current-environment slot (swapped during block and call
// execution, always restored), and the two output streams the language
// distinguishes — Out for `print`, Diag for the Environment's lenient
// diagnostics (spec.md §4.4).
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
	Diag    io.Writer
}

// New creates an Interpreter with a fresh, empty global environment.
func New(out, diag io.Writer) *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{globals: globals, env: globals, Out: out, Diag: diag}
}

// Globals returns the interpreter's top-level environment, for a REPL or
// front-end that wants to inspect bindings between lines.
func (in *Interpreter) Globals() *environment.Environment {
	return in.globals
}

// Interpret executes a top-level statement forest against this
// Interpreter's persistent environment. A REPL calls this once per input
// line, reusing the same Interpreter so later lines see earlier bindings
// (spec.md §5's "the REPL shares one global environment"). A batch run
// calls it once for the whole program.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return asRuntimeError(err)
		}
	}
	return nil
}

// execute runs one statement, returning either nil, a RuntimeError, or one
// of the control-flow signals (returnSignal, breakSignal) for an enclosing
// call or loop to catch.
func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expr)
		return err
	case *ast.PrintStmt:
		return in.execPrint(s)
	case *ast.VarStmt:
		return in.execVar(s)
	case *ast.Block:
		return in.executeBlock(s.Statements, environment.New(in.env))
	case *ast.IfStmt:
		return in.execIf(s)
	case *ast.WhileStmt:
		return in.execWhile(s)
	case *ast.FunctionStmt:
		return in.execFunction(s)
	case *ast.ReturnStmt:
		return in.execReturn(s)
	case *ast.BreakStmt:
		return &breakSignal{Line: s.Keyword.Line}
	default:
		panic(fmt.Sprintf("eval: unhandled statement %T", stmt))
	}
}

func (in *Interpreter) execPrint(s *ast.PrintStmt) error {
	value, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.Out, value.String())
	return nil
}

func (in *Interpreter) execVar(s *ast.VarStmt) error {
	var value object.Value = object.Absent{}
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.env.Define(s.Name.Lexeme, value)
	return nil
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// current-environment on every exit path — normal completion, an error, or
// a control-flow signal — per spec.md §5's scoped-acquisition requirement.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execIf(s *ast.IfStmt) error {
	cond, err := in.evaluate(s.Cond)
	if err != nil {
		return err
	}
	if object.IsTruthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

// execWhile handles both the plain while shape (Init and Post nil) and the
// desugared for-loop shape (Init runs once, Post runs after every body
// execution) through the single WhileStmt AST node, per spec.md §4.5.
func (in *Interpreter) execWhile(s *ast.WhileStmt) error {
	if s.Init != nil {
		if err := in.execute(s.Init); err != nil {
			return err
		}
	}
	for {
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !object.IsTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			if _, ok := err.(*breakSignal); ok {
				return nil
			}
			return err
		}
		if s.Post != nil {
			if _, err := in.evaluate(s.Post); err != nil {
				return err
			}
		}
	}
}

func (in *Interpreter) execFunction(s *ast.FunctionStmt) error {
	if len(s.Params) > function.MaxParams {
		return &RuntimeError{
			Line:    s.DeclaredLine,
			Message: fmt.Sprintf("Can't have more than %d parameters.", function.MaxParams),
		}
	}
	fn := &function.Function{
		Name:         s.Name.Lexeme,
		Params:       s.Params,
		Body:         s.Body,
		DeclaredLine: s.DeclaredLine,
		Closure:      in.env,
	}
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) execReturn(s *ast.ReturnStmt) error {
	var value object.Value = object.Nil{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{Value: value}
}

// CallFunction satisfies function.Evaluator: it binds args to fn's
// parameters in a fresh environment enclosed by fn's captured closure (not
// the caller's environment — that's what makes the closure a closure), runs
// the body as a block, and unwraps a caught returnSignal into an ordinary
// value. A bare breakSignal escaping the body is converted the same way it
// would be at top level: break only makes sense inside a loop, and a
// function body is not one.
func (in *Interpreter) CallFunction(fn *function.Function, args []object.Value) (object.Value, error) {
	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	err := in.executeBlock(fn.Body, callEnv)
	if err == nil {
		return object.Nil{}, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	return nil, asRuntimeError(err)
}
