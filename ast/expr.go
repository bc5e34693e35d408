// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator.
//
// Rather than the teacher's visitor-with-double-dispatch (every node
// implements Accept(Visitor) and every new node shape means touching every
// visitor), nodes here are plain structs behind two small marker
// interfaces, Expr and Stmt, and the evaluator dispatches with a Go type
// switch. That is the idiomatic Go equivalent of a tagged sum type with
// exhaustive pattern matching: adding a node only requires extending the
// switch, a missing case is caught at run time by the default branch's
// panic, and there is no indirection per visit.
package ast

import "github.com/devkarthik/quill/lexer"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Literal is a number, string, boolean, or nil constant.
type Literal struct {
	Value any // float64 | string | bool | nil
}

// Variable is a bare identifier reference.
type Variable struct {
	Name lexer.Token
}

// Group is a parenthesized sub-expression, kept as its own node (rather
// than collapsed away) so the tree records where the source had
// parentheses. It carries no token of its own.
type Group struct {
	Inner Expr
}

// Unary is a prefix `!` or `-` applied to Right.
type Unary struct {
	Op    lexer.Token // BANG | MINUS
	Right Expr
}

// Binary is an infix arithmetic, bitwise, comparison, or equality
// operation.
type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Logical is `and`/`or`, kept distinct from Binary because it
// short-circuits.
type Logical struct {
	Left  Expr
	Op    lexer.Token // AND | OR
	Right Expr
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Assignment is `name = value`, right-associative. The left-hand side is
// always a bare identifier token (the parser rejects anything else).
type Assignment struct {
	Name  lexer.Token
	Op    lexer.Token
	Value Expr
}

// Call is `callee(args...)`.
type Call struct {
	Callee    Expr
	Paren     lexer.Token // the closing ')', kept for error line reporting
	Arguments []Expr
}

func (*Literal) exprNode()    {}
func (*Variable) exprNode()   {}
func (*Group) exprNode()      {}
func (*Unary) exprNode()      {}
func (*Binary) exprNode()     {}
func (*Logical) exprNode()    {}
func (*Ternary) exprNode()    {}
func (*Assignment) exprNode() {}
func (*Call) exprNode()       {}
