package ast

import "github.com/devkarthik/quill/lexer"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its string form followed by a
// newline.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current environment. Initializer is nil for
// a bare `var x;` declaration, in which case the binding starts out holding
// the absent marker (see object.Absent).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// Block executes Statements in a fresh child environment.
type Block struct {
	Statements []Stmt
}

// IfStmt executes Then if Cond is truthy, else Else (which is nil when
// there was no `else` clause).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt executes Body while Cond is truthy.
//
// The spec permits representing a desugared `for` loop either by fusing it
// into a WhileStmt whose Cond/Body carry two-element lists, or by giving
// the desugared loop its own fields with identical run-time behavior. This
// AST takes the second option: Init and Post are nil for an ordinary
// `while`, and populated for a `for` loop's initializer/update clauses.
// Init runs once before the first Cond test; Post runs after each Body
// execution, before the next Cond test.
type WhileStmt struct {
	Init Stmt // nil unless this is a desugared for-loop
	Cond Expr // never nil: the parser fills in a literal `true` for a `for` with no condition clause
	Post Expr // nil unless this is a desugared for-loop
	Body Stmt
}

// FunctionStmt declares a named function value in the current environment.
type FunctionStmt struct {
	Name        lexer.Token
	Params      []lexer.Token
	Body        []Stmt
	DeclaredLine int
}

// ReturnStmt transfers control to the enclosing call frame with Value's
// evaluation (nil Value means "return nil").
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

// BreakStmt transfers control to the nearest enclosing while loop.
type BreakStmt struct {
	Keyword lexer.Token
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*Block) stmtNode()          {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()      {}
