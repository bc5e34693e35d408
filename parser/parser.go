// Package parser turns a token stream into the AST the evaluator walks: a
// hand-written recursive-descent parser with one function per precedence
// level, the same shape as the teacher's Pratt parser but following
// spec.md's explicit grammar ladder directly rather than a precedence
// table, since the grammar here is small and fixed rather than
// user-extensible.
package parser

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/devkarthik/quill/ast"
	"github.com/devkarthik/quill/lexer"
)

// synchronizeOn is the set of statement-introducing keywords panic-mode
// recovery resumes at, the same list for every declaration error.
var synchronizeOn = []lexer.TokenType{
	lexer.FOR,
	lexer.FUN,
	lexer.IF,
	lexer.PRINT,
	lexer.RETURN,
	lexer.VAR,
	lexer.WHILE,
}

// parseError is a syntactic failure tied to the line it was detected on.
// Parser.Parse collects these rather than aborting, the way the teacher
// collects into Errors instead of panicking on the first mistake.
type parseError struct {
	Line    int
	Message string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("[Error on L%d]: %s", e.Line, e.Message)
}

// panicMode is an internal control-flow signal used to unwind out of a
// declaration as soon as a parseError is recorded, so synchronize runs
// exactly once per bad declaration rather than being threaded through
// every call site's return value.
type panicMode struct{}

// Parser consumes a token slice produced by lexer.ScanTokens and builds the
// statement forest the evaluator executes. It never re-reads source text;
// the lexer's work is already done by the time a Parser exists.
type Parser struct {
	tokens  []lexer.Token
	current int
	Errors  []error
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any declaration failed to parse.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns every syntax error collected during Parse, in source
// order.
func (p *Parser) GetErrors() []error {
	return p.Errors
}

// Parse consumes the entire token stream and returns the top-level
// statement forest. Declarations that fail to parse are skipped (after
// panic-mode synchronize) rather than aborting the whole parse, so one bad
// statement doesn't hide errors in the rest of the file; callers should
// still refuse to run a program where HasErrors() is true.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// --- token cursor -----------------------------------------------------

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token is one of types,
// otherwise leaves the cursor untouched.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have type t, advancing past it; if
// it doesn't, it records a parseError and triggers panic-mode unwind via
// panic(panicMode{}), caught by declaration's recover.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.fail(message)
	panic(panicMode{})
}

func (p *Parser) fail(message string) {
	p.Errors = append(p.Errors, &parseError{Line: p.peek().Line, Message: message})
}

// synchronize discards tokens until the previous one was a ';' or the next
// one begins a new declaration/statement, per spec.md §4.2.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.current > 0 && p.previous().Type == lexer.SEMI_COLON {
			return
		}
		if lo.Contains(synchronizeOn, p.peek().Type) {
			return
		}
		p.advance()
	}
}

// --- declarations -------------------------------------------------------

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(panicMode); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(lexer.VAR):
		return p.varDecl()
	case p.match(lexer.FUN):
		return p.funDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expected variable name.")
	var init ast.Expr
	if p.match(lexer.EQUAL) {
		init = p.expression()
	}
	p.consume(lexer.SEMI_COLON, "Expected ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

func (p *Parser) funDecl() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expected function name.")
	declaredLine := name.Line
	p.consume(lexer.LEFT_PAREN, "Expected '(' after function name.")
	params := p.params()
	p.consume(lexer.RIGHT_PAREN, "Expected ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, "Expected '{' before function body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body, DeclaredLine: declaredLine}
}

// params implements the grammar's literal `expression ( ',' expression )*`
// production: each parameter is parsed as a full expression and then
// required to collapse to a bare identifier, matching the source
// language's binding code (which expects every parameter to expose a
// plain name) while still reporting a proper syntax error for anything
// else, such as `fun f(1 + 2) {}`.
func (p *Parser) params() []lexer.Token {
	var names []lexer.Token
	if p.check(lexer.RIGHT_PAREN) {
		return names
	}
	for {
		expr := p.expression()
		v, ok := expr.(*ast.Variable)
		if !ok {
			p.fail("Expected parameter name.")
			panic(panicMode{})
		}
		names = append(names, v.Name)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return names
}

// --- statements -----------------------------------------------------

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStmt()
	case p.match(lexer.WHILE):
		return p.whileStmt()
	case p.match(lexer.IF):
		return p.ifStmt()
	case p.match(lexer.PRINT):
		return p.printStmt()
	case p.match(lexer.RETURN):
		return p.returnStmt()
	case p.match(lexer.BREAK):
		return p.breakStmt()
	case p.match(lexer.LEFT_BRACE):
		return &ast.Block{Statements: p.block()}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) forStmt() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expected '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(lexer.SEMI_COLON):
		// no initializer
	case p.match(lexer.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(lexer.SEMI_COLON) {
		cond = p.expression()
	}
	p.consume(lexer.SEMI_COLON, "Expected ';' after loop condition.")

	var post ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		post = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expected ')' after for clauses.")

	body := p.statement()

	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	return &ast.WhileStmt{Init: init, Cond: cond, Post: post, Body: body}
}

func (p *Parser) whileStmt() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expected '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expected ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *Parser) ifStmt() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expected '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expected ')' after condition.")
	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) printStmt() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMI_COLON, "Expected ';' after value.")
	return &ast.PrintStmt{Expr: expr}
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMI_COLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMI_COLON, "Expected ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) breakStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.SEMI_COLON, "Expected ';' after 'break'.")
	return &ast.BreakStmt{Keyword: keyword}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMI_COLON, "Expected ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

// block parses a brace-delimited declaration list. The opening '{' must
// already be consumed by the caller (statement's own match, or funDecl's
// explicit consume) so block can also serve function bodies.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expected '}' after block.")
	return stmts
}

// --- expressions, lowest precedence first -------------------------------

func (p *Parser) expression() ast.Expr {
	return p.ternary()
}

func (p *Parser) ternary() ast.Expr {
	expr := p.assignment()
	if p.match(lexer.QUESTION) {
		then := p.ternary()
		p.consume(lexer.COLON, "Expected ':' in ternary expression.")
		elseExpr := p.ternary()
		expr = &ast.Ternary{Cond: expr, Then: then, Else: elseExpr}
	}
	return expr
}

// assignment parses `logical_or ( '=' ternary )*`, right-associative. The
// left-hand side is parsed as a full expression first (so `a.b = c` would
// at least produce a value to inspect) and then validated: spec.md §4.2
// requires the target to already be a bare Variable, anything else is
// "Invalid assignment target".
func (p *Parser) assignment() ast.Expr {
	expr := p.logicalOr()
	if p.match(lexer.EQUAL) {
		op := p.previous()
		value := p.ternary()
		v, ok := expr.(*ast.Variable)
		if !ok {
			p.fail("Invalid assignment target.")
			panic(panicMode{})
		}
		return &ast.Assignment{Name: v.Name, Op: op, Value: value}
	}
	return expr
}

func (p *Parser) logicalOr() ast.Expr {
	expr := p.logicalAnd()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.logicalAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicalAnd() ast.Expr {
	expr := p.bitwiseOr()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.bitwiseOr()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseOr() ast.Expr {
	expr := p.bitwiseAnd()
	for p.match(lexer.PIPE) {
		op := p.previous()
		right := p.bitwiseAnd()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseAnd() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AMPERSAND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.EQUAL_EQUAL, lexer.BANG_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER_THAN, lexer.GREATER_THAN_EQUAL, lexer.LESS_THAN, lexer.LESS_THAN_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.power()
}

// power is right-associative: `a ^ b ^ c` parses as `a ^ (b ^ c)` by
// recursing back into power for the right-hand operand rather than looping,
// the clean right-fold spec.md §9 notes as equivalent to the source's
// repeated-recursion behavior.
func (p *Parser) power() ast.Expr {
	expr := p.call()
	if p.match(lexer.CARET) {
		op := p.previous()
		right := p.power()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expected ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		inner := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expected ')' after expression.")
		return &ast.Group{Inner: inner}
	}
	p.fail("Expected expression.")
	panic(panicMode{})
}
