package eval

import (
	"io"

	"github.com/devkarthik/quill/lexer"
	"github.com/devkarthik/quill/parser"
)

// Run lexes, parses, and executes source as a standalone program against a
// fresh Interpreter — the batch front-end's `run(source) -> effects` entry
// point (spec.md §1/§6). A lexical error or accumulated parse errors abort
// before any statement executes; a runtime error aborts mid-program, the
// way the CLI's `-s <path>` mode is specified to behave.
func Run(source string, out, diag io.Writer) error {
	tokens, err := lexer.New(source).ScanTokens()
	if err != nil {
		return err
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		return &ParseErrors{Errors: p.GetErrors()}
	}

	return New(out, diag).Interpret(stmts)
}

// RunLine lexes, parses, and executes one line of source against an
// already-running Interpreter, for the REPL's per-line evaluation loop
// (spec.md §6): the same global environment persists across calls.
func RunLine(in *Interpreter, source string) error {
	tokens, err := lexer.New(source).ScanTokens()
	if err != nil {
		return err
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		return &ParseErrors{Errors: p.GetErrors()}
	}

	return in.Interpret(stmts)
}
