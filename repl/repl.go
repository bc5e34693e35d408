// Package repl implements the interactive read-eval-print loop for Quill,
// built on the same readline/fatih-color pairing the teacher's REPL uses
// for line editing and colored diagnostics, wired to Quill's eval.Interpreter
// instead of the teacher's Evaluator.
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/devkarthik/quill/eval"
)

var (
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

const defaultBanner = "Quill"

// Prompt is the line prefix shown before each read, per spec.md §6.
const Prompt = ">> "

// Repl is one interactive session: a banner, a prompt, and (once Start
// runs) a single Interpreter whose global environment persists across every
// line read, exactly the "no sandboxing" behavior spec.md §5/§9 specifies.
// Banner/Prompt/HistoryFile are cosmetic only (see ReplConfig/LoadConfig);
// nothing here changes language semantics.
type Repl struct {
	Prompt      string
	Banner      string
	HistoryFile string
}

// New creates a Repl with the default banner and prompt.
func New() *Repl {
	return &Repl{Prompt: Prompt, Banner: defaultBanner}
}

func (r *Repl) printBanner(writer io.Writer) {
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	cyanColor.Fprintln(writer, "Type a line of Quill and press enter. Type 'exit' to quit.")
}

// Start runs the read-eval-print loop against writer until the user types
// `exit` (exact match, after trimming) or sends EOF. Each line is lexed,
// parsed, and executed as its own program fragment against one persistent
// Interpreter (spec.md §6).
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 r.Prompt,
		Stdout:                 writer,
		HistoryFile:            r.HistoryFile,
		HistoryLimit:           500,
		DisableAutoSaveHistory: r.HistoryFile == "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	interp := eval.New(writer, writer)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		rl.SaveHistory(line)
		r.evalLine(writer, interp, line)
	}
}

// Serve runs the same per-line read-eval-print loop as Start, but over an
// arbitrary connection (a TCP socket, typically) instead of the terminal.
// readline assumes a real terminal device, so a remote session reads lines
// with a plain bufio.Scanner instead; the evaluation and exit behavior are
// otherwise identical.
func (r *Repl) Serve(conn io.ReadWriter) error {
	r.printBanner(conn)
	interp := eval.New(conn, conn)

	scanner := bufio.NewScanner(conn)
	for {
		io.WriteString(conn, r.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		r.evalLine(conn, interp, line)
	}
}

// evalLine runs one line against the persistent interpreter, printing any
// uncaught error in red and returning control to the prompt either way —
// spec.md §6's "uncaught evaluator errors on a line are printed; the REPL
// continues". A recover backstop guards against a genuine implementation
// bug surfacing as a Go panic rather than a reported *eval.RuntimeError,
// the same role the teacher's executeWithRecovery recover serves.
func (r *Repl) evalLine(writer io.Writer, interp *eval.Interpreter, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", rec)
		}
	}()
	if err := eval.RunLine(interp, line); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
