// Command quill is the front-end over eval.Run / eval.RunLine spec.md §6
// describes: no arguments starts the REPL, `-s <path>` runs a file top to
// bottom, and `server <port>` — a mode adapted from the teacher's TCP REPL
// server — hands each connection its own Interpreter and a uuid-tagged
// session label for the server log.
package main

import (
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/devkarthik/quill/eval"
	"github.com/devkarthik/quill/repl"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		if err := repl.New().Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	case args[0] == "--config":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "Usage: quill --config <file>.yaml")
			os.Exit(1)
		}
		runReplWithConfig(args[1])
	case args[0] == "-s":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "Usage: quill -s <path>")
			os.Exit(1)
		}
		runFile(args[1])
	case args[0] == "server":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "Usage: quill server <port>")
			os.Exit(1)
		}
		runServer(args[1])
	default:
		redColor.Fprintf(os.Stderr, "Usage: quill [-s <path> | --config <file>.yaml | server <port>]\n")
		os.Exit(1)
	}
}

// runReplWithConfig loads cosmetic REPL settings (banner/prompt/history
// file) from a YAML file and starts an interactive session with them —
// see repl.ReplConfig. A missing or malformed config file is a startup
// error, not a silent fallback to defaults.
func runReplWithConfig(path string) {
	cfg, err := repl.LoadConfig(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not load config '%s': %v\n", path, err)
		os.Exit(1)
	}
	if err := repl.NewWithConfig(cfg).Start(os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// runFile executes one file top-to-bottom and sets the process exit code
// per spec.md §6: 0 on normal completion, non-zero on an uncaught error. The
// recover here is the same backstop repl.evalLine keeps — a safety net for
// a genuine implementation bug, not the primary error-reporting path, which
// is eval.Run's ordinary *eval.RuntimeError return.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	exitCode := 0
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				redColor.Fprintf(os.Stderr, "[internal error] %v\n", rec)
				exitCode = 1
			}
		}()
		if err := eval.Run(string(source), os.Stdout, os.Stderr); err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err)
			exitCode = 1
		}
	}()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// runServer listens on port and hands each TCP connection its own REPL
// session — a dedicated Interpreter and environment, not shared across
// clients, unlike the single-process REPL's one persistent global scope.
// Each session is tagged with a random uuid purely for the server's own
// connect/disconnect log lines.
func runServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("Quill REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	sessionID := uuid.New()
	cyanColor.Printf("session %s connected from %s\n", sessionID, conn.RemoteAddr())

	session := repl.New()
	if err := session.Serve(conn); err != nil {
		redColor.Fprintf(os.Stderr, "session %s error: %v\n", sessionID, err)
	}

	cyanColor.Printf("session %s disconnected\n", sessionID)
}
