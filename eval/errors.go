package eval

import (
	"fmt"
	"strings"
)

// RuntimeError is the fatal error surface for type mismatches, arity
// mismatches, non-callable calls, divide-by-zero, and break-outside-loop —
// every error kind spec.md §7 marks "aborts current run".
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[Error on L%d]: %s", e.Line, e.Message)
}

// ParseErrors wraps every syntax error a parser.Parser collected into a
// single error, so a batch run or a REPL line has one thing to report
// rather than a slice.
type ParseErrors struct {
	Errors []error
}

func (e *ParseErrors) Error() string {
	lines := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}
