package eval

import "github.com/devkarthik/quill/object"

// returnSignal and breakSignal are the non-local control-flow values
// spec.md §9 calls for: tagged flow values propagated up through execute
// rather than modeled as exceptions. Both satisfy error so they can travel
// through the same return channel as a genuine RuntimeError; callers tell
// them apart with a type assertion at the one or two places that are
// supposed to catch them (execWhile for breakSignal, CallFunction for
// returnSignal) and let anything else fall through untouched.
type returnSignal struct {
	Value object.Value
}

func (*returnSignal) Error() string { return "return outside of call" }

type breakSignal struct {
	Line int
}

func (*breakSignal) Error() string { return "break outside of loop" }

// asRuntimeError turns a breakSignal that escaped every enclosing loop into
// the reported error spec.md §7 assigns to control-flow misuse. It is a
// no-op for everything else, including nil.
func asRuntimeError(err error) error {
	if b, ok := err.(*breakSignal); ok {
		return &RuntimeError{Line: b.Line, Message: "Can't use break outside loop"}
	}
	return err
}
