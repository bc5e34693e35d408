// Package object defines the runtime value domain the evaluator produces
// and consumes: Number, String, Boolean, Nil, the Absent sentinel, and the
// Value interface they all satisfy. Function values (object.Value plus a
// captured closure environment) live in the sibling function package, the
// way the teacher splits objects (plain data) from function (data that
// also needs to reference scope/environment) to avoid an import cycle
// between the value domain and the environment that holds values.
package object

import (
	"fmt"

	"github.com/spf13/cast"
)

// Kind identifies a Value's runtime type, used for error messages and type
// checks (e.g. "operand must be a number").
type Kind string

const (
	NumberKind   Kind = "number"
	StringKind   Kind = "string"
	BooleanKind  Kind = "boolean"
	NilKind      Kind = "nil"
	AbsentKind   Kind = "absent"
	FunctionKind Kind = "function"
)

// Value is satisfied by every runtime value: Number, String, Boolean, Nil,
// Absent, and function.Function.
type Value interface {
	Type() Kind
	String() string
}

// Number is the language's single numeric type: a 64-bit float, per
// spec.md's "no numeric tower" non-goal.
type Number struct {
	Value float64
}

func (Number) Type() Kind { return NumberKind }

// String renders the number for `print` and for error messages. Whole
// numbers keep their trailing ".0" here — stringify is not the place the
// spec's "+"-coercion drops it; see coerceNumberForConcat in eval for that
// narrower rule.
func (n Number) String() string {
	if n.Value == float64(int64(n.Value)) {
		return fmt.Sprintf("%.1f", n.Value)
	}
	return fmt.Sprintf("%g", n.Value)
}

// Truncated converts the number to an integer for the bitwise operators,
// which the spec requires to "truncate via integer cast". cast.ToInt64
// performs exactly that narrowing the way the rest of the pack does
// numeric coercion (see DESIGN.md), rather than a bare int64(...) sprinkled
// through the evaluator.
func (n Number) Truncated() int64 {
	return cast.ToInt64(n.Value)
}

// String is the language's string value.
type String struct {
	Value string
}

func (String) Type() Kind   { return StringKind }
func (s String) String() string { return s.Value }

// Boolean is the language's true/false value.
type Boolean struct {
	Value bool
}

func (Boolean) Type() Kind     { return BooleanKind }
func (b Boolean) String() string { return fmt.Sprintf("%t", b.Value) }

// Nil is the language's explicit `nil` literal value. It is a distinct
// singleton from Absent: `nil` is a value a program can hold and compare
// against, while Absent never appears as a program-visible value — it only
// marks an unset binding.
type Nil struct{}

func (Nil) Type() Kind     { return NilKind }
func (Nil) String() string { return "nil" }

// Absent is the sentinel stored for a variable that was declared without
// an initializer and has not yet been assigned (spec.md's "absent
// marker"). Environment.Get returns it (after printing an "uninitialized"
// diagnostic) rather than panicking, per spec.md §4.4/§7.
type Absent struct{}

func (Absent) Type() Kind     { return AbsentKind }
func (Absent) String() string { return "" }

// IsTruthy implements the language's truthiness rule (spec.md §4.5):
// nil is false, the number 0 is false, booleans are themselves, everything
// else — including Absent, empty strings, and any function value — is
// true.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Number:
		return val.Value != 0
	case Boolean:
		return val.Value
	default:
		return true
	}
}

// Equal implements the language's `==`/`!=` equality: nil == nil is true,
// nil compared to anything else is false, otherwise plain value equality
// (numbers/strings/booleans compare by value; two distinct function values
// are never equal since Function is a pointer type).
func Equal(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil || bNil {
		return aNil && bNil
	}
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}
