package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAndCapture(t *testing.T, src string) (string, error) {
	t.Helper()
	var out, diag bytes.Buffer
	err := Run(src, &out, &diag)
	return out.String(), err
}

func outputLines(t *testing.T, src string) []string {
	t.Helper()
	out, err := runAndCapture(t, src)
	require.NoError(t, err)
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestArithmeticPrecedence(t *testing.T) {
	assert.Equal(t, []string{"7.0"}, outputLines(t, "print 1 + 2 * 3;"))
}

func TestVariablesAndAddition(t *testing.T) {
	assert.Equal(t, []string{"3.0"}, outputLines(t, "var a = 1; var b = 2; print a + b;"))
}

func TestStringNumberConcatDropsTrailingZero(t *testing.T) {
	assert.Equal(t, []string{"x1"}, outputLines(t, `var s = "x"; print s + 1;`))
}

func TestWhileLoop(t *testing.T) {
	lines := outputLines(t, "var i = 0; while (i < 3) { print i; i = i + 1; }")
	assert.Equal(t, []string{"0.0", "1.0", "2.0"}, lines)
}

func TestClosureStatePersists(t *testing.T) {
	src := `
	fun make() {
		var n = 0;
		fun inc() {
			n = n + 1;
			return n;
		}
		return inc;
	}
	var c = make();
	print c();
	print c();
	print c();
	`
	assert.Equal(t, []string{"1.0", "2.0", "3.0"}, outputLines(t, src))
}

func TestForLoopWithBreak(t *testing.T) {
	src := "for (var i = 0; i < 3; i = i + 1) { if (i == 2) break; print i; }"
	assert.Equal(t, []string{"0.0", "1.0"}, outputLines(t, src))
}

func TestShortCircuitOrSkipsRightOperand(t *testing.T) {
	src := `
	var touched = false;
	fun sideEffect() { touched = true; return true; }
	var x = true or sideEffect();
	print touched;
	`
	assert.Equal(t, []string{"false"}, outputLines(t, src))
}

func TestShortCircuitAndSkipsRightOperand(t *testing.T) {
	src := `
	var touched = false;
	fun sideEffect() { touched = true; return true; }
	var x = false and sideEffect();
	print touched;
	`
	assert.Equal(t, []string{"false"}, outputLines(t, src))
}

func TestChainedAssignmentBindsAll(t *testing.T) {
	src := "var a = 0; var b = 0; var c = 0; a = b = c = 5; print a; print b; print c;"
	assert.Equal(t, []string{"5.0", "5.0", "5.0"}, outputLines(t, src))
}

func TestDivideByZeroReportsLine(t *testing.T) {
	_, err := runAndCapture(t, "print 1;\nprint 1 / 0;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "L2")
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestCallingNonCallableReportsLine(t *testing.T) {
	_, err := runAndCapture(t, "var x = 1;\nx();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "L2")
}

func TestArityMismatchReportsLine(t *testing.T) {
	_, err := runAndCapture(t, "fun f(a, b) { return a; }\nf(1);")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "L2")
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1")
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	_, err := runAndCapture(t, "break;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use break outside loop")
}

func TestBlockRestoresEnclosingEnvironment(t *testing.T) {
	src := "var x = 1; { var x = 2; print x; } print x;"
	assert.Equal(t, []string{"2.0", "1.0"}, outputLines(t, src))
}

func TestUndefinedVariableIsLenientNotFatal(t *testing.T) {
	var out, diag bytes.Buffer
	err := Run("print missing;", &out, &diag)
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "Undefined variable")
}

func TestTernaryEvaluatesOnlyTakenBranch(t *testing.T) {
	assert.Equal(t, []string{"yes"}, outputLines(t, `print true ? "yes" : "no";`))
}

func TestBitwiseTruncatesOperands(t *testing.T) {
	assert.Equal(t, []string{"7.0"}, outputLines(t, "print 5.7 | 2.2;"))
	assert.Equal(t, []string{"4.0"}, outputLines(t, "print 5.9 & 6.1;"))
}

func TestPowerOperator(t *testing.T) {
	assert.Equal(t, []string{"8.0"}, outputLines(t, "print 2 ^ 3;"))
}
