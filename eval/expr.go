package eval

import (
	"fmt"
	"math"
	"strconv"

	"github.com/devkarthik/quill/ast"
	"github.com/devkarthik/quill/function"
	"github.com/devkarthik/quill/lexer"
	"github.com/devkarthik/quill/object"
)

// evaluate computes the value of expr, or a RuntimeError (never a
// control-flow signal — those only arise from execute).
func (in *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil
	case *ast.Variable:
		return in.env.Get(e.Name.Lexeme, in.Diag), nil
	case *ast.Group:
		return in.evaluate(e.Inner)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Ternary:
		return in.evalTernary(e)
	case *ast.Assignment:
		return in.evalAssignment(e)
	case *ast.Call:
		return in.evalCall(e)
	default:
		panic(fmt.Sprintf("eval: unhandled expression %T", expr))
	}
}

func literalValue(v any) object.Value {
	switch val := v.(type) {
	case nil:
		return object.Nil{}
	case float64:
		return object.Number{Value: val}
	case string:
		return object.String{Value: val}
	case bool:
		return object.Boolean{Value: val}
	default:
		panic(fmt.Sprintf("eval: unsupported literal value %T", v))
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (object.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case lexer.BANG:
		return object.Boolean{Value: !object.IsTruthy(right)}, nil
	case lexer.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			return nil, &RuntimeError{Line: e.Op.Line, Message: "Operand must be a number."}
		}
		return object.Number{Value: -n.Value}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled unary operator %s", e.Op.Type))
	}
}

// evalBinary evaluates both operands left-to-right before dispatching on
// the operator, per spec.md §4.5/§5's ordering guarantee.
func (in *Interpreter) evalBinary(e *ast.Binary) (object.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	line := e.Op.Line

	switch e.Op.Type {
	case lexer.PIPE, lexer.AMPERSAND:
		return evalBitwise(e.Op.Type, left, right, line)
	case lexer.PLUS:
		return evalPlus(left, right, line)
	case lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return evalArithmetic(e.Op.Type, left, right, line)
	case lexer.EQUAL_EQUAL:
		return object.Boolean{Value: object.Equal(left, right)}, nil
	case lexer.BANG_EQUAL:
		return object.Boolean{Value: !object.Equal(left, right)}, nil
	case lexer.GREATER_THAN, lexer.GREATER_THAN_EQUAL, lexer.LESS_THAN, lexer.LESS_THAN_EQUAL:
		return evalComparison(e.Op.Type, left, right, line)
	case lexer.CARET:
		return evalPower(left, right, line)
	default:
		panic(fmt.Sprintf("eval: unhandled binary operator %s", e.Op.Type))
	}
}

func evalBitwise(op lexer.TokenType, left, right object.Value, line int) (object.Value, error) {
	ln, ok := left.(object.Number)
	if !ok {
		return nil, &RuntimeError{Line: line, Message: "Operands must be numbers."}
	}
	rn, ok := right.(object.Number)
	if !ok {
		return nil, &RuntimeError{Line: line, Message: "Operands must be numbers."}
	}
	var result int64
	if op == lexer.PIPE {
		result = ln.Truncated() | rn.Truncated()
	} else {
		result = ln.Truncated() & rn.Truncated()
	}
	return object.Number{Value: float64(result)}, nil
}

// coerceNumberForConcat renders a number the way the `+` operator's
// mixed-type coercion requires: the shortest decimal round-trip, which
// drops a trailing ".0" for whole numbers without a separate branch
// (strconv's -1 precision already picks the minimal representation).
func coerceNumberForConcat(n object.Number) string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func evalPlus(left, right object.Value, line int) (object.Value, error) {
	ln, lIsNum := left.(object.Number)
	rn, rIsNum := right.(object.Number)
	ls, lIsStr := left.(object.String)
	rs, rIsStr := right.(object.String)

	switch {
	case lIsNum && rIsStr:
		return object.String{Value: coerceNumberForConcat(ln) + rs.Value}, nil
	case lIsStr && rIsNum:
		return object.String{Value: ls.Value + coerceNumberForConcat(rn)}, nil
	case lIsNum && rIsNum:
		return object.Number{Value: ln.Value + rn.Value}, nil
	case lIsStr && rIsStr:
		return object.String{Value: ls.Value + rs.Value}, nil
	default:
		return nil, &RuntimeError{Line: line, Message: "Operands must be two numbers or two strings."}
	}
}

func evalArithmetic(op lexer.TokenType, left, right object.Value, line int) (object.Value, error) {
	ln, ok := left.(object.Number)
	if !ok {
		return nil, &RuntimeError{Line: line, Message: "Operands must be numbers."}
	}
	rn, ok := right.(object.Number)
	if !ok {
		return nil, &RuntimeError{Line: line, Message: "Operands must be numbers."}
	}
	switch op {
	case lexer.MINUS:
		return object.Number{Value: ln.Value - rn.Value}, nil
	case lexer.STAR:
		return object.Number{Value: ln.Value * rn.Value}, nil
	case lexer.SLASH:
		if rn.Value == 0 {
			return nil, &RuntimeError{Line: line, Message: "Division by zero."}
		}
		return object.Number{Value: ln.Value / rn.Value}, nil
	case lexer.PERCENT:
		if rn.Value == 0 {
			return nil, &RuntimeError{Line: line, Message: "Division by zero."}
		}
		return object.Number{Value: math.Mod(ln.Value, rn.Value)}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled arithmetic operator %s", op))
	}
}

func evalComparison(op lexer.TokenType, left, right object.Value, line int) (object.Value, error) {
	if ln, ok := left.(object.Number); ok {
		rn, ok := right.(object.Number)
		if !ok {
			return nil, &RuntimeError{Line: line, Message: "Operands must be two numbers or two strings."}
		}
		return object.Boolean{Value: compareOrdered(op, ln.Value < rn.Value, ln.Value <= rn.Value, ln.Value > rn.Value, ln.Value >= rn.Value)}, nil
	}
	if ls, ok := left.(object.String); ok {
		rs, ok := right.(object.String)
		if !ok {
			return nil, &RuntimeError{Line: line, Message: "Operands must be two numbers or two strings."}
		}
		return object.Boolean{Value: compareOrdered(op, ls.Value < rs.Value, ls.Value <= rs.Value, ls.Value > rs.Value, ls.Value >= rs.Value)}, nil
	}
	return nil, &RuntimeError{Line: line, Message: "Operands must be two numbers or two strings."}
}

func compareOrdered(op lexer.TokenType, lt, le, gt, ge bool) bool {
	switch op {
	case lexer.LESS_THAN:
		return lt
	case lexer.LESS_THAN_EQUAL:
		return le
	case lexer.GREATER_THAN:
		return gt
	case lexer.GREATER_THAN_EQUAL:
		return ge
	default:
		panic(fmt.Sprintf("eval: unhandled comparison operator %s", op))
	}
}

func evalPower(left, right object.Value, line int) (object.Value, error) {
	ln, ok := left.(object.Number)
	if !ok {
		return nil, &RuntimeError{Line: line, Message: "Operands must be numbers."}
	}
	rn, ok := right.(object.Number)
	if !ok {
		return nil, &RuntimeError{Line: line, Message: "Operands must be numbers."}
	}
	return object.Number{Value: math.Pow(ln.Value, rn.Value)}, nil
}

// evalLogical implements the source's non-canonical short-circuit rule
// (spec.md §4.5/§9), deliberately not the usual "return b" semantics:
//   - `a or b`: a truthy  -> return a.
//     otherwise evaluate b; b truthy -> return b; else return false.
//   - `a and b`: a falsy  -> return false.
//     otherwise evaluate b; b truthy -> return a; else return false.
func (in *Interpreter) evalLogical(e *ast.Logical) (object.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case lexer.OR:
		if object.IsTruthy(left) {
			return left, nil
		}
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		if object.IsTruthy(right) {
			return right, nil
		}
		return object.Boolean{Value: false}, nil
	case lexer.AND:
		if !object.IsTruthy(left) {
			return object.Boolean{Value: false}, nil
		}
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		if object.IsTruthy(right) {
			return left, nil
		}
		return object.Boolean{Value: false}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled logical operator %s", e.Op.Type))
	}
}

func (in *Interpreter) evalTernary(e *ast.Ternary) (object.Value, error) {
	cond, err := in.evaluate(e.Cond)
	if err != nil {
		return nil, err
	}
	if object.IsTruthy(cond) {
		return in.evaluate(e.Then)
	}
	return in.evaluate(e.Else)
}

// evalAssignment evaluates value then assigns, returning the assigned
// value so `a = b = 1` binds both a and b to 1 (spec.md §8 property 8).
func (in *Interpreter) evalAssignment(e *ast.Assignment) (object.Value, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	in.env.Assign(e.Name.Lexeme, value, in.Diag)
	return value, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (object.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return nil, &RuntimeError{Line: e.Paren.Line, Message: "Can only call functions."}
	}

	args := make([]object.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) != fn.Arity() {
		return nil, &RuntimeError{
			Line:    e.Paren.Line,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}
	return fn.Call(in, args)
}
