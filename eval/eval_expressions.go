package eval

import (
	"math"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

func (ev *Evaluator) evalIdentifier(n *parser.Identifier, e *env.Environment) object.Object {
	val, ok := e.Get(n.Name)
	if !ok {
		return ev.createError(n, "RuntimeError", "undefined variable '%s'", n.Name)
	}
	return val
}

func (ev *Evaluator) evalArrayLiteral(n *parser.ArrayLiteral, e *env.Environment) object.Object {
	elements := make([]object.Object, 0, len(n.Elements))
	for _, elExpr := range n.Elements {
		v := ev.Eval(elExpr, e)
		if object.IsError(v) || object.IsSignal(v) {
			return v
		}
		elements = append(elements, v)
	}
	return &object.Array{Elements: elements}
}

func (ev *Evaluator) evalUnary(n *parser.UnaryExpression, e *env.Environment) object.Object {
	operand := ev.Eval(n.Operand, e)
	if object.IsError(operand) || object.IsSignal(operand) {
		return operand
	}
	switch n.Op {
	case "-":
		num, ok := operand.(*object.Number)
		if !ok {
			return ev.createError(n, "RuntimeError", "unary '-' requires a number")
		}
		return &object.Number{Value: -num.Value}
	case "not":
		return object.BoolObject(!function.IsTruthy(operand))
	default:
		return ev.createError(n, "RuntimeError", "unknown unary operator '%s'", n.Op)
	}
}

// evalBinary implements spec.md §4.4's binary operator table, including the
// and/or short-circuit rule and the asymmetric `+` string-overload.
func (ev *Evaluator) evalBinary(n *parser.BinaryExpression, e *env.Environment) object.Object {
	switch n.Op {
	case "and":
		left := ev.Eval(n.Left, e)
		if object.IsError(left) || object.IsSignal(left) {
			return left
		}
		if !function.IsTruthy(left) {
			return left
		}
		return ev.Eval(n.Right, e)
	case "or":
		left := ev.Eval(n.Left, e)
		if object.IsError(left) || object.IsSignal(left) {
			return left
		}
		if function.IsTruthy(left) {
			return left
		}
		return ev.Eval(n.Right, e)
	}

	left := ev.Eval(n.Left, e)
	if object.IsError(left) || object.IsSignal(left) {
		return left
	}
	right := ev.Eval(n.Right, e)
	if object.IsError(right) || object.IsSignal(right) {
		return right
	}

	switch n.Op {
	case "+":
		return ev.evalPlus(n, left, right)
	case "-", "*", "/", "%", "^":
		return ev.evalArithmetic(n, left, right)
	case "<", ">", "<=", ">=":
		return ev.evalComparison(n, left, right)
	case "==":
		return object.BoolObject(equalValues(left, right))
	case "!=":
		return object.BoolObject(!equalValues(left, right))
	default:
		return ev.createError(n, "RuntimeError", "unknown binary operator '%s'", n.Op)
	}
}

// evalPlus concatenates if either operand is a string (universal
// string-conversion rule), otherwise requires both operands numeric
// (spec.md §9's "+ overloading" note — preserve the asymmetric rule exactly).
func (ev *Evaluator) evalPlus(n *parser.BinaryExpression, left, right object.Object) object.Object {
	_, leftIsString := left.(*object.String)
	_, rightIsString := right.(*object.String)
	if leftIsString || rightIsString {
		return &object.String{Value: function.ToStringValue(left) + function.ToStringValue(right)}
	}
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return ev.createError(n, "RuntimeError", "'+' requires numbers or a string operand")
	}
	return &object.Number{Value: ln.Value + rn.Value}
}

func (ev *Evaluator) evalArithmetic(n *parser.BinaryExpression, left, right object.Object) object.Object {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return ev.createError(n, "RuntimeError", "'%s' requires two numbers", n.Op)
	}
	switch n.Op {
	case "-":
		return &object.Number{Value: ln.Value - rn.Value}
	case "*":
		return &object.Number{Value: ln.Value * rn.Value}
	case "/":
		if rn.Value == 0 {
			return ev.createError(n, "RuntimeError", "division by zero")
		}
		return &object.Number{Value: ln.Value / rn.Value}
	case "%":
		if rn.Value == 0 {
			return ev.createError(n, "RuntimeError", "modulo by zero")
		}
		return &object.Number{Value: math.Mod(ln.Value, rn.Value)}
	case "^":
		return &object.Number{Value: math.Pow(ln.Value, rn.Value)}
	default:
		return ev.createError(n, "RuntimeError", "unknown arithmetic operator '%s'", n.Op)
	}
}

func (ev *Evaluator) evalComparison(n *parser.BinaryExpression, left, right object.Object) object.Object {
	if ln, ok := left.(*object.Number); ok {
		rn, ok := right.(*object.Number)
		if !ok {
			return ev.createError(n, "RuntimeError", "cannot compare number with non-number")
		}
		return object.BoolObject(numericCompare(n.Op, ln.Value, rn.Value))
	}
	if ls, ok := left.(*object.String); ok {
		rs, ok := right.(*object.String)
		if !ok {
			return ev.createError(n, "RuntimeError", "cannot compare string with non-string")
		}
		return object.BoolObject(stringCompare(n.Op, ls.Value, rs.Value))
	}
	return ev.createError(n, "RuntimeError", "'%s' requires two numbers or two strings", n.Op)
}

func numericCompare(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	default:
		return false
	}
}

func stringCompare(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	default:
		return false
	}
}

// equalValues implements spec.md §4.4's `==`/`!=` rule: numbers by value,
// strings by contents, booleans and nil by identity, arrays and functions
// by reference.
func equalValues(a, b object.Object) bool {
	switch av := a.(type) {
	case *object.Nil:
		_, ok := b.(*object.Nil)
		return ok
	case *object.Boolean:
		bv, ok := b.(*object.Boolean)
		return ok && av.Value == bv.Value
	case *object.Number:
		bv, ok := b.(*object.Number)
		return ok && av.Value == bv.Value
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && av.Value == bv.Value
	case *object.Array:
		bv, ok := b.(*object.Array)
		return ok && av == bv
	case *function.UserFunction:
		bv, ok := b.(*function.UserFunction)
		return ok && av == bv
	case *function.Builtin:
		bv, ok := b.(*function.Builtin)
		return ok && av == bv
	default:
		return false
	}
}

func (ev *Evaluator) evalIndex(n *parser.IndexExpression, e *env.Environment) object.Object {
	target := ev.Eval(n.Target, e)
	if object.IsError(target) || object.IsSignal(target) {
		return target
	}
	idxVal := ev.Eval(n.Index, e)
	if object.IsError(idxVal) || object.IsSignal(idxVal) {
		return idxVal
	}
	idxNum, ok := idxVal.(*object.Number)
	if !ok {
		return ev.createError(n, "RuntimeError", "index must be a number")
	}
	i := int(idxNum.Value)

	switch t := target.(type) {
	case *object.Array:
		if i < 0 || i >= len(t.Elements) {
			return ev.createError(n, "RuntimeError", "index %d out of bounds for array of length %d", i, len(t.Elements))
		}
		return t.Elements[i]
	case *object.String:
		runes := []rune(t.Value)
		if i < 0 || i >= len(runes) {
			return ev.createError(n, "RuntimeError", "index %d out of bounds for string of length %d", i, len(runes))
		}
		return &object.String{Value: string(runes[i])}
	default:
		return ev.createError(n, "RuntimeError", "cannot index a %s", target.GetType())
	}
}

// evalCall resolves the callee by name (calls are never first-class
// expressions — spec.md §9), dispatching to a builtin or to a user closure.
func (ev *Evaluator) evalCall(n *parser.CallExpression, e *env.Environment) object.Object {
	callee, ok := e.Get(n.Name)
	if !ok {
		return ev.createError(n, "RuntimeError", "undefined function '%s'", n.Name)
	}

	args := make([]object.Object, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v := ev.Eval(argExpr, e)
		if object.IsError(v) || object.IsSignal(v) {
			return v
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *function.Builtin:
		result := fn.Fn(args, e)
		if raw, isErr := result.(*object.Error); isErr && raw.Kind == "" {
			return ev.createError(n, "RuntimeError", "%s", raw.Message)
		}
		return result
	case *function.UserFunction:
		return ev.callUserFunction(n, fn, args)
	default:
		return ev.createError(n, "RuntimeError", "'%s' is not callable", n.Name)
	}
}

func (ev *Evaluator) callUserFunction(site *parser.CallExpression, fn *function.UserFunction, args []object.Object) object.Object {
	pos := site.Pos()
	ev.Frames = append(ev.Frames, CallFrame{Name: fn.Name, File: ev.File, Line: pos.Line, Column: pos.Column})
	defer func() { ev.Frames = ev.Frames[:len(ev.Frames)-1] }()

	callEnv := env.New(fn.Env)
	for i, p := range fn.Params {
		var v object.Object = object.NIL
		if i < len(args) {
			v = args[i]
		}
		callEnv.Define(p.Name, v, false)
	}

	result := ev.evalBlock(fn.Body, callEnv)
	if object.IsError(result) {
		return result
	}
	if ret, ok := result.(*object.ReturnSignal); ok {
		return ret.Value
	}
	return object.NIL
}
