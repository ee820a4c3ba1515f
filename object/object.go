// Package object defines the runtime value domain for LLL.
//
// Every value the evaluator produces implements Object. The domain is
// deliberately small: nil, boolean, number, string, array, and the two
// function shapes (user-defined closures and builtins). Control-flow
// signals (return/break/continue) and errors also implement Object so they
// can flow through the same evaluation channel as ordinary values, but they
// are never visible to LLL code as first-class values.
package object

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the concrete kind of an Object.
type Type string

const (
	NilType      Type = "nil"
	BooleanType  Type = "bool"
	NumberType   Type = "number"
	StringType   Type = "string"
	ArrayType    Type = "array"
	FunctionType Type = "func"
	BuiltinType  Type = "builtin"

	// Internal-only types: never produced as a user-visible value, only
	// used to carry non-local control flow and error state through Eval.
	ErrorType    Type = "error"
	ReturnType   Type = "return"
	BreakType    Type = "break"
	ContinueType Type = "continue"
)

// Object is the tagged runtime value every evaluation step produces.
type Object interface {
	GetType() Type
	// ToString renders the value the way LLL's universal string-conversion
	// rule requires (used by to_string, print, and "+" string concatenation).
	ToString() string
	// ToObject renders a debug-oriented representation, e.g. "<function NAME>".
	ToObject() string
}

// Nil is the singleton nil value.
type Nil struct{}

func (n *Nil) GetType() Type    { return NilType }
func (n *Nil) ToString() string { return "nil" }
func (n *Nil) ToObject() string { return "nil" }

// NIL is the shared nil instance; callers may still construct &Nil{} freely
// since Nil carries no state, but using NIL avoids needless allocation.
var NIL = &Nil{}

// Boolean wraps a bool.
type Boolean struct {
	Value bool
}

func (b *Boolean) GetType() Type { return BooleanType }
func (b *Boolean) ToString() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) ToObject() string { return b.ToString() }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

// BoolObject returns the shared TRUE/FALSE instance for a Go bool.
func BoolObject(v bool) *Boolean {
	if v {
		return TRUE
	}
	return FALSE
}

// Number is LLL's single numeric domain: an IEEE-754 double. IsFloat
// records whether the literal that produced this value (if any) carried a
// decimal point in source; it is surface information only — see spec §3 and
// the "Number domain" design note — and plays no role in arithmetic.
type Number struct {
	Value   float64
	IsFloat bool
}

func (n *Number) GetType() Type { return NumberType }

// ToString renders the number using the host's shortest round-trip decimal,
// matching the "- numbers use the host's shortest-round-trip decimal" rule.
// An integral value that never carried a decimal point prints without one.
func (n *Number) ToString() string {
	if !n.IsFloat && n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}
func (n *Number) ToObject() string { return n.ToString() }

// IsInteger reports whether Value is exactly representable as an int64,
// used by the `type` builtin to report "int" vs "float" post-hoc.
func (n *Number) IsInteger() bool {
	return n.Value == float64(int64(n.Value))
}

// String is an immutable UTF-8 string value.
type String struct {
	Value string
}

func (s *String) GetType() Type    { return StringType }
func (s *String) ToString() string { return s.Value }
func (s *String) ToObject() string { return s.Value }

// Array is an ordered, zero-indexed, mutable sequence. Arrays are reference
// types: two bindings that hold the same *Array alias each other's
// mutations, matching spec §5's aliasing requirement.
type Array struct {
	Elements []Object
}

func (a *Array) GetType() Type { return ArrayType }
func (a *Array) ToString() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, el := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.ToString())
	}
	sb.WriteByte(']')
	return sb.String()
}
func (a *Array) ToObject() string { return a.ToString() }

// Error carries a runtime or lexer/parser failure. It is not a value LLL
// code can construct directly; try/catch unwraps it to its bare Message
// string (spec §7: "without frame decoration"), while Kind/File/Line/
// Column/Frames are carried alongside so an uncaught error can still be
// rendered in full at the top level via FullString.
type Error struct {
	Message string
	Kind    string
	File    string
	Line    int
	Column  int
	Frames  []string
}

func (e *Error) GetType() Type    { return ErrorType }
func (e *Error) ToString() string { return e.Message }
func (e *Error) ToObject() string { return e.Message }

// FullString renders the "KIND: message at FILE:LINE:COLUMN" shape plus any
// call-frame lines, matching spec §6/§7's top-level error string contract.
// Bare errors (Kind unset, e.g. ones built via Errorf) render as just the
// message.
func (e *Error) FullString() string {
	if e.Kind == "" {
		return e.Message
	}
	s := e.Kind + ": " + e.Message + " at " + e.File + ":" +
		strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column)
	for _, f := range e.Frames {
		s += "\n  " + f
	}
	return s
}

// ReturnSignal wraps the value of a `return` statement so it can unwind
// through nested blocks, loops, and try/catch without being mistaken for an
// ordinary value along the way. Unwrapped by the call-expression evaluator.
type ReturnSignal struct {
	Value Object
}

func (r *ReturnSignal) GetType() Type    { return ReturnType }
func (r *ReturnSignal) ToString() string { return r.Value.ToString() }
func (r *ReturnSignal) ToObject() string { return r.Value.ToObject() }

// BreakSignal and ContinueSignal are absorbed by the nearest enclosing loop.
type BreakSignal struct{}

func (b *BreakSignal) GetType() Type    { return BreakType }
func (b *BreakSignal) ToString() string { return "break" }
func (b *BreakSignal) ToObject() string { return "break" }

type ContinueSignal struct{}

func (c *ContinueSignal) GetType() Type    { return ContinueType }
func (c *ContinueSignal) ToString() string { return "continue" }
func (c *ContinueSignal) ToObject() string { return "continue" }

// IsError reports whether obj is a carried error.
func IsError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == ErrorType
}

// IsSignal reports whether obj is a non-local control-flow signal
// (return/break/continue) rather than an ordinary value or an error.
func IsSignal(obj Object) bool {
	if obj == nil {
		return false
	}
	switch obj.GetType() {
	case ReturnType, BreakType, ContinueType:
		return true
	default:
		return false
	}
}

// Errorf constructs a plain *Error from a format string, with no position
// information. Callers that have a source position use eval's createError,
// which enriches the message the way spec §4.4's "error enrichment" requires.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
