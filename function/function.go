// Package function holds the two callable runtime value shapes: user-level
// closures and host built-ins. It sits between object/env and parser/eval
// so that neither object nor env needs to import parser, avoiding an
// object -> env -> parser -> object import cycle.
package function

import (
	"strings"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

// UserFunction is a closure: a reference to its declaration (name, params,
// body) plus the environment captured at the moment of declaration. The
// captured environment is held and used by reference — never copied — so
// mutations made through one call are visible to later calls sharing the
// same captured frame (spec.md §3, §8's closure-counter scenario).
type UserFunction struct {
	Name   string
	Params []parser.Param
	Body   []parser.Statement
	Env    *env.Environment
}

func (f *UserFunction) GetType() object.Type { return object.FunctionType }
func (f *UserFunction) ToString() string     { return "<function " + f.Name + ">" }
func (f *UserFunction) ToObject() string     { return f.ToString() }

// Callback is the shape every built-in implements: an argument vector plus
// the calling environment (spec.md §4.6's "built-in registry" contract),
// returning a value or a carried *object.Error.
type Callback func(args []object.Object, callerEnv *env.Environment) object.Object

// Builtin is a named host function, opaque to the evaluator beyond its
// Callback shape.
type Builtin struct {
	Name string
	Fn   Callback
}

func (b *Builtin) GetType() object.Type { return object.BuiltinType }
func (b *Builtin) ToString() string     { return "<builtin " + b.Name + ">" }
func (b *Builtin) ToObject() string     { return b.ToString() }

// ToStringValue renders any Object using LLL's universal string-conversion
// rule (spec.md §4.4), used by `to_string`, `print`/`println`, and the
// asymmetric `+` string-overload.
func ToStringValue(obj object.Object) string {
	if obj == nil {
		return "nil"
	}
	return obj.ToString()
}

// IsTruthy implements spec.md §4.4's truthiness predicate: nil, false, the
// number zero, and the empty string are falsy; everything else — including
// empty arrays — is truthy.
func IsTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Nil:
		return false
	case *object.Boolean:
		return v.Value
	case *object.Number:
		return v.Value != 0
	case *object.String:
		return v.Value != ""
	default:
		return true
	}
}

// JoinFunctionSignature renders a function name and its parameter list,
// e.g. "add(a, b)".
func JoinFunctionSignature(name string, params []parser.Param) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
	}
	sb.WriteByte(')')
	return sb.String()
}
