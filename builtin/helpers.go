// Package builtin implements LLL's built-in registry: the factory spec.md
// §4.6 describes as "a map from name to a callable of shape (args, env) →
// value" returned by a function that receives the shared output buffer.
// Every file here is grounded on its counterpart in the teacher's std/
// package, adapted down from the teacher's Map/Set/List/Tuple domain to
// LLL's Number/String/Array/Boolean/Nil domain (see DESIGN.md).
package builtin

import (
	"github.com/lll-lang/lll/object"
)

// Built-ins raise plain, unenriched errors; the evaluator attributes file,
// line, column, and the call-frame stack at the call site (spec.md §4.6).
func errf(format string, args ...interface{}) *object.Error {
	return object.Errorf(format, args...)
}

func requireArgs(name string, args []object.Object, n int) *object.Error {
	if len(args) != n {
		return errf("%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func requireMinArgs(name string, args []object.Object, n int) *object.Error {
	if len(args) < n {
		return errf("%s expects at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func asNumber(name string, arg object.Object) (*object.Number, *object.Error) {
	n, ok := arg.(*object.Number)
	if !ok {
		return nil, errf("%s expects a number, got %s", name, arg.GetType())
	}
	return n, nil
}

func asString(name string, arg object.Object) (*object.String, *object.Error) {
	s, ok := arg.(*object.String)
	if !ok {
		return nil, errf("%s expects a string, got %s", name, arg.GetType())
	}
	return s, nil
}

func asArray(name string, arg object.Object) (*object.Array, *object.Error) {
	a, ok := arg.(*object.Array)
	if !ok {
		return nil, errf("%s expects an array, got %s", name, arg.GetType())
	}
	return a, nil
}
