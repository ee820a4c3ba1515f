package builtin

import (
	"fmt"
	"strings"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// core registers print/println/printf/to_string/length/type, grounded on
// the teacher's std/common.go.
func core(output *[]string) map[string]*function.Builtin {
	joinArgs := func(args []object.Object) string {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = function.ToStringValue(a)
		}
		return strings.Join(parts, " ")
	}

	return map[string]*function.Builtin{
		"print": {Name: "print", Fn: func(args []object.Object, e *env.Environment) object.Object {
			*output = append(*output, joinArgs(args))
			return object.NIL
		}},
		"println": {Name: "println", Fn: func(args []object.Object, e *env.Environment) object.Object {
			*output = append(*output, joinArgs(args))
			return object.NIL
		}},
		"printf": {Name: "printf", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireMinArgs("printf", args, 1); errObj != nil {
				return errObj
			}
			format, errObj := asString("printf", args[0])
			if errObj != nil {
				return errObj
			}
			rest := make([]interface{}, len(args)-1)
			for i, a := range args[1:] {
				rest[i] = function.ToStringValue(a)
			}
			*output = append(*output, fmt.Sprintf(format.Value, rest...))
			return object.NIL
		}},
		"to_string": {Name: "to_string", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("to_string", args, 1); errObj != nil {
				return errObj
			}
			return &object.String{Value: function.ToStringValue(args[0])}
		}},
		"length": {Name: "length", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("length", args, 1); errObj != nil {
				return errObj
			}
			switch v := args[0].(type) {
			case *object.Array:
				return &object.Number{Value: float64(len(v.Elements))}
			case *object.String:
				return &object.Number{Value: float64(len([]rune(v.Value)))}
			default:
				return errf("length expects an array or string, got %s", v.GetType())
			}
		}},
		"type": {Name: "type", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("type", args, 1); errObj != nil {
				return errObj
			}
			return &object.String{Value: typeName(args[0])}
		}},
	}
}

// typeName implements spec.md §9's design note: the int/float distinction
// is derived post-hoc from integer representability, not carried at runtime.
func typeName(obj object.Object) string {
	switch v := obj.(type) {
	case *object.Nil:
		return "nil"
	case *object.Boolean:
		return "bool"
	case *object.Number:
		if v.IsInteger() {
			return "int"
		}
		return "float"
	case *object.String:
		return "string"
	case *object.Array:
		return "array"
	case *function.UserFunction:
		return "function"
	case *function.Builtin:
		return "builtin"
	default:
		return "unknown"
	}
}
