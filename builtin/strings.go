package builtin

import (
	"strconv"
	"strings"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// stringBuiltins registers upper/lower/split/join/trim/to_number, grounded
// on the teacher's std/strings.go, reduced to LLL's string/array domain.
func stringBuiltins() map[string]*function.Builtin {
	return map[string]*function.Builtin{
		"upper": {Name: "upper", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("upper", args, 1); errObj != nil {
				return errObj
			}
			s, errObj := asString("upper", args[0])
			if errObj != nil {
				return errObj
			}
			return &object.String{Value: strings.ToUpper(s.Value)}
		}},
		"lower": {Name: "lower", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("lower", args, 1); errObj != nil {
				return errObj
			}
			s, errObj := asString("lower", args[0])
			if errObj != nil {
				return errObj
			}
			return &object.String{Value: strings.ToLower(s.Value)}
		}},
		"trim": {Name: "trim", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("trim", args, 1); errObj != nil {
				return errObj
			}
			s, errObj := asString("trim", args[0])
			if errObj != nil {
				return errObj
			}
			return &object.String{Value: strings.TrimSpace(s.Value)}
		}},
		"split": {Name: "split", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("split", args, 2); errObj != nil {
				return errObj
			}
			s, errObj := asString("split", args[0])
			if errObj != nil {
				return errObj
			}
			sep, errObj := asString("split", args[1])
			if errObj != nil {
				return errObj
			}
			parts := strings.Split(s.Value, sep.Value)
			elements := make([]object.Object, len(parts))
			for i, p := range parts {
				elements[i] = &object.String{Value: p}
			}
			return &object.Array{Elements: elements}
		}},
		"join": {Name: "join", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("join", args, 2); errObj != nil {
				return errObj
			}
			arr, errObj := asArray("join", args[0])
			if errObj != nil {
				return errObj
			}
			sep, errObj := asString("join", args[1])
			if errObj != nil {
				return errObj
			}
			parts := make([]string, len(arr.Elements))
			for i, el := range arr.Elements {
				parts[i] = function.ToStringValue(el)
			}
			return &object.String{Value: strings.Join(parts, sep.Value)}
		}},
		"to_number": {Name: "to_number", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("to_number", args, 1); errObj != nil {
				return errObj
			}
			s, errObj := asString("to_number", args[0])
			if errObj != nil {
				return errObj
			}
			val, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
			if err != nil {
				return errf("cannot convert %q to a number", s.Value)
			}
			return &object.Number{Value: val, IsFloat: strings.Contains(s.Value, ".")}
		}},
	}
}
