package builtin

import (
	"os"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// osBuiltins registers env/args/exit, grounded on the teacher's std/os.go.
func osBuiltins() map[string]*function.Builtin {
	return map[string]*function.Builtin{
		"env": {Name: "env", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("env", args, 1); errObj != nil {
				return errObj
			}
			name, errObj := asString("env", args[0])
			if errObj != nil {
				return errObj
			}
			return &object.String{Value: os.Getenv(name.Value)}
		}},
		"args": {Name: "args", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("args", args, 0); errObj != nil {
				return errObj
			}
			rest := os.Args[1:]
			elements := make([]object.Object, len(rest))
			for i, a := range rest {
				elements[i] = &object.String{Value: a}
			}
			return &object.Array{Elements: elements}
		}},
		"exit": {Name: "exit", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("exit", args, 1); errObj != nil {
				return errObj
			}
			code, errObj := asNumber("exit", args[0])
			if errObj != nil {
				return errObj
			}
			os.Exit(int(code.Value))
			return object.NIL // unreachable
		}},
	}
}
