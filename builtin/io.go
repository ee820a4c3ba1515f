package builtin

import (
	"os"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// ioBuiltins registers read_file/write_file/append_file, grounded on the
// teacher's file/file.go (fopen/fread/fwrite), adapted to one-shot calls:
// LLL has no stateful file-handle runtime value, so each call opens,
// performs one operation, and closes (see SPEC_FULL.md's DOMAIN STACK).
func ioBuiltins() map[string]*function.Builtin {
	return map[string]*function.Builtin{
		"read_file": {Name: "read_file", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("read_file", args, 1); errObj != nil {
				return errObj
			}
			path, errObj := asString("read_file", args[0])
			if errObj != nil {
				return errObj
			}
			data, err := os.ReadFile(path.Value)
			if err != nil {
				return errf("read_file: %s", err.Error())
			}
			return &object.String{Value: string(data)}
		}},
		"write_file": {Name: "write_file", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("write_file", args, 2); errObj != nil {
				return errObj
			}
			path, errObj := asString("write_file", args[0])
			if errObj != nil {
				return errObj
			}
			data, errObj := asString("write_file", args[1])
			if errObj != nil {
				return errObj
			}
			if err := os.WriteFile(path.Value, []byte(data.Value), 0o644); err != nil {
				return errf("write_file: %s", err.Error())
			}
			return object.NIL
		}},
		"append_file": {Name: "append_file", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("append_file", args, 2); errObj != nil {
				return errObj
			}
			path, errObj := asString("append_file", args[0])
			if errObj != nil {
				return errObj
			}
			data, errObj := asString("append_file", args[1])
			if errObj != nil {
				return errObj
			}
			f, err := os.OpenFile(path.Value, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return errf("append_file: %s", err.Error())
			}
			defer f.Close()
			if _, err := f.WriteString(data.Value); err != nil {
				return errf("append_file: %s", err.Error())
			}
			return object.NIL
		}},
	}
}
