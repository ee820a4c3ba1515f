package builtin

import (
	"time"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// timeBuiltins registers sleep/now, the synchronous host implementation
// spec.md §9's open question calls for — `(number ms) → nil` — using
// time.Sleep instead of the original's child-process spawning.
func timeBuiltins() map[string]*function.Builtin {
	return map[string]*function.Builtin{
		"sleep": {Name: "sleep", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("sleep", args, 1); errObj != nil {
				return errObj
			}
			ms, errObj := asNumber("sleep", args[0])
			if errObj != nil {
				return errObj
			}
			time.Sleep(time.Duration(ms.Value) * time.Millisecond)
			return object.NIL
		}},
		"now": {Name: "now", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("now", args, 0); errObj != nil {
				return errObj
			}
			return &object.Number{Value: float64(time.Now().UnixMilli())}
		}},
	}
}
