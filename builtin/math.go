package builtin

import (
	"math"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// mathBuiltins registers sqrt/pow/abs/floor/ceil/min/max, grounded on the
// teacher's std/math.go.
func mathBuiltins() map[string]*function.Builtin {
	unary := func(name string, f func(float64) float64) *function.Builtin {
		return &function.Builtin{Name: name, Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs(name, args, 1); errObj != nil {
				return errObj
			}
			n, errObj := asNumber(name, args[0])
			if errObj != nil {
				return errObj
			}
			return &object.Number{Value: f(n.Value)}
		}}
	}

	binary := func(name string, f func(a, b float64) float64) *function.Builtin {
		return &function.Builtin{Name: name, Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs(name, args, 2); errObj != nil {
				return errObj
			}
			a, errObj := asNumber(name, args[0])
			if errObj != nil {
				return errObj
			}
			b, errObj := asNumber(name, args[1])
			if errObj != nil {
				return errObj
			}
			return &object.Number{Value: f(a.Value, b.Value)}
		}}
	}

	return map[string]*function.Builtin{
		"sqrt": unary("sqrt", math.Sqrt),
		"abs":  unary("abs", math.Abs),
		"floor": unary("floor", math.Floor),
		"ceil":  unary("ceil", math.Ceil),
		"pow":   binary("pow", math.Pow),
		"min":   binary("min", math.Min),
		"max":   binary("max", math.Max),
	}
}
