package builtin

import (
	"sort"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// arrays registers push/pop/sort, grounded on the teacher's
// std/arrays.go sortArray, mutating in place so aliased bindings observe
// the change (spec.md §5, §8 property 7).
func arrays() map[string]*function.Builtin {
	return map[string]*function.Builtin{
		"push": {Name: "push", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("push", args, 2); errObj != nil {
				return errObj
			}
			arr, errObj := asArray("push", args[0])
			if errObj != nil {
				return errObj
			}
			arr.Elements = append(arr.Elements, args[1])
			return object.NIL
		}},
		"pop": {Name: "pop", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("pop", args, 1); errObj != nil {
				return errObj
			}
			arr, errObj := asArray("pop", args[0])
			if errObj != nil {
				return errObj
			}
			if len(arr.Elements) == 0 {
				return errf("pop from empty array")
			}
			last := arr.Elements[len(arr.Elements)-1]
			arr.Elements = arr.Elements[:len(arr.Elements)-1]
			return last
		}},
		"sort": {Name: "sort", Fn: func(args []object.Object, e *env.Environment) object.Object {
			if errObj := requireArgs("sort", args, 1); errObj != nil {
				return errObj
			}
			arr, errObj := asArray("sort", args[0])
			if errObj != nil {
				return errObj
			}
			return sortArray(arr)
		}},
	}
}

func sortArray(arr *object.Array) object.Object {
	if len(arr.Elements) < 2 {
		return object.NIL
	}

	if _, ok := arr.Elements[0].(*object.Number); ok {
		for _, el := range arr.Elements {
			if _, ok := el.(*object.Number); !ok {
				return errf("sort requires a uniformly-typed array of numbers or strings")
			}
		}
		sort.Slice(arr.Elements, func(i, j int) bool {
			return arr.Elements[i].(*object.Number).Value < arr.Elements[j].(*object.Number).Value
		})
		return object.NIL
	}

	if _, ok := arr.Elements[0].(*object.String); ok {
		for _, el := range arr.Elements {
			if _, ok := el.(*object.String); !ok {
				return errf("sort requires a uniformly-typed array of numbers or strings")
			}
		}
		sort.Slice(arr.Elements, func(i, j int) bool {
			return arr.Elements[i].(*object.String).Value < arr.Elements[j].(*object.String).Value
		})
		return object.NIL
	}

	return errf("sort requires an array of numbers or strings")
}
