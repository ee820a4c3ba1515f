package builtin

import (
	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
)

// New is the factory spec.md §4.6 describes: it receives the shared output
// buffer and returns the complete name-to-callable registry.
func New(output *[]string) map[string]*function.Builtin {
	reg := map[string]*function.Builtin{
		"range": {Name: "range", Fn: rangeFn},
	}
	for name, b := range core(output) {
		reg[name] = b
	}
	for name, b := range arrays() {
		reg[name] = b
	}
	for name, b := range stringBuiltins() {
		reg[name] = b
	}
	for name, b := range mathBuiltins() {
		reg[name] = b
	}
	for name, b := range ioBuiltins() {
		reg[name] = b
	}
	for name, b := range osBuiltins() {
		reg[name] = b
	}
	for name, b := range netBuiltins() {
		reg[name] = b
	}
	for name, b := range timeBuiltins() {
		reg[name] = b
	}
	for name, b := range quantumBuiltins() {
		reg[name] = b
	}
	return reg
}

// rangeFn builds the array 0..n-1, used throughout spec.md's own examples
// (e.g. §8's `for i in range(5)` scenario) though it isn't separately named
// as a DOMAIN STACK component — it's the one ordinary-array-producing
// builtin the CORE's own test scenarios assume exists.
func rangeFn(args []object.Object, e *env.Environment) object.Object {
	if errObj := requireArgs("range", args, 1); errObj != nil {
		return errObj
	}
	n, errObj := asNumber("range", args[0])
	if errObj != nil {
		return errObj
	}
	count := int(n.Value)
	if count < 0 {
		return errf("range: negative length %d", count)
	}
	elements := make([]object.Object, count)
	for i := 0; i < count; i++ {
		elements[i] = &object.Number{Value: float64(i)}
	}
	return &object.Array{Elements: elements}
}

// Populate installs every built-in as a constant binding in global, per
// spec.md §4.5's "pre-populated global environment holding all built-ins
// as constants".
func Populate(global *env.Environment, output *[]string) {
	for name, b := range New(output) {
		global.Define(name, b, true)
	}
}
