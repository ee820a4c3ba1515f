// Package env implements LLL's chained lexical environment: the mapping
// from identifier to (value, constant?) with parent-walking lookup and
// mutation, as specified in spec.md §4.3.
package env

import "github.com/lll-lang/lll/object"

// entry is a single binding: its current value and whether it was declared
// with `const` (and therefore immutable after creation).
type entry struct {
	value    object.Object
	constant bool
}

// Environment is one lexical scope frame. A function's closure captures the
// *Environment active at its declaration by reference — never a copy — so
// that mutations made through one call are visible to later calls that
// share the same captured frame (spec §3, §8's closure-counter scenario).
type Environment struct {
	vars   map[string]entry
	parent *Environment
}

// New creates a fresh environment. A nil parent marks a global/root scope.
func New(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]entry),
		parent: parent,
	}
}

// Define writes a binding into the current frame only, regardless of
// whether an ancestor frame already defines the same name (shadowing).
func (e *Environment) Define(name string, value object.Object, constant bool) {
	e.vars[name] = entry{value: value, constant: constant}
}

// Get walks the parent chain looking for name, returning (value, true) on
// the first hit or (nil, false) if no frame in the chain defines it.
func (e *Environment) Get(name string) (object.Object, bool) {
	for env := e; env != nil; env = env.parent {
		if en, ok := env.vars[name]; ok {
			return en.value, true
		}
	}
	return nil, false
}

// Set walks the parent chain to find the frame that originally defined
// name and mutates the binding there. It fails (returns false) if name is
// unbound anywhere in the chain, or if the binding it finds is constant —
// set never implicitly defines a new binding.
func (e *Environment) Set(name string, value object.Object) bool {
	for env := e; env != nil; env = env.parent {
		if en, ok := env.vars[name]; ok {
			if en.constant {
				return false
			}
			env.vars[name] = entry{value: value, constant: false}
			return true
		}
	}
	return false
}

// IsConstant reports whether name resolves, anywhere in the chain, to a
// constant binding. Used by Set's caller to report a precise error message
// ("Cannot reassign constant" vs "undefined variable").
func (e *Environment) IsConstant(name string) bool {
	for env := e; env != nil; env = env.parent {
		if en, ok := env.vars[name]; ok {
			return en.constant
		}
	}
	return false
}

// Has reports whether name is bound anywhere in the chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// OwnNames returns the names defined directly in this frame, not inherited
// from any parent. Used by the module loader's export rule.
func (e *Environment) OwnNames() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	return names
}

// OwnEntry returns the value and constantness of a binding defined directly
// in this frame (not walking parents), used by the loader to decide which
// of a module's own bindings qualify for export.
func (e *Environment) OwnEntry(name string) (value object.Object, constant bool, ok bool) {
	en, found := e.vars[name]
	if !found {
		return nil, false, false
	}
	return en.value, en.constant, true
}

// Parent returns the enclosing environment, or nil at the root.
func (e *Environment) Parent() *Environment {
	return e.parent
}
