// Package loader implements LLL's module system: resolving import paths
// relative to the importing file, detecuting import cycles, caching
// executed modules, and merging exported names into the host's global
// environment (spec.md §4.5).
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/eval"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/lexer"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

// Loader owns the module cache and reentry guard for one program's
// lifetime. Grounded on the shape of the teacher's evalImportStatement /
// std.Package registry idea, generalized to a real file-based loader (see
// DESIGN.md).
type Loader struct {
	Global  *env.Environment
	Output  *[]string
	cache   map[string]*env.Environment
	loading map[string]bool
}

// New constructs a Loader. global should already hold the built-in
// registry's bindings as constants.
func New(global *env.Environment, output *[]string) *Loader {
	return &Loader{
		Global:  global,
		Output:  output,
		cache:   make(map[string]*env.Environment),
		loading: make(map[string]bool),
	}
}

// Import satisfies eval.ImportFunc. path is the literal string from an
// `import` statement; fromFile is the importing file's path.
func (l *Loader) Import(path, fromFile string) error {
	resolved, err := resolvePath(path, fromFile)
	if err != nil {
		return err
	}

	if l.loading[resolved] {
		return fmt.Errorf("circular import detected: %s", resolved)
	}
	if modEnv, ok := l.cache[resolved]; ok {
		mergeExports(modEnv, l.Global)
		return nil
	}

	l.loading[resolved] = true
	defer delete(l.loading, resolved)

	modEnv, err := l.execute(resolved)
	if err != nil {
		return err
	}
	l.cache[resolved] = modEnv
	mergeExports(modEnv, l.Global)
	return nil
}

// resolvePath joins path against the importing file's directory and
// appends ".lux" when the path carries no extension of its own.
func resolvePath(path, fromFile string) (string, error) {
	dir := filepath.Dir(fromFile)
	joined := filepath.Join(dir, path)
	if filepath.Ext(joined) == "" {
		joined += ".lux"
	}
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("cannot resolve import path %q: %w", path, err)
	}
	return abs, nil
}

// execute lexes, parses, and evaluates resolved in a fresh child
// environment of the global environment, per spec.md §4.5 step 3.
func (l *Loader) execute(resolved string) (*env.Environment, error) {
	src, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot read module %q: %w", resolved, err)
	}

	toks := lexer.Tokenize(string(src))
	p := parser.New(toks, resolved)
	prog, perr := p.ParseProgram()
	if perr != nil {
		return nil, fmt.Errorf("ParseError: %s at %s:%d:%d", perr.Message, resolved, perr.Line, perr.Column)
	}

	modEnv := env.New(l.Global)
	modEval := eval.New(resolved, modEnv, l.Output, l.Import)
	result := modEval.EvalProgram(prog)
	if errObj, ok := result.(*object.Error); ok {
		return nil, fmt.Errorf("%s", errObj.FullString())
	}
	return modEnv, nil
}

// mergeExports propagates a module's own (non-inherited) user functions,
// builtins, and constants into dst, never overwriting an existing binding
// (spec.md §4.5's export rule).
func mergeExports(modEnv *env.Environment, dst *env.Environment) {
	for _, name := range modEnv.OwnNames() {
		if dst.Has(name) {
			continue
		}
		value, constant, ok := modEnv.OwnEntry(name)
		if !ok {
			continue
		}
		_, isUserFn := value.(*function.UserFunction)
		_, isBuiltin := value.(*function.Builtin)
		if constant || isUserFn || isBuiltin {
			dst.Define(name, value, true)
		}
	}
}
