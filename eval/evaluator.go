// Package eval walks an LLL program tree against a lexical environment,
// producing values, output-buffer side effects, and non-local control-flow
// signals, under a step budget and call-frame stack for diagnostics
// (spec.md §4.4).
package eval

import (
	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

// MaxSteps is the evaluator's step budget (spec.md §4.4/§8 property 11).
const MaxSteps = 10_000_000

// CallFrame records one user-function invocation for error enrichment
// (spec.md glossary: "Call frame").
type CallFrame struct {
	Name   string
	File   string
	Line   int
	Column int
}

// ImportFunc is the host-provided import callback: given the literal
// import path and the importing file, it loads and merges that module. Set
// by the loader package; nil here means `import` fails with "no import
// callback configured" (useful for evaluator unit tests run in isolation).
type ImportFunc func(path, fromFile string) error

// Evaluator walks one program tree. Grounded on the teacher's
// eval/evaluator.go Evaluator struct (environment + registered functions +
// InvokeBuiltin + CreateError), generalized with a step counter and a call
// frame stack that the teacher does not have (see DESIGN.md).
type Evaluator struct {
	Global   *env.Environment
	File     string
	Output   *[]string
	Steps    int
	Frames   []CallFrame
	ImportFn ImportFunc
}

// New constructs an Evaluator. output is the shared, append-only output
// buffer built-ins write to; global should already be pre-populated with
// the built-in registry's bindings as constants (spec.md §4.5).
func New(file string, global *env.Environment, output *[]string, importFn ImportFunc) *Evaluator {
	return &Evaluator{
		Global:   global,
		File:     file,
		Output:   output,
		ImportFn: importFn,
	}
}

// step increments the global step counter and reports whether the budget
// still allows forward progress.
func (ev *Evaluator) step() bool {
	ev.Steps++
	return ev.Steps <= MaxSteps
}

// EvalProgram evaluates every top-level statement against the global
// environment in order, stopping early on an uncaught error or a stray
// top-level control-flow signal.
func (ev *Evaluator) EvalProgram(prog *parser.Program) object.Object {
	return ev.evalBlock(prog.Statements, ev.Global)
}

// evalBlock runs stmts in e, short-circuiting as soon as one produces an
// error or a non-local control-flow signal (spec.md §4.4).
func (ev *Evaluator) evalBlock(stmts []parser.Statement, e *env.Environment) object.Object {
	var result object.Object = object.NIL
	for _, stmt := range stmts {
		result = ev.Eval(stmt, e)
		if object.IsError(result) || object.IsSignal(result) {
			return result
		}
	}
	return result
}

// Eval is the single dispatch point for every statement and expression
// node, mirroring the teacher's evaluator's one big type switch rather than
// the dropped NodeVisitor/Accept double dispatch (see DESIGN.md).
func (ev *Evaluator) Eval(node parser.Node, e *env.Environment) object.Object {
	if !ev.step() {
		return ev.budgetExceeded(node)
	}

	switch n := node.(type) {
	// Statements
	case *parser.LetStatement:
		return ev.evalLet(n, e)
	case *parser.ConstStatement:
		return ev.evalConst(n, e)
	case *parser.AssignStatement:
		return ev.evalAssign(n, e)
	case *parser.IndexAssignStatement:
		return ev.evalIndexAssign(n, e)
	case *parser.IfStatement:
		return ev.evalIf(n, e)
	case *parser.WhileStatement:
		return ev.evalWhile(n, e)
	case *parser.ForInStatement:
		return ev.evalForIn(n, e)
	case *parser.FuncDeclStatement:
		return ev.evalFuncDecl(n, e)
	case *parser.ReturnStatement:
		return ev.evalReturn(n, e)
	case *parser.BreakStatement:
		return &object.BreakSignal{}
	case *parser.ContinueStatement:
		return &object.ContinueSignal{}
	case *parser.ImportStatement:
		return ev.evalImport(n, e)
	case *parser.TryStatement:
		return ev.evalTry(n, e)
	case *parser.ExpressionStatement:
		return ev.Eval(n.Expr, e)

	// Expressions
	case *parser.BinaryExpression:
		return ev.evalBinary(n, e)
	case *parser.UnaryExpression:
		return ev.evalUnary(n, e)
	case *parser.CallExpression:
		return ev.evalCall(n, e)
	case *parser.IndexExpression:
		return ev.evalIndex(n, e)
	case *parser.ArrayLiteral:
		return ev.evalArrayLiteral(n, e)
	case *parser.NumberLiteral:
		return &object.Number{Value: n.Value, IsFloat: n.IsFloat}
	case *parser.StringLiteral:
		return &object.String{Value: n.Value}
	case *parser.BooleanLiteral:
		return object.BoolObject(n.Value)
	case *parser.NilLiteral:
		return object.NIL
	case *parser.Identifier:
		return ev.evalIdentifier(n, e)

	default:
		return ev.createError(node, "RuntimeError", "unsupported node %T", node)
	}
}
