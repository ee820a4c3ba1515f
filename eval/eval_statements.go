package eval

import (
	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

func (ev *Evaluator) evalLet(n *parser.LetStatement, e *env.Environment) object.Object {
	var value object.Object = object.NIL
	if n.Value != nil {
		value = ev.Eval(n.Value, e)
		if object.IsError(value) || object.IsSignal(value) {
			return value
		}
	}
	e.Define(n.Name, value, false)
	return object.NIL
}

func (ev *Evaluator) evalConst(n *parser.ConstStatement, e *env.Environment) object.Object {
	value := ev.Eval(n.Value, e)
	if object.IsError(value) || object.IsSignal(value) {
		return value
	}
	e.Define(n.Name, value, true)
	return object.NIL
}

func (ev *Evaluator) evalAssign(n *parser.AssignStatement, e *env.Environment) object.Object {
	value := ev.Eval(n.Value, e)
	if object.IsError(value) || object.IsSignal(value) {
		return value
	}
	if !e.Set(n.Name, value) {
		if e.Has(n.Name) && e.IsConstant(n.Name) {
			return ev.createError(n, "RuntimeError", "Cannot reassign constant '%s'", n.Name)
		}
		return ev.createError(n, "RuntimeError", "undefined variable '%s'", n.Name)
	}
	return object.NIL
}

func (ev *Evaluator) evalIndexAssign(n *parser.IndexAssignStatement, e *env.Environment) object.Object {
	bound, ok := e.Get(n.Name)
	if !ok {
		return ev.createError(n, "RuntimeError", "undefined variable '%s'", n.Name)
	}
	arr, ok := bound.(*object.Array)
	if !ok {
		return ev.createError(n, "RuntimeError", "'%s' is not an array", n.Name)
	}

	idxVal := ev.Eval(n.Index, e)
	if object.IsError(idxVal) || object.IsSignal(idxVal) {
		return idxVal
	}
	idxNum, ok := idxVal.(*object.Number)
	if !ok {
		return ev.createError(n, "RuntimeError", "array index must be a number")
	}
	i := int(idxNum.Value)
	if i < 0 || i >= len(arr.Elements) {
		return ev.createError(n, "RuntimeError", "index %d out of bounds for array of length %d", i, len(arr.Elements))
	}

	value := ev.Eval(n.Value, e)
	if object.IsError(value) || object.IsSignal(value) {
		return value
	}
	arr.Elements[i] = value
	return object.NIL
}

func (ev *Evaluator) evalIf(n *parser.IfStatement, e *env.Environment) object.Object {
	for _, branch := range n.Branches {
		cond := ev.Eval(branch.Condition, e)
		if object.IsError(cond) || object.IsSignal(cond) {
			return cond
		}
		if function.IsTruthy(cond) {
			return ev.evalBlock(branch.Body, env.New(e))
		}
	}
	if n.Else != nil {
		return ev.evalBlock(n.Else, env.New(e))
	}
	return object.NIL
}

func (ev *Evaluator) evalWhile(n *parser.WhileStatement, e *env.Environment) object.Object {
	for {
		if !ev.step() {
			return ev.budgetExceeded(n)
		}
		cond := ev.Eval(n.Condition, e)
		if object.IsError(cond) || object.IsSignal(cond) {
			return cond
		}
		if !function.IsTruthy(cond) {
			break
		}

		result := ev.evalBlock(n.Body, env.New(e))
		if object.IsError(result) {
			return result
		}
		switch result.(type) {
		case *object.BreakSignal:
			return object.NIL
		case *object.ReturnSignal:
			return result
		case *object.ContinueSignal:
			continue
		}
	}
	return object.NIL
}

func (ev *Evaluator) evalForIn(n *parser.ForInStatement, e *env.Environment) object.Object {
	iterable := ev.Eval(n.Iterable, e)
	if object.IsError(iterable) || object.IsSignal(iterable) {
		return iterable
	}
	arr, ok := iterable.(*object.Array)
	if !ok {
		return ev.createError(n, "RuntimeError", "for-in target is not an array")
	}

	for _, elem := range arr.Elements {
		if !ev.step() {
			return ev.budgetExceeded(n)
		}
		bodyEnv := env.New(e)
		bodyEnv.Define(n.Var, elem, false)

		result := ev.evalBlock(n.Body, bodyEnv)
		if object.IsError(result) {
			return result
		}
		switch result.(type) {
		case *object.BreakSignal:
			return object.NIL
		case *object.ReturnSignal:
			return result
		case *object.ContinueSignal:
			continue
		}
	}
	return object.NIL
}

func (ev *Evaluator) evalFuncDecl(n *parser.FuncDeclStatement, e *env.Environment) object.Object {
	fn := &function.UserFunction{
		Name:   n.Name,
		Params: n.Params,
		Body:   n.Body,
		Env:    e,
	}
	e.Define(n.Name, fn, true)
	return object.NIL
}

func (ev *Evaluator) evalReturn(n *parser.ReturnStatement, e *env.Environment) object.Object {
	var value object.Object = object.NIL
	if n.Value != nil {
		value = ev.Eval(n.Value, e)
		if object.IsError(value) || object.IsSignal(value) {
			return value
		}
	}
	return &object.ReturnSignal{Value: value}
}

func (ev *Evaluator) evalImport(n *parser.ImportStatement, e *env.Environment) object.Object {
	if ev.ImportFn == nil {
		return ev.createError(n, "RuntimeError", "no import callback configured")
	}
	if err := ev.ImportFn(n.Path, ev.File); err != nil {
		return ev.createError(n, "RuntimeError", "%s", err.Error())
	}
	return object.NIL
}

// evalTry runs Body in a child environment; a raised error is caught and its
// bare message bound to CatchVar for CatchBody. Control-flow signals pass
// through untouched (spec.md §4.4/§7, testable property 9).
func (ev *Evaluator) evalTry(n *parser.TryStatement, e *env.Environment) object.Object {
	result := ev.evalBlock(n.Body, env.New(e))

	caught, ok := result.(*object.Error)
	if !ok {
		return result
	}

	catchEnv := env.New(e)
	catchEnv.Define(n.CatchVar, &object.String{Value: caught.Message}, false)
	return ev.evalBlock(n.CatchBody, catchEnv)
}
