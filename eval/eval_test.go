package eval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/function"
	"github.com/lll-lang/lll/lexer"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

// newTestEvaluator builds an Evaluator with a minimal builtin set
// (println, to_string, range) sufficient for spec.md §8's end-to-end
// scenarios, without depending on the builtin package.
func newTestEvaluator(output *[]string) (*Evaluator, *env.Environment) {
	global := env.New(nil)

	global.Define("println", &function.Builtin{Name: "println", Fn: func(args []object.Object, e *env.Environment) object.Object {
		var line string
		if len(args) > 0 {
			line = function.ToStringValue(args[0])
		}
		*output = append(*output, line)
		return object.NIL
	}}, true)

	global.Define("to_string", &function.Builtin{Name: "to_string", Fn: func(args []object.Object, e *env.Environment) object.Object {
		if len(args) == 0 {
			return &object.String{Value: "nil"}
		}
		return &object.String{Value: function.ToStringValue(args[0])}
	}}, true)

	global.Define("range", &function.Builtin{Name: "range", Fn: func(args []object.Object, e *env.Environment) object.Object {
		n, ok := args[0].(*object.Number)
		if !ok {
			return object.Errorf("range requires a number")
		}
		count := int(n.Value)
		elems := make([]object.Object, count)
		for i := 0; i < count; i++ {
			elems[i] = &object.Number{Value: float64(i)}
		}
		return &object.Array{Elements: elems}
	}}, true)

	ev := New("test.lux", global, output, nil)
	return ev, global
}

func run(t *testing.T, src string) ([]string, object.Object) {
	t.Helper()
	toks := lexer.Tokenize(src)
	p := parser.New(toks, "test.lux")
	prog, perr := p.ParseProgram()
	require.Nil(t, perr, "parse error: %v", perr)

	output := []string{}
	ev, _ := newTestEvaluator(&output)
	result := ev.EvalProgram(prog)
	return output, result
}

func TestE2E_PrintlnHello(t *testing.T) {
	out, result := run(t, `println("hello")`)
	assert.Equal(t, []string{"hello"}, out)
	assert.False(t, object.IsError(result))
}

func TestE2E_LetAndToString(t *testing.T) {
	out, _ := run(t, "let x = 42\nprintln(to_string(x))")
	assert.Equal(t, []string{"42"}, out)
}

func TestE2E_ConstReassignmentFails(t *testing.T) {
	_, result := run(t, "const PI = 3.14\nPI = 2")
	require.True(t, object.IsError(result))
	assert.Contains(t, result.ToString(), "Cannot reassign constant")
}

func TestE2E_OperatorPrecedence(t *testing.T) {
	out, _ := run(t, `println(to_string(2 + 3 * 4))`)
	assert.Equal(t, []string{"14"}, out)
}

func TestE2E_RecursiveFactorial(t *testing.T) {
	src := "func fac(n)\n if n <= 1 then\n  return 1\n end\n return n * fac(n - 1)\nend\nprintln(to_string(fac(5)))"
	out, result := run(t, src)
	require.False(t, object.IsError(result), "unexpected error: %v", result)
	assert.Equal(t, []string{"120"}, out)
}

func TestE2E_ForInWithContinue(t *testing.T) {
	src := "for i in range(5) do\n if i == 2 then continue end\n println(to_string(i))\nend"
	out, _ := run(t, src)
	assert.Equal(t, []string{"0", "1", "3", "4"}, out)
}

func TestE2E_TryCatchIsolatesError(t *testing.T) {
	src := "try\n let x = 1 / 0\ncatch err\n println(\"caught: \" + err)\nend"
	out, result := run(t, src)
	require.False(t, object.IsError(result))
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "caught:")
}

func TestE2E_ClosureCounterSharesState(t *testing.T) {
	src := "func make()\n let c = 0\n func inc()\n  c = c + 1\n  return c\n end\n return inc\nend\nlet f = make()\nprintln(to_string(f()))\nprintln(to_string(f()))"
	out, _ := run(t, src)
	assert.Equal(t, []string{"1", "2"}, out)
}

func TestPrecedence_PowerRightAssociative(t *testing.T) {
	out, _ := run(t, `println(to_string(2 ^ 3 ^ 2))`)
	assert.Equal(t, []string{"512"}, out)
}

func TestPrecedence_AndOrTruthTable(t *testing.T) {
	out, _ := run(t, `println(to_string(true and false or true))`)
	assert.Equal(t, []string{"true"}, out)
}

func TestShortCircuit_AndDoesNotEvaluateRightWhenLeftFalsy(t *testing.T) {
	evaluated := false
	global := env.New(nil)
	global.Define("sideeffect", &function.Builtin{Name: "sideeffect", Fn: func(args []object.Object, e *env.Environment) object.Object {
		evaluated = true
		return object.TRUE
	}}, true)
	toks := lexer.Tokenize("let r = false and sideeffect()")
	p := parser.New(toks, "t.lux")
	prog, perr := p.ParseProgram()
	require.Nil(t, perr)
	ev := New("t.lux", global, &[]string{}, nil)
	result := ev.EvalProgram(prog)
	require.False(t, object.IsError(result))
	assert.False(t, evaluated, "right operand of 'and' must not be evaluated when left is falsy")
}

func TestShortCircuit_OrDoesNotEvaluateRightWhenLeftTruthy(t *testing.T) {
	evaluated := false
	global := env.New(nil)
	global.Define("sideeffect", &function.Builtin{Name: "sideeffect", Fn: func(args []object.Object, e *env.Environment) object.Object {
		evaluated = true
		return object.TRUE
	}}, true)
	toks := lexer.Tokenize("let r = true or sideeffect()")
	p := parser.New(toks, "t.lux")
	prog, perr := p.ParseProgram()
	require.Nil(t, perr)
	ev := New("t.lux", global, &[]string{}, nil)
	result := ev.EvalProgram(prog)
	require.False(t, object.IsError(result))
	assert.False(t, evaluated)
}

func TestConstImmutability_FunctionNameIsConstant(t *testing.T) {
	_, result := run(t, "func f()\n return 1\nend\nf = 2")
	require.True(t, object.IsError(result))
	assert.Contains(t, result.ToString(), "Cannot reassign constant")
}

func TestArrayAliasing_IndexAssignmentVisibleThroughOtherBinding(t *testing.T) {
	out, _ := run(t, "let a = [1, 2, 3]\nlet b = a\nb[0] = 99\nprintln(to_string(a[0]))")
	assert.Equal(t, []string{"99"}, out)
}

func TestTruthiness_Table(t *testing.T) {
	cases := []struct {
		expr     string
		expected bool
	}{
		{"nil", false},
		{"false", false},
		{"0", false},
		{`""`, false},
		{"[]", true},
		{`"0"`, true},
		{"1", true},
		{"-1", true},
	}
	for _, c := range cases {
		out, _ := run(t, fmt.Sprintf(`if %s then println("truthy") else println("falsy") end`, c.expr))
		want := "falsy"
		if c.expected {
			want = "truthy"
		}
		assert.Equal(t, []string{want}, out, "expr %q", c.expr)
	}
}

func TestTryIsolatesErrorsOnly_ReturnEscapesTry(t *testing.T) {
	src := "func f()\n try\n  return 1\n catch e\n  return 2\n end\n return 3\nend\nprintln(to_string(f()))"
	out, _ := run(t, src)
	assert.Equal(t, []string{"1"}, out)
}

func TestTryIsolatesErrorsOnly_BreakEscapesTryInsideLoop(t *testing.T) {
	src := "let seen = 0\nwhile true do\n try\n  break\n catch e\n  println(\"no\")\n end\n seen = 1\nend\nprintln(to_string(seen))"
	out, _ := run(t, src)
	assert.Equal(t, []string{"0"}, out)
}

func TestStepBudget_ExceedsFailsWithBudgetError(t *testing.T) {
	global := env.New(nil)
	ev := New("t.lux", global, &[]string{}, nil)
	toks := lexer.Tokenize("while true do\nend")
	p := parser.New(toks, "t.lux")
	prog, perr := p.ParseProgram()
	require.Nil(t, perr)
	result := ev.EvalProgram(prog)
	require.True(t, object.IsError(result))
	assert.Contains(t, result.ToString(), "execution limit exceeded")
}

func TestDivisionByZeroFailsBeforeProducingValue(t *testing.T) {
	_, result := run(t, "let x = 1 / 0")
	require.True(t, object.IsError(result))
	assert.Contains(t, result.ToString(), "division by zero")
}

func TestUndefinedVariableFails(t *testing.T) {
	_, result := run(t, "println(to_string(missing))")
	require.True(t, object.IsError(result))
	assert.Contains(t, result.ToString(), "undefined variable")
}

func TestIndexOutOfBoundsFails(t *testing.T) {
	_, result := run(t, "let a = [1, 2]\nlet x = a[5]")
	require.True(t, object.IsError(result))
	assert.Contains(t, result.ToString(), "out of bounds")
}

func TestErrorEnrichment_IncludesFileLineColumn(t *testing.T) {
	global := env.New(nil)
	ev := New("myfile.lux", global, &[]string{}, nil)
	toks := lexer.Tokenize("let x = 1 / 0")
	p := parser.New(toks, "myfile.lux")
	prog, perr := p.ParseProgram()
	require.Nil(t, perr)
	result := ev.EvalProgram(prog)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	full := errObj.FullString()
	assert.Contains(t, full, "myfile.lux:1:11")
	assert.Contains(t, full, "RuntimeError")
}

func TestErrorEnrichment_FrameStackOnUncaughtErrorInFunction(t *testing.T) {
	src := "func boom()\n return 1 / 0\nend\nboom()"
	global := env.New(nil)
	global.Define("println", &function.Builtin{Name: "println"}, true)
	ev := New("t.lux", global, &[]string{}, nil)
	toks := lexer.Tokenize(src)
	p := parser.New(toks, "t.lux")
	prog, perr := p.ParseProgram()
	require.Nil(t, perr)
	result := ev.EvalProgram(prog)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errObj.FullString(), "boom")
}
