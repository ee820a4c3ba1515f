package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockDepthDelta_SimpleIf(t *testing.T) {
	assert.Equal(t, 1, blockDepthDelta("if x == 1 then"))
	assert.Equal(t, -1, blockDepthDelta("end"))
}

func TestBlockDepthDelta_IfElseIfElseIsOneOpenOneClose(t *testing.T) {
	assert.Equal(t, 1, blockDepthDelta("if x == 1 then"))
	assert.Equal(t, 0, blockDepthDelta("else if x == 2 then"))
	assert.Equal(t, 0, blockDepthDelta("else"))
	assert.Equal(t, -1, blockDepthDelta("end"))
}

func TestBlockDepthDelta_WhileForFuncTry(t *testing.T) {
	assert.Equal(t, 1, blockDepthDelta("while x < 5 do"))
	assert.Equal(t, 1, blockDepthDelta("for i in range(5) do"))
	assert.Equal(t, 1, blockDepthDelta("func fac(n)"))
	assert.Equal(t, 1, blockDepthDelta("try"))
	assert.Equal(t, 0, blockDepthDelta("catch err"))
}

func TestBlockDepthDelta_PlainExpressionIsZero(t *testing.T) {
	assert.Equal(t, 0, blockDepthDelta(`println("hi")`))
}

func TestBlockDepthDelta_NestedIfsAccumulate(t *testing.T) {
	depth := 0
	depth += blockDepthDelta("if a then")
	depth += blockDepthDelta("if b then")
	assert.Equal(t, 2, depth)
	depth += blockDepthDelta("end")
	assert.Equal(t, 1, depth)
	depth += blockDepthDelta("end")
	assert.Equal(t, 0, depth)
}

func TestExecuteWithRecovery_SimplePrintlnProducesOutputLine(t *testing.T) {
	sess := newSession()
	var buf bytes.Buffer
	r := &Repl{}

	r.executeWithRecovery(&buf, `println("hello")`, sess)

	assert.Contains(t, buf.String(), "hello")
}

func TestExecuteWithRecovery_SessionPersistsBindingsAcrossCalls(t *testing.T) {
	sess := newSession()
	var buf bytes.Buffer
	r := &Repl{}

	r.executeWithRecovery(&buf, `let x = 41`, sess)
	buf.Reset()
	r.executeWithRecovery(&buf, `println(to_string(x + 1))`, sess)

	assert.Contains(t, buf.String(), "42")
}

func TestExecuteWithRecovery_ParseErrorIsReported(t *testing.T) {
	sess := newSession()
	var buf bytes.Buffer
	r := &Repl{}

	r.executeWithRecovery(&buf, `let = `, sess)

	assert.Contains(t, buf.String(), "PARSE ERROR")
}

func TestExecuteWithRecovery_UncaughtRuntimeErrorIsReported(t *testing.T) {
	sess := newSession()
	var buf bytes.Buffer
	r := &Repl{}

	r.executeWithRecovery(&buf, `let x = 1 / 0`, sess)

	assert.True(t, strings.Contains(buf.String(), "RuntimeError") || strings.Contains(buf.String(), "division"))
}
