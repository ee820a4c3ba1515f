package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

func TestIsTruthy_FalsyValues(t *testing.T) {
	assert.False(t, IsTruthy(object.NIL))
	assert.False(t, IsTruthy(object.FALSE))
	assert.False(t, IsTruthy(&object.Number{Value: 0}))
	assert.False(t, IsTruthy(&object.String{Value: ""}))
}

func TestIsTruthy_TruthyValues(t *testing.T) {
	assert.True(t, IsTruthy(object.TRUE))
	assert.True(t, IsTruthy(&object.Number{Value: -1}))
	assert.True(t, IsTruthy(&object.String{Value: "0"}))
	assert.True(t, IsTruthy(&object.Array{}))
}

func TestToStringValue_Variants(t *testing.T) {
	assert.Equal(t, "nil", ToStringValue(object.NIL))
	assert.Equal(t, "true", ToStringValue(object.TRUE))
	assert.Equal(t, "42", ToStringValue(&object.Number{Value: 42}))
	assert.Equal(t, "hi", ToStringValue(&object.String{Value: "hi"}))
}

func TestUserFunction_ToString(t *testing.T) {
	fn := &UserFunction{Name: "add"}
	assert.Equal(t, "<function add>", fn.ToString())
	assert.Equal(t, object.FunctionType, fn.GetType())
}

func TestBuiltin_ToString(t *testing.T) {
	b := &Builtin{Name: "println"}
	assert.Equal(t, "<builtin println>", b.ToString())
	assert.Equal(t, object.BuiltinType, b.GetType())
}

func TestJoinFunctionSignature(t *testing.T) {
	sig := JoinFunctionSignature("add", []parser.Param{{Name: "a"}, {Name: "b"}})
	assert.Equal(t, "add(a, b)", sig)
}
