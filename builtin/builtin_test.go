package builtin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lll-lang/lll/object"
)

func TestCore_PrintlnAppendsOneLine(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["println"].Fn([]object.Object{&object.String{Value: "hi"}}, nil)
	assert.False(t, object.IsError(result))
	assert.Equal(t, []string{"hi"}, output)
}

func TestCore_Length(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["length"].Fn([]object.Object{&object.Array{Elements: []object.Object{object.NIL, object.NIL}}}, nil)
	num, ok := result.(*object.Number)
	require.True(t, ok)
	assert.Equal(t, float64(2), num.Value)
}

func TestCore_Type(t *testing.T) {
	output := []string{}
	reg := New(&output)
	assert.Equal(t, "int", reg["type"].Fn([]object.Object{&object.Number{Value: 3}}, nil).ToString())
	assert.Equal(t, "float", reg["type"].Fn([]object.Object{&object.Number{Value: 3.5}}, nil).ToString())
	assert.Equal(t, "string", reg["type"].Fn([]object.Object{&object.String{Value: "x"}}, nil).ToString())
	assert.Equal(t, "nil", reg["type"].Fn([]object.Object{object.NIL}, nil).ToString())
}

func TestArrays_PushPopSort(t *testing.T) {
	output := []string{}
	reg := New(&output)
	arr := &object.Array{Elements: []object.Object{&object.Number{Value: 3}, &object.Number{Value: 1}, &object.Number{Value: 2}}}

	reg["push"].Fn([]object.Object{arr, &object.Number{Value: 4}}, nil)
	assert.Len(t, arr.Elements, 4)

	popped := reg["pop"].Fn([]object.Object{arr}, nil)
	assert.Equal(t, float64(4), popped.(*object.Number).Value)
	assert.Len(t, arr.Elements, 3)

	reg["sort"].Fn([]object.Object{arr}, nil)
	var vals []float64
	for _, e := range arr.Elements {
		vals = append(vals, e.(*object.Number).Value)
	}
	assert.Equal(t, []float64{1, 2, 3}, vals)
}

func TestArrays_PopFromEmptyFails(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["pop"].Fn([]object.Object{&object.Array{}}, nil)
	assert.True(t, object.IsError(result))
}

func TestStrings_UpperLowerSplitJoinTrim(t *testing.T) {
	output := []string{}
	reg := New(&output)

	assert.Equal(t, "HI", reg["upper"].Fn([]object.Object{&object.String{Value: "hi"}}, nil).ToString())
	assert.Equal(t, "hi", reg["lower"].Fn([]object.Object{&object.String{Value: "HI"}}, nil).ToString())
	assert.Equal(t, "hi", reg["trim"].Fn([]object.Object{&object.String{Value: "  hi  "}}, nil).ToString())

	parts := reg["split"].Fn([]object.Object{&object.String{Value: "a,b,c"}, &object.String{Value: ","}}, nil).(*object.Array)
	require.Len(t, parts.Elements, 3)
	assert.Equal(t, "b", parts.Elements[1].ToString())

	joined := reg["join"].Fn([]object.Object{parts, &object.String{Value: "-"}}, nil)
	assert.Equal(t, "a-b-c", joined.ToString())
}

func TestStrings_ToNumber(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["to_number"].Fn([]object.Object{&object.String{Value: "3.5"}}, nil)
	num, ok := result.(*object.Number)
	require.True(t, ok)
	assert.Equal(t, 3.5, num.Value)

	errResult := reg["to_number"].Fn([]object.Object{&object.String{Value: "nope"}}, nil)
	assert.True(t, object.IsError(errResult))
}

func TestMath_Builtins(t *testing.T) {
	output := []string{}
	reg := New(&output)
	assert.Equal(t, float64(3), reg["sqrt"].Fn([]object.Object{&object.Number{Value: 9}}, nil).(*object.Number).Value)
	assert.Equal(t, float64(8), reg["pow"].Fn([]object.Object{&object.Number{Value: 2}, &object.Number{Value: 3}}, nil).(*object.Number).Value)
	assert.Equal(t, float64(5), reg["abs"].Fn([]object.Object{&object.Number{Value: -5}}, nil).(*object.Number).Value)
	assert.Equal(t, float64(2), reg["floor"].Fn([]object.Object{&object.Number{Value: 2.9}}, nil).(*object.Number).Value)
	assert.Equal(t, float64(3), reg["ceil"].Fn([]object.Object{&object.Number{Value: 2.1}}, nil).(*object.Number).Value)
	assert.Equal(t, float64(1), reg["min"].Fn([]object.Object{&object.Number{Value: 1}, &object.Number{Value: 2}}, nil).(*object.Number).Value)
	assert.Equal(t, float64(2), reg["max"].Fn([]object.Object{&object.Number{Value: 1}, &object.Number{Value: 2}}, nil).(*object.Number).Value)
}

func TestIO_WriteAppendReadFile(t *testing.T) {
	output := []string{}
	reg := New(&output)
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	reg["write_file"].Fn([]object.Object{&object.String{Value: path}, &object.String{Value: "hello"}}, nil)
	reg["append_file"].Fn([]object.Object{&object.String{Value: path}, &object.String{Value: " world"}}, nil)

	contents := reg["read_file"].Fn([]object.Object{&object.String{Value: path}}, nil)
	assert.Equal(t, "hello world", contents.ToString())
}

func TestIO_ReadMissingFileFails(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["read_file"].Fn([]object.Object{&object.String{Value: "/nonexistent/path.txt"}}, nil)
	assert.True(t, object.IsError(result))
}

func TestOS_EnvAndArgs(t *testing.T) {
	output := []string{}
	reg := New(&output)
	os.Setenv("LLL_TEST_VAR", "ok")
	defer os.Unsetenv("LLL_TEST_VAR")

	result := reg["env"].Fn([]object.Object{&object.String{Value: "LLL_TEST_VAR"}}, nil)
	assert.Equal(t, "ok", result.ToString())

	argsResult := reg["args"].Fn(nil, nil)
	_, ok := argsResult.(*object.Array)
	assert.True(t, ok)
}

func TestRange_BuildsZeroIndexedArray(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["range"].Fn([]object.Object{&object.Number{Value: 3}}, nil).(*object.Array)
	require.Len(t, result.Elements, 3)
	assert.Equal(t, float64(0), result.Elements[0].(*object.Number).Value)
	assert.Equal(t, float64(2), result.Elements[2].(*object.Number).Value)
}

func TestQuantum_BitIsZeroOrOne(t *testing.T) {
	output := []string{}
	reg := New(&output)
	for i := 0; i < 20; i++ {
		v := reg["quantum_bit"].Fn(nil, nil).(*object.Number).Value
		assert.True(t, v == 0 || v == 1)
	}
}

func TestQuantum_ChoiceFromEmptyArrayFails(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["quantum_choice"].Fn([]object.Object{&object.Array{}}, nil)
	assert.True(t, object.IsError(result))
}

func TestTime_SleepAndNow(t *testing.T) {
	output := []string{}
	reg := New(&output)
	before := reg["now"].Fn(nil, nil).(*object.Number).Value
	reg["sleep"].Fn([]object.Object{&object.Number{Value: 1}}, nil)
	after := reg["now"].Fn(nil, nil).(*object.Number).Value
	assert.GreaterOrEqual(t, after, before)
}

func TestArgCount_MismatchFails(t *testing.T) {
	output := []string{}
	reg := New(&output)
	result := reg["sqrt"].Fn([]object.Object{}, nil)
	assert.True(t, object.IsError(result))
}
