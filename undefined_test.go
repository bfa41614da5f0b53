package objcase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/objcase"
)

func TestRemoveUndefined(t *testing.T) {
	inner := objcase.NewObject().
		Set("keep", objcase.String("x")).
		Set("drop", objcase.Undefined())
	elem := objcase.NewObject().
		Set("a", objcase.Undefined()).
		Set("b", objcase.Number(2))
	arr := objcase.Array(elem.Value(), objcase.Undefined(), objcase.Number(3))
	o := objcase.NewObject().
		Set("gone", objcase.Undefined()).
		Set("null", objcase.Null()).
		Set("zero", objcase.Number(0)).
		Set("empty", objcase.String("")).
		Set("nested", inner.Value()).
		Set("list", arr)

	got := objcase.RemoveUndefined(o)
	require.Same(t, o, got)

	assert.Equal(t, []string{"null", "zero", "empty", "nested", "list"}, o.Keys())
	assert.Equal(t, []string{"keep"}, inner.Keys())
	assert.Equal(t, []string{"b"}, elem.Keys())

	// Array elements themselves are never removed.
	elems, ok := arr.AsArray()
	require.True(t, ok)
	require.Len(t, elems, 3)
	assert.True(t, elems[1].IsUndefined())

	assert.Equal(t, `{"null":null,"zero":0,"empty":"","nested":{"keep":"x"},"list":[{"b":2},null,3]}`, o.String())
}

func TestRemoveUndefinedIdempotent(t *testing.T) {
	build := func() *objcase.Object {
		return objcase.NewObject().
			Set("a", objcase.Undefined()).
			Set("b", objcase.NewObject().Set("c", objcase.Undefined()).Value()).
			Set("d", objcase.Array(objcase.Array(objcase.NewObject().Set("e", objcase.Undefined()).Value())))
	}
	once := objcase.RemoveUndefined(build())
	twice := objcase.RemoveUndefined(objcase.RemoveUndefined(build()))
	assert.True(t, once.Equal(twice), "%s != %s", once, twice)
	assert.Equal(t, `{"b":{},"d":[[{}]]}`, once.String())
	require.NoError(t, objcase.Validate(once, objcase.NoUndefined))
}

func TestRemoveUndefinedInstances(t *testing.T) {
	inst := objcase.NewInstance("Map").Set("x", objcase.Undefined()).Set("y", objcase.Bool(true))
	o := objcase.NewObject().Set("m", inst.Value())
	objcase.RemoveUndefined(o)
	assert.Equal(t, []string{"y"}, inst.Keys())
	assert.Equal(t, "Map", inst.Class())
}

func TestRemoveUndefinedNil(t *testing.T) {
	assert.Nil(t, objcase.RemoveUndefined(nil))
}
