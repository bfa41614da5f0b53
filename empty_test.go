package objcase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gobd/objcase"
)

func TestIsEmptyObject(t *testing.T) {
	tests := []struct {
		name string
		in   objcase.Value
		want bool
	}{
		{name: "empty literal", in: objcase.NewObject().Value(), want: true},
		{name: "one key", in: objcase.NewObject().Set("a", objcase.Number(1)).Value(), want: false},
		{name: "undefined member still counts", in: objcase.NewObject().Set("a", objcase.Undefined()).Value(), want: false},
		{name: "empty array", in: objcase.Array(), want: false},
		{name: "empty instance", in: objcase.NewInstance("Date").Value(), want: false},
		{name: "null", in: objcase.Null(), want: false},
		{name: "undefined", in: objcase.Undefined(), want: false},
		{name: "string", in: objcase.String(""), want: false},
		{name: "func", in: objcase.Func("f"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objcase.IsEmptyObject(tt.in))
		})
	}
}

func TestIsEmptyObjectAfterDelete(t *testing.T) {
	o := objcase.NewObject().Set("a", objcase.Number(1))
	o.Delete("a")
	assert.True(t, objcase.IsEmptyObject(o.Value()))
}

func TestIsServerSide(t *testing.T) {
	assert.True(t, objcase.IsServerSide)
}
