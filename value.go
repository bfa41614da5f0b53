package objcase

import (
	"math"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	KindUndefined Kind = iota // absent value; the zero Kind
	KindNull                  // JSON null
	KindBool                  // true or false
	KindNumber                // float64, including NaN and ±Inf
	KindString                // UTF-8 string
	KindArray                 // ordered list of values
	KindObject                // *Object, plain or class instance
	KindFunc                  // named function placeholder
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
	KindFunc:      "func",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node of a JSON-like value tree. The zero Value is undefined.
//
// Arrays and objects are held by reference: copying a Value shares the
// underlying elements, the same way a variable holding an object does in a
// dynamically typed runtime.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string // string payload, or the function name for KindFunc
	arr  []Value
	obj  *Object
}

// Undefined returns the undefined value. It is the same as Value{}.
func Undefined() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value holding vs. The slice is not copied.
func Array(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindArray, arr: vs}
}

// Func returns an opaque function value. Functions are leaves: they are
// never converted and are dropped from JSON output.
func Func(name string) Value { return Value{kind: KindFunc, s: name} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is undefined.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string held by v and whether v is a string.
// Function values report false; use [Value.FuncName] for their name.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns the elements of an array value. The returned slice
// aliases the array, so element writes are visible through v.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the object held by v and whether v is an object.
// The object is shared, not copied.
func (v Value) AsObject() (*Object, bool) { return v.obj, v.kind == KindObject }

// FuncName returns the name given to [Func].
func (v Value) FuncName() (string, bool) { return v.s, v.kind == KindFunc }

// String renders v as JSON. Undefined and functions render as "undefined"
// and "function name()" so they stay visible in test failures.
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindFunc:
		return "function " + v.s + "()"
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}

// Equal reports whether v and w are structurally equal. Object keys are
// compared in order and object classes must match. NaN equals NaN.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindNumber:
		return v.n == w.n || (math.IsNaN(v.n) && math.IsNaN(w.n))
	case KindString, KindFunc:
		return v.s == w.s
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(w.obj)
	}
	return false
}
