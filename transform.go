package objcase

import (
	"github.com/Gobd/objcase/transform"
)

// SnakeObjectToCamel returns a copy of v with every object key converted by
// [transform.SnakeToCamel], through nested objects and arrays. v is not
// modified.
func SnakeObjectToCamel(v Value) Value {
	return MapKeys(v, transform.SnakeToCamel)
}

// CamelObjectToSnake returns a copy of v with every object key converted by
// [transform.CamelToSnake], through nested objects and arrays. v is not
// modified.
func CamelObjectToSnake(v Value) Value {
	return MapKeys(v, transform.CamelToSnake)
}

// MapKeys returns a copy of v with f applied once to every object key.
//
// Objects of any class become new plain objects; arrays become new arrays
// with each element mapped; everything else is returned as is. When two
// keys map to the same name the later value wins and keeps the position
// of the first.
func MapKeys(v Value, f func(string) string) Value {
	if isObjectLike(v) {
		n := NewObject()
		for _, key := range v.obj.keys {
			n.Set(f(key), MapKeys(v.obj.vals[key], f))
		}
		return n.Value()
	} else if v.kind == KindArray {
		arr := make([]Value, len(v.arr))
		for i, elem := range v.arr {
			arr[i] = MapKeys(elem, f)
		}
		return Array(arr...)
	}
	return v
}
