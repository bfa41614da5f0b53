package objcase

// IsServerSide reports that no browser global window is present. A Go
// process never runs inside a user agent, so this is always true.
const IsServerSide = true

// IsEmptyObject reports whether v is a plain object with no keys.
// Instances of other classes, arrays and non-object values are never empty
// objects, even when they have no keys.
func IsEmptyObject(v Value) bool {
	return isPlainObject(v) && v.obj.Len() == 0
}

// isPlainObject is the strict check: an object literal, nothing else.
func isPlainObject(v Value) bool {
	return v.kind == KindObject && v.obj != nil && v.obj.class == ""
}

// isObjectLike is the loose check used by key conversion: any object
// whatever its class, but not arrays, functions or primitives.
func isObjectLike(v Value) bool {
	return v.kind == KindObject && v.obj != nil
}
