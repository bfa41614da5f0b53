package objcase

// RemoveUndefined deletes, in place, every key of o whose value is
// undefined, descending into nested objects and arrays. It returns o.
//
// Arrays are walked so objects inside them get pruned, but undefined array
// elements are kept: array length and indices never change. Null values
// are kept.
//
// RemoveUndefined mutates the graph it is given; callers must not run it
// concurrently on a shared graph.
func RemoveUndefined(o *Object) *Object {
	if o == nil {
		return nil
	}
	for _, key := range o.Keys() {
		v := o.vals[key]
		switch v.kind {
		case KindObject, KindArray:
			pruneValue(v)
		case KindUndefined:
			o.Delete(key)
		}
	}
	return o
}

func pruneValue(v Value) {
	switch v.kind {
	case KindObject:
		RemoveUndefined(v.obj)
	case KindArray:
		for _, elem := range v.arr {
			if elem.kind == KindObject || elem.kind == KindArray {
				pruneValue(elem)
			}
		}
	}
}
