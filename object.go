package objcase

import "slices"

// Object is an ordered string-keyed mapping.
//
// Every object has a class. The empty class is the plain object literal;
// any other class marks an instance of something else (a date, a map, a Go
// struct) which still exposes its keys but is not a plain object.
type Object struct {
	class string
	keys  []string
	vals  map[string]Value
}

// NewObject returns an empty plain object.
func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

// NewInstance returns an empty object of the given class. An empty class
// is the same as [NewObject].
func NewInstance(class string) *Object {
	return &Object{class: class, vals: map[string]Value{}}
}

// Class returns the class name, "" for plain objects.
func (o *Object) Class() string { return o.class }

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// Get returns the value stored at key. A missing key yields undefined and
// false; a key explicitly set to undefined yields undefined and true.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is an own key of o.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Set stores v at key and returns o. Replacing an existing key keeps its
// position.
func (o *Object) Set(key string, v Value) *Object {
	if o.vals == nil {
		o.vals = map[string]Value{}
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

// Delete removes key. Deleting a missing key is a no-op.
func (o *Object) Delete(key string) {
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}

// Value wraps o in a [Value]. A nil object becomes null.
func (o *Object) Value() Value {
	if o == nil {
		return Null()
	}
	return Value{kind: KindObject, obj: o}
}

// Equal reports whether o and p hold the same class and keys, in the same
// order, with structurally equal values.
func (o *Object) Equal(p *Object) bool {
	if o == nil || p == nil {
		return o == p
	}
	if o.class != p.class || !slices.Equal(o.keys, p.keys) {
		return false
	}
	for _, k := range o.keys {
		if !o.vals[k].Equal(p.vals[k]) {
			return false
		}
	}
	return true
}

func (o *Object) String() string { return o.Value().String() }
