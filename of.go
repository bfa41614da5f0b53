package objcase

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Of converts native Go data into a Value tree.
//
// nil and nil pointers become null, numbers become numbers, slices and
// arrays become arrays, string-keyed maps become plain objects with sorted
// keys, and funcs become function values. Structs become instances of a
// class named after their type, keyed by the json tag of each exported
// field; fields tagged json:"-" are skipped and unnamed struct types become
// plain objects. Value and *Object pass through unchanged.
func Of(a any) (Value, error) {
	switch t := a.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Object:
		return t.Value(), nil
	}
	return of(reflect.ValueOf(a))
}

func of(rv reflect.Value) (Value, error) { //nolint:revive // reflection walker is inherently complex
	if !rv.IsValid() {
		return Null(), nil
	}
	if rv.CanInterface() {
		switch t := rv.Interface().(type) {
		case Value:
			return t, nil
		case *Object:
			return t.Value(), nil
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return of(rv.Elem())
	case reflect.Func:
		if rv.IsNil() {
			return Null(), nil
		}
		return Func(rv.Type().String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		return ofSlice(rv)
	case reflect.Array:
		return ofSlice(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		return ofMap(rv)
	case reflect.Struct:
		return ofStruct(rv)
	}
	return Value{}, fmt.Errorf("unsupported type %s", rv.Type())
}

func ofSlice(rv reflect.Value) (Value, error) {
	arr := make([]Value, rv.Len())
	for i := range rv.Len() {
		v, err := of(rv.Index(i))
		if err != nil {
			return Value{}, fmt.Errorf("%d: %w", i, err)
		}
		arr[i] = v
	}
	return Array(arr...), nil
}

func ofMap(rv reflect.Value) (Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return Value{}, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	o := NewObject()
	for _, k := range keys {
		v, err := of(rv.MapIndex(k))
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", k.String(), err)
		}
		o.Set(k.String(), v)
	}
	return o.Value(), nil
}

func ofStruct(rv reflect.Value) (Value, error) {
	o := NewInstance(rv.Type().Name())
	if err := collectFields(rv, o); err != nil {
		return Value{}, err
	}
	return o.Value(), nil
}

// collectFields adds the exported fields of rv to o, flattening embedded
// structs into the parent.
func collectFields(rv reflect.Value, o *Object) error {
	t := rv.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous && strings.Split(sf.Tag.Get("json"), ",")[0] == "" {
			fv := rv.Field(i)
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if err := collectFields(fv, o); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		key, skip := fieldKey(sf)
		if skip {
			continue
		}
		v, err := of(rv.Field(i))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		o.Set(key, v)
	}
	return nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) (string, bool) {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag == "-" {
		return "", true
	}
	if tag != "" {
		return tag, false
	}
	return sf.Name, false
}
