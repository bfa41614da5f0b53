package openapi

import (
	"math"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/Gobd/objcase"
)

// SchemaOf infers a schema from an example value tree. Objects list their
// members as properties, arrays take their item schema from the first
// element, and null yields a nullable schema with no type. Undefined and
// function members are skipped, as they would be when encoded as JSON.
func SchemaOf(v objcase.Value) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", schemaOf(v))
}

func schemaOf(v objcase.Value) *openapi3.Schema {
	switch v.Kind() {
	case objcase.KindBool:
		return openapi3.NewBoolSchema()
	case objcase.KindNumber:
		n, _ := v.AsNumber()
		// Beyond 2^53 a float64 no longer tells integers apart.
		if n == math.Trunc(n) && math.Abs(n) <= 1<<53 {
			return openapi3.NewIntegerSchema()
		}
		return openapi3.NewFloat64Schema()
	case objcase.KindString:
		return openapi3.NewStringSchema()
	case objcase.KindArray:
		s := openapi3.NewArraySchema()
		arr, _ := v.AsArray()
		if len(arr) > 0 {
			s.Items = SchemaOf(arr[0])
		} else {
			s.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
		}
		return s
	case objcase.KindObject:
		s := openapi3.NewObjectSchema()
		o, _ := v.AsObject()
		for _, key := range o.Keys() {
			elem, _ := o.Get(key)
			if elem.Kind() == objcase.KindUndefined || elem.Kind() == objcase.KindFunc {
				continue
			}
			s.Properties[key] = SchemaOf(elem)
		}
		return s
	}
	return openapi3.NewSchema().WithNullable()
}

// NewSchemaRefForValue generates a schema for value. [objcase.Value] and
// [*objcase.Object] examples are inferred with [SchemaOf]; any other Go
// value is described from its type by openapi3gen.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	switch t := value.(type) {
	case objcase.Value:
		return SchemaOf(t), nil
	case *objcase.Object:
		return SchemaOf(t.Value()), nil
	}
	return openapi3gen.NewSchemaRefForValue(value, nil)
}
