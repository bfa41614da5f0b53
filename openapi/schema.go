package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/objcase/transform"
)

// SnakeSchemaToCamel returns a copy of ref with property names converted by
// [transform.SnakeToCamel].
func SnakeSchemaToCamel(ref *openapi3.SchemaRef) *openapi3.SchemaRef {
	return MapSchemaKeys(ref, transform.SnakeToCamel)
}

// CamelSchemaToSnake returns a copy of ref with property names converted by
// [transform.CamelToSnake].
func CamelSchemaToSnake(ref *openapi3.SchemaRef) *openapi3.SchemaRef {
	return MapSchemaKeys(ref, transform.CamelToSnake)
}

// MapSchemaKeys returns a copy of ref with f applied to every property
// name, every required entry and the discriminator property name, through
// properties, items, allOf, anyOf, oneOf, not and additionalProperties.
// References ($ref) are returned as is, and ref itself is not modified.
func MapSchemaKeys(ref *openapi3.SchemaRef, f func(string) string) *openapi3.SchemaRef {
	if ref == nil || ref.Ref != "" || ref.Value == nil {
		return ref
	}
	s := *ref.Value

	if ref.Value.Properties != nil {
		s.Properties = make(openapi3.Schemas, len(ref.Value.Properties))
		for name, prop := range ref.Value.Properties {
			s.Properties[f(name)] = MapSchemaKeys(prop, f)
		}
	}
	if ref.Value.Required != nil {
		s.Required = make([]string, len(ref.Value.Required))
		for i, name := range ref.Value.Required {
			s.Required[i] = f(name)
		}
	}
	if d := ref.Value.Discriminator; d != nil {
		cp := *d
		cp.PropertyName = f(d.PropertyName)
		s.Discriminator = &cp
	}
	s.Items = MapSchemaKeys(ref.Value.Items, f)
	s.Not = MapSchemaKeys(ref.Value.Not, f)
	s.AllOf = mapSchemaRefs(ref.Value.AllOf, f)
	s.AnyOf = mapSchemaRefs(ref.Value.AnyOf, f)
	s.OneOf = mapSchemaRefs(ref.Value.OneOf, f)
	s.AdditionalProperties.Schema = MapSchemaKeys(ref.Value.AdditionalProperties.Schema, f)

	return &openapi3.SchemaRef{Value: &s}
}

func mapSchemaRefs(refs openapi3.SchemaRefs, f func(string) string) openapi3.SchemaRefs {
	if refs == nil {
		return nil
	}
	out := make(openapi3.SchemaRefs, len(refs))
	for i, r := range refs {
		out[i] = MapSchemaKeys(r, f)
	}
	return out
}

// MapComponentKeys converts the property names of every component schema
// of doc in place. Component names are left alone so references stay valid.
func MapComponentKeys(doc *openapi3.T, f func(string) string) {
	if doc.Components == nil {
		return
	}
	for name, ref := range doc.Components.Schemas {
		doc.Components.Schemas[name] = MapSchemaKeys(ref, f)
	}
}
