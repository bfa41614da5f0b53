package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/objcase"
)

// Response describes an HTTP response with a description and example
// bodies for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for [Get], [Post], [Put],
// [Patch] and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     any                 // request body example or Go value
	Response    any                 // single 200 response body
	Responses   map[string]Response // full response map (overrides Response if both set)

	// KeyCase, when set, renames every property of the generated request
	// and response schemas.
	KeyCase func(string) string

	// Rules describe themselves on the request body schema.
	Rules []objcase.Rule
}

// NewRequest generates a request body schema from the given values. More
// than one value yields a oneOf schema.
func NewRequest(keyCase func(string) string, vs ...any) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	schema, err := bodySchema(keyCase, vs)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithJSONSchemaRef(schema),
	}, nil
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(keyCase func(string) string, vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		resp := openapi3.NewResponse().WithDescription(r.Desc)
		if len(r.Bodies) > 0 {
			schema, err := bodySchema(keyCase, r.Bodies)
			if err != nil {
				return nil, err
			}
			resp = resp.WithJSONSchemaRef(schema)
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

func bodySchema(keyCase func(string) string, vs []any) (*openapi3.SchemaRef, error) {
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for _, v := range vs {
		ref, err := NewSchemaRefForValue(v)
		if err != nil {
			return nil, err
		}
		if keyCase != nil {
			ref = MapSchemaKeys(ref, keyCase)
		}
		refs = append(refs, ref)
	}
	if len(refs) == 1 {
		return refs[0], nil
	}
	s := openapi3.NewSchema()
	s.OneOf = refs
	return openapi3.NewSchemaRef("", s), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the document at the given path and method.
func AddPath(doc *openapi3.T, path, method string, op *openapi3.Operation) {
	p := doc.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	doc.Paths.Set(path, p)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
		Responses:   openapi3.NewResponses(),
	}

	if ep.Request != nil {
		body, err := NewRequest(ep.KeyCase, ep.Request)
		if err != nil {
			return err
		}
		if err := describeRules(body, ep.Rules); err != nil {
			return err
		}
		op.RequestBody = body
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		r, err := NewResponse(ep.KeyCase, responses)
		if err != nil {
			return err
		}
		op.Responses = r
	}

	AddPath(doc, path, method, op)
	return nil
}

func describeRules(body *openapi3.RequestBodyRef, rules []objcase.Rule) error {
	if len(rules) == 0 {
		return nil
	}
	mt := body.Value.Content.Get("application/json")
	if mt == nil || mt.Schema == nil || mt.Schema.Value == nil {
		return errors.New("request body has no JSON schema")
	}
	for _, rule := range rules {
		if err := rule.Describe("body", mt.Schema.Value, mt.Schema); err != nil {
			return err
		}
	}
	return nil
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
