// Package openapi applies objcase key casing to OpenAPI 3 schemas and
// builds schemas from [objcase.Value] examples.
//
// A service whose Go types are tagged in snake_case can publish camelCase
// documentation (or the other way round) without retagging:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  Order{},
//	    Response: Order{},
//	    KeyCase:  transform.SnakeToCamel,
//	})
package openapi
