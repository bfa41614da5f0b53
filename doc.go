// Package objcase provides helpers for JSON-like value trees: emptiness
// checks, deep removal of undefined members, and snake_case ↔ camelCase
// key conversion through nested objects and arrays.
//
// Trees are built from [Value] and [Object], parsed with [Parse] or
// [ParseYAML], or converted from Go data with [Of]:
//
//	v, err := objcase.Parse([]byte(`{"user_id": 1, "tags": [{"tag_name": "a"}]}`))
//	camel := objcase.SnakeObjectToCamel(v) // {"userId":1,"tags":[{"tagName":"a"}]}
//
// Key conversion never modifies its input. [RemoveUndefined] is the one
// mutating helper: it prunes the object it is given in place.
//
// Sub-packages:
//   - transform – string-level key casing (SnakeToCamel, CamelToSnake)
//   - openapi – key casing for OpenAPI schemas and schema inference from values
package objcase
