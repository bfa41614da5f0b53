// Package transform provides the string-level key casing functions used by
// [objcase.SnakeObjectToCamel] and [objcase.CamelObjectToSnake]. They only
// consider ASCII separators and letters; other bytes are copied through.
package transform
