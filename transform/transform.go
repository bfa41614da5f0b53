package transform

import (
	"strings"
)

// SnakeToCamel replaces every '-' or '_' that is immediately followed by an
// ASCII letter with that letter in upper case.
//
// Matches are found left to right and never overlap, so only one separator
// is consumed per letter: "foo--bar" becomes "foo-Bar".
func SnakeToCamel(s string) string {
	if strings.IndexAny(s, "-_") < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '-' || c == '_') && i+1 < len(s) && isASCIILetter(s[i+1]) {
			b.WriteByte(toUpper(s[i+1]))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// CamelToSnake replaces every ASCII upper case letter with '_' followed by
// the letter in lower case. A leading capital yields a leading underscore:
// "Foo" becomes "_foo".
func CamelToSnake(s string) string {
	upper := 0
	for i := 0; i < len(s); i++ {
		if isASCIIUpper(s[i]) {
			upper++
		}
	}
	if upper == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + upper)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIIUpper(c) {
			b.WriteByte('_')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Chain returns a function applying fns in order.
func Chain(fns ...func(string) string) func(string) string {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}

func isASCIIUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isASCIILetter(c byte) bool {
	return isASCIIUpper(c) || ('a' <= c && c <= 'z')
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
