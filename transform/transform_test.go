package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gobd/objcase/transform"
)

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "underscore", in: "foo_bar", want: "fooBar"},
		{name: "hyphen", in: "foo-bar", want: "fooBar"},
		{name: "mixed separators", in: "foo-bar_baz", want: "fooBarBaz"},
		{name: "no separator", in: "foo", want: "foo"},
		{name: "empty", in: "", want: ""},
		{name: "upper letter after separator", in: "foo_Bar", want: "fooBar"},
		{name: "leading separator", in: "_foo", want: "Foo"},
		{name: "trailing separator", in: "foo_", want: "foo_"},
		{name: "digit after separator", in: "foo_1", want: "foo_1"},
		{name: "single letter words", in: "a_b_c", want: "aBC"},
		// Only one separator is consumed per letter.
		{name: "double hyphen", in: "foo--bar", want: "foo-Bar"},
		{name: "double underscore", in: "foo__bar", want: "foo_Bar"},
		{name: "mixed double separator", in: "foo_-bar", want: "foo_Bar"},
		{name: "non ascii letter", in: "foo_ébar", want: "foo_ébar"},
		{name: "already camel", in: "fooBar", want: "fooBar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.SnakeToCamel(tt.in))
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "fooBar", want: "foo_bar"},
		{name: "leading capital", in: "Foo", want: "_foo"},
		{name: "no capitals", in: "foo", want: "foo"},
		{name: "empty", in: "", want: ""},
		{name: "acronym", in: "HTTPServer", want: "_h_t_t_p_server"},
		{name: "digits", in: "item2Id", want: "item2_id"},
		{name: "already snake", in: "foo_bar", want: "foo_bar"},
		{name: "non ascii upper untouched", in: "fooÉbar", want: "fooÉbar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.CamelToSnake(tt.in))
		})
	}
}

func TestNotInverse(t *testing.T) {
	for _, in := range []string{"foo-bar", "Foo_bar", "foo--bar"} {
		assert.NotEqual(t, in, transform.CamelToSnake(transform.SnakeToCamel(in)), in)
	}
	assert.Equal(t, "foo_bar", transform.CamelToSnake(transform.SnakeToCamel("foo_bar")))
}

func TestChain(t *testing.T) {
	f := transform.Chain(transform.CamelToSnake, strings.ToUpper)
	assert.Equal(t, "FOO_BAR", f("fooBar"))
	assert.Equal(t, "fooBar", transform.Chain()("fooBar"))
}
