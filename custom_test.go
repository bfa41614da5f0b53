package objcase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/objcase"
)

func TestCustomKeys(t *testing.T) {
	noDollar := objcase.CustomKeys(func(key string) error {
		if strings.HasPrefix(key, "$") {
			return errors.New("reserved key")
		}
		return nil
	}, "keys must not start with $")

	err := objcase.Validate(mustParse(t, `{"a":{"$ref":"x"},"$id":1}`), noDollar)
	assert.EqualError(t, err, "$id: reserved key; a.$ref: reserved key.")

	assert.NoError(t, objcase.Validate(mustParse(t, `{"a":[{"b":1}]}`), noDollar))

	ref := &openapi3.SchemaRef{Value: &openapi3.Schema{}}
	require.NoError(t, noDollar.Describe("body", ref.Value, ref))
	assert.Equal(t, "keys must not start with $", ref.Value.Description)
}
