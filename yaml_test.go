package objcase_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Gobd/objcase"
)

const yamlDoc = `
service_name: orders
retry_count: 3
ratio: 0.5
enabled: true
owner: ~
base: &base
  time_out: 10
override: *base
hosts:
  - host_name: a
  - host_name: b
`

func TestParseYAML(t *testing.T) {
	v, err := objcase.ParseYAML([]byte(yamlDoc))
	require.NoError(t, err)

	o, ok := v.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"service_name", "retry_count", "ratio", "enabled", "owner", "base", "override", "hosts"}, o.Keys())
	assert.Equal(t,
		`{"service_name":"orders","retry_count":3,"ratio":0.5,"enabled":true,"owner":null,"base":{"time_out":10},"override":{"time_out":10},"hosts":[{"host_name":"a"},{"host_name":"b"}]}`,
		v.String())

	camel := objcase.SnakeObjectToCamel(v)
	assert.Equal(t,
		`{"serviceName":"orders","retryCount":3,"ratio":0.5,"enabled":true,"owner":null,"base":{"timeOut":10},"override":{"timeOut":10},"hosts":[{"hostName":"a"},{"hostName":"b"}]}`,
		camel.String())
}

func TestParseYAMLEmpty(t *testing.T) {
	v, err := objcase.ParseYAML(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := objcase.ParseYAML([]byte("? [a, b]\n: c\n"))
	assert.Error(t, err)

	_, err = objcase.ParseYAML([]byte("a: [1, 2"))
	assert.Error(t, err)
}

func TestMarshalYAML(t *testing.T) {
	o := objcase.NewObject().
		Set("zeta", objcase.Number(1)).
		Set("alpha", objcase.String("true")).
		Set("skip", objcase.Undefined()).
		Set("fn", objcase.Func("f")).
		Set("ratio", objcase.Number(2.5)).
		Set("inf", objcase.Number(math.Inf(-1))).
		Set("list", objcase.Array(objcase.Bool(true), objcase.Undefined(), objcase.Null()))

	b, err := yaml.Marshal(o.Value())
	require.NoError(t, err)
	out := string(b)

	assert.NotContains(t, out, "skip")
	assert.NotContains(t, out, "fn")
	assert.Less(t, strings.Index(out, "zeta"), strings.Index(out, "alpha"))

	back, err := objcase.ParseYAML(b)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"true","ratio":2.5,"inf":null,"list":[true,null,null]}`, back.String())

	inf, _ := back.AsObject()
	got, _ := inf.Get("inf")
	n, ok := got.AsNumber()
	require.True(t, ok)
	assert.True(t, math.IsInf(n, -1))
}

func TestParseYAMLMergeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "alias",
			in:   "base: &b\n  time_out: 10\nsvc:\n  <<: *b\n  name_x: a\n",
			want: `{"base":{"time_out":10},"svc":{"time_out":10,"name_x":"a"}}`,
		},
		{
			name: "explicit key wins before merge",
			in:   "base: &b\n  time_out: 10\n  retries: 2\nsvc:\n  time_out: 5\n  <<: *b\n",
			want: `{"base":{"time_out":10,"retries":2},"svc":{"time_out":5,"retries":2}}`,
		},
		{
			name: "explicit key wins after merge",
			in:   "base: &b\n  time_out: 10\nsvc:\n  <<: *b\n  time_out: 5\n",
			want: `{"base":{"time_out":10},"svc":{"time_out":5}}`,
		},
		{
			name: "sequence earlier wins",
			in:   "a: &a\n  x: 1\nb: &b\n  x: 2\n  y: 3\nc:\n  <<: [*a, *b]\n",
			want: `{"a":{"x":1},"b":{"x":2,"y":3},"c":{"x":1,"y":3}}`,
		},
		{
			name: "inline mapping",
			in:   "c:\n  <<: {x: 1}\n  y: 2\n",
			want: `{"c":{"x":1,"y":2}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := objcase.ParseYAML([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}

	_, err := objcase.ParseYAML([]byte("c:\n  <<: 1\n"))
	assert.Error(t, err)
}
