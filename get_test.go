package valext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOwnedDeserialization(t *testing.T) {
	type endpoint struct {
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Retries int    `json:"retries"`
	}

	root := mustParse(t, `{
		"service": {
			"endpoint": {"host": "localhost", "port": 8080, "retries": 3}
		},
		"names": ["a", "b"]
	}`)

	got, err := Get[endpoint](root, "/service/endpoint")
	require.NoError(t, err)
	want := endpoint{Host: "localhost", Port: 8080, Retries: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded struct mismatch (-want +got):\n%s", diff)
	}

	names, err := Get[[]string](root, "names")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	port, err := Get[int](root, "/service/endpoint/port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestGetShapeMismatchIsSerializationError(t *testing.T) {
	root := mustParse(t, `{"value":"text"}`)

	_, err := Get[int](root, "value")
	require.ErrorIs(t, err, ErrSerialization)
}

func TestContains(t *testing.T) {
	root := mustParse(t, `{"a":{"b":null},"c":[1]}`)

	tests := []struct {
		path string
		want bool
	}{
		{path: "a", want: true},
		{path: "/a/b", want: true}, // null-valued keys are present
		{path: "/a/missing", want: false},
		{path: "/c/0", want: true},
		{path: "/c/1", want: false},
		{path: "missing", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(root, tt.path))
		})
	}
}

func TestGetObject(t *testing.T) {
	root := mustParse(t, `{"settings":{"mode":"fast"},"count":1}`)

	obj, err := GetObject(root, "settings")
	require.NoError(t, err)
	assert.Equal(t, []string{"mode"}, obj.Keys())

	// The object is not a copy; writes are visible in the tree.
	obj.Set("extra", true)
	got, err := GetBool(root, "/settings/extra")
	require.NoError(t, err)
	assert.True(t, got)

	_, err = GetObject(root, "count")
	require.ErrorIs(t, err, ErrTypeMismatch)
}
