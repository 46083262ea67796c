package valext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeLeavesNullBehind(t *testing.T) {
	root := mustParse(t, `{"age":30,"name":"joe"}`)

	age, err := Take[int](root, "age")
	require.NoError(t, err)
	assert.Equal(t, 30, age)

	// The key survives, now holding null: still contained, found by
	// Get, absent for the *Opt accessors.
	assert.True(t, Contains(root, "age"))
	got, err := Get[*int](root, "age")
	require.NoError(t, err)
	assert.Nil(t, got)
	_, ok, err := GetInt64Opt(root, "age")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, `{"age":null,"name":"joe"}`, marshalString(t, root))
}

func TestTakePointerPath(t *testing.T) {
	root := mustParse(t, `{"settings":{"retries":3,"mode":"fast"}}`)

	retries, err := Take[int64](root, "/settings/retries")
	require.NoError(t, err)
	assert.Equal(t, int64(3), retries)
	assert.Equal(t, `{"settings":{"retries":null,"mode":"fast"}}`, marshalString(t, root))

	_, err = Take[int64](root, "/settings/missing")
	require.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestTakeArrayElement(t *testing.T) {
	root := mustParse(t, `{"items":["a","b"]}`)

	first, err := Take[string](root, "/items/0")
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	// Positions are preserved; only the element is swapped for null.
	assert.Equal(t, `{"items":[null,"b"]}`, marshalString(t, root))
}

func TestTakeNullValuedKey(t *testing.T) {
	root := mustParse(t, `{"nothing":null}`)

	// A null-valued key is found, its prior value being null.
	got, err := Take[*string](root, "nothing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRemoveObjectKey(t *testing.T) {
	root := mustParse(t, `{"a":1,"b":2,"c":3}`)

	b, err := Remove[int](root, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, b)

	assert.False(t, Contains(root, "b"))
	assert.Equal(t, `{"a":1,"c":3}`, marshalString(t, root))

	_, err = Remove[int](root, "b")
	require.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestRemoveNestedKey(t *testing.T) {
	root := mustParse(t, `{"settings":{"retries":3,"mode":"fast"}}`)

	mode, err := Remove[string](root, "/settings/mode")
	require.NoError(t, err)
	assert.Equal(t, "fast", mode)
	assert.Equal(t, `{"settings":{"retries":3}}`, marshalString(t, root))
}

func TestRemoveArrayElementShiftsRest(t *testing.T) {
	root := mustParse(t, `{"items":["a","b","c"]}`)

	b, err := Remove[string](root, "/items/1")
	require.NoError(t, err)
	assert.Equal(t, "b", b)

	assert.Equal(t, `{"items":["a","c"]}`, marshalString(t, root))
	assert.False(t, Contains(root, "/items/2"))

	_, err = Remove[string](root, "/items/9")
	require.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestRemoveNeverAutocreates(t *testing.T) {
	root := mustParse(t, `{}`)

	_, err := Remove[int](root, "/a/b/c")
	require.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Equal(t, `{}`, marshalString(t, root))
}
