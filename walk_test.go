package valext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkBreadthFirstOrder(t *testing.T) {
	root := mustParse(t, `{"a":{"b":1},"c":2}`)

	var visited []string
	completed := Walk(root, func(_ *Object, key string) bool {
		visited = append(visited, key)
		return true
	})

	require.True(t, completed)
	// Root-level keys come before nested ones: c before b.
	assert.Equal(t, []string{"a", "c", "b"}, visited)
}

func TestWalkLevelOrderAcrossContainers(t *testing.T) {
	root := mustParse(t, `{
		"one": {"x": 1, "deep": {"y": 2}},
		"two": {"z": 3}
	}`)

	var visited []string
	Walk(root, func(_ *Object, key string) bool {
		visited = append(visited, key)
		return true
	})

	assert.Equal(t, []string{"one", "two", "x", "deep", "z", "y"}, visited)
}

func TestWalkDescendsThroughArrays(t *testing.T) {
	root := mustParse(t, `{"list":[{"inner":1},[{"deeper":2}],3]}`)

	var visited []string
	Walk(root, func(_ *Object, key string) bool {
		visited = append(visited, key)
		return true
	})

	// Array elements generate no callbacks, but objects nested inside
	// arrays are still visited.
	assert.Equal(t, []string{"list", "inner", "deeper"}, visited)
}

func TestWalkEarlyStop(t *testing.T) {
	root := mustParse(t, `{
		"tokens": 3,
		"schema": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"all_models": {
					"type": "array",
					"items": {
						"type": "object",
						"additionalProperties": false,
						"required": ["maker", "model_name"]
					}
				}
			}
		}
	}`)

	// Remove "additionalProperties" next to the first object-typed
	// "type" marker, then stop.
	completed := Walk(root, func(parent *Object, key string) bool {
		if key != "type" {
			return true
		}
		if v, _ := parent.Get(key); v == "object" {
			parent.Delete("additionalProperties")
			return false
		}
		return true
	})
	assert.False(t, completed)

	// Only the first marker was removed because the walk stopped early.
	var remaining int
	completed = Walk(root, func(_ *Object, key string) bool {
		if key == "additionalProperties" {
			remaining++
		}
		return true
	})
	assert.True(t, completed)
	assert.Equal(t, 1, remaining)
}

func TestWalkStopOnFirstCallback(t *testing.T) {
	root := mustParse(t, `{"a":1,"b":2}`)

	calls := 0
	completed := Walk(root, func(_ *Object, _ string) bool {
		calls++
		return false
	})

	assert.False(t, completed)
	assert.Equal(t, 1, calls)
}

func TestWalkVisitsEachPropertyOnce(t *testing.T) {
	root := mustParse(t, `{"a":{"x":1},"b":[{"y":2}],"c":3}`)

	seen := map[string]int{}
	completed := Walk(root, func(_ *Object, key string) bool {
		seen[key]++
		return true
	})

	require.True(t, completed)
	for key, count := range seen {
		assert.Equalf(t, 1, count, "key %q visited %d times", key, count)
	}
	assert.Len(t, seen, 5)
}

func TestWalkNonContainerRoot(t *testing.T) {
	calls := 0
	completed := Walk("scalar", func(_ *Object, _ string) bool {
		calls++
		return true
	})

	assert.True(t, completed)
	assert.Zero(t, calls)
}
