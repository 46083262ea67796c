package valext

import (
	"encoding/json"
	"strconv"
)

// A value tree node is an `any` holding exactly one of:
//
//	nil          null
//	bool         boolean
//	json.Number  number (all numbers are normalized to Number so that
//	             integer extraction stays lossless)
//	string       string
//	[]any        array
//	*Object      object, insertion order preserved
//
// The tree is owned by the caller for the duration of every operation;
// the package never retains a reference beyond a single call.

// isContainer reports whether a node can hold children.
func isContainer(node any) bool {
	switch node.(type) {
	case *Object, []any:
		return true
	}
	return false
}

// AsObject returns the node as an object, reporting whether it is one.
func AsObject(node any) (*Object, bool) {
	o, ok := node.(*Object)
	return o, ok
}

// AsArray returns the node as an array, reporting whether it is one.
func AsArray(node any) ([]any, bool) {
	a, ok := node.([]any)
	return a, ok
}

// normalizeScalar converts native Go scalars into tree form. The
// second result reports whether the value was handled; callers fall
// back to the serialization collaborator for anything else.
func normalizeScalar(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case bool:
		return v, true
	case string:
		return v, true
	case json.Number:
		return v, true
	case int:
		return json.Number(strconv.FormatInt(int64(v), 10)), true
	case int8:
		return json.Number(strconv.FormatInt(int64(v), 10)), true
	case int16:
		return json.Number(strconv.FormatInt(int64(v), 10)), true
	case int32:
		return json.Number(strconv.FormatInt(int64(v), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(v, 10)), true
	case uint:
		return json.Number(strconv.FormatUint(uint64(v), 10)), true
	case uint8:
		return json.Number(strconv.FormatUint(uint64(v), 10)), true
	case uint16:
		return json.Number(strconv.FormatUint(uint64(v), 10)), true
	case uint32:
		return json.Number(strconv.FormatUint(uint64(v), 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(v, 10)), true
	case float32:
		return json.Number(strconv.FormatFloat(float64(v), 'g', -1, 32)), true
	case float64:
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), true
	}
	return nil, false
}

// cloneValue returns a deep copy of a tree node. Scalars are immutable
// and returned as-is.
func cloneValue(node any) any {
	switch v := node.(type) {
	case *Object:
		clone := NewObject()
		v.Range(func(key string, value any) bool {
			clone.Set(key, cloneValue(value))
			return true
		})
		return clone
	case []any:
		clone := make([]any, len(v))
		for i, elem := range v {
			clone[i] = cloneValue(elem)
		}
		return clone
	default:
		return v
	}
}
