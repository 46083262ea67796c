package valext

import (
	"encoding/json"
	"math"
	"strconv"
)

// Requested type names, used in error context. This is the closed set
// of cheap, non-deserializing extraction targets.
const (
	typeString      = "string"
	typeFloat64     = "float64"
	typeInt64       = "int64"
	typeInt32       = "int32"
	typeUint32      = "uint32"
	typeBool        = "bool"
	typeArray       = "array"
	typeStringSlice = "[]string"
	typeObject      = "object"
)

// asString extracts a string node.
func asString(op, path string, node any) (string, error) {
	s, ok := node.(string)
	if !ok {
		return "", newTypeMismatchError(op, path, typeString)
	}
	return s, nil
}

// asNumber extracts a number node.
func asNumber(op, path, expected string, node any) (json.Number, error) {
	n, ok := node.(json.Number)
	if !ok {
		return "", newTypeMismatchError(op, path, expected)
	}
	return n, nil
}

// asFloat64 extracts any number as a float64. Very large integers
// narrow with possible precision loss; that is the accepted tradeoff
// for the float target.
func asFloat64(op, path string, node any) (float64, error) {
	n, err := asNumber(op, path, typeFloat64, node)
	if err != nil {
		return 0, err
	}
	f, err := n.Float64()
	if err != nil {
		return 0, newTypeMismatchError(op, path, typeFloat64)
	}
	return f, nil
}

// asInt64 extracts an integral number as an int64. Non-integral and
// out-of-range numbers are type mismatches, never truncated.
func asInt64(op, path string, node any) (int64, error) {
	n, err := asNumber(op, path, typeInt64, node)
	if err != nil {
		return 0, err
	}
	i, err := n.Int64()
	if err != nil {
		return 0, newTypeMismatchError(op, path, typeInt64)
	}
	return i, nil
}

// asInt32 extracts an integral number that fits in an int32.
func asInt32(op, path string, node any) (int32, error) {
	n, err := asNumber(op, path, typeInt32, node)
	if err != nil {
		return 0, err
	}
	i, err := n.Int64()
	if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, newTypeMismatchError(op, path, typeInt32)
	}
	return int32(i), nil
}

// asUint32 extracts a non-negative integral number that fits in a
// uint32.
func asUint32(op, path string, node any) (uint32, error) {
	n, err := asNumber(op, path, typeUint32, node)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(n.String(), 10, 32)
	if err != nil {
		return 0, newTypeMismatchError(op, path, typeUint32)
	}
	return uint32(u), nil
}

// asBool extracts a boolean node.
func asBool(op, path string, node any) (bool, error) {
	b, ok := node.(bool)
	if !ok {
		return false, newTypeMismatchError(op, path, typeBool)
	}
	return b, nil
}

// asArray extracts an array node, returning the backing slice without
// copying. Mutating the result mutates the tree.
func asArray(op, path string, node any) ([]any, error) {
	a, ok := node.([]any)
	if !ok {
		return nil, newTypeMismatchError(op, path, typeArray)
	}
	return a, nil
}

// asStringSlice extracts an array whose elements are all strings. The
// first non-string element fails the whole extraction.
func asStringSlice(op, path string, node any) ([]string, error) {
	arr, ok := node.([]any)
	if !ok {
		return nil, newTypeMismatchError(op, path, typeStringSlice)
	}
	out := make([]string, len(arr))
	for i, elem := range arr {
		s, ok := elem.(string)
		if !ok {
			return nil, newTypeMismatchError(op, path, typeStringSlice)
		}
		out[i] = s
	}
	return out, nil
}
