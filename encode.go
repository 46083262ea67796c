package valext

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// jsonAPI is the serialization collaborator used for arbitrary-type
// encode/decode and for rendering trees back to text.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal renders a value tree as compact JSON. Object properties are
// written in insertion order.
func Marshal(root any) ([]byte, error) {
	data, err := jsonAPI.Marshal(root)
	if err != nil {
		return nil, newSerializationError(opMarshal, "", err)
	}
	return data, nil
}

// MarshalString renders a value tree as a compact JSON string.
func MarshalString(root any) (string, error) {
	data, err := Marshal(root)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Pretty renders a value tree as indented, human-readable JSON. The
// tree is marshaled compact first and re-indented, so ordered objects
// format the same way as every other node.
func Pretty(root any) (string, error) {
	data, err := jsonAPI.Marshal(root)
	if err != nil {
		return "", newSerializationError(opPretty, "", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", newSerializationError(opPretty, "", err)
	}
	return buf.String(), nil
}

// MarshalJSON implements json.Marshaler, writing properties in
// insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var rangeErr error
	o.Range(func(key string, value any) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		keyData, err := jsonAPI.Marshal(key)
		if err != nil {
			rangeErr = err
			return false
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		valueData, err := jsonAPI.Marshal(value)
		if err != nil {
			rangeErr = err
			return false
		}
		buf.Write(valueData)
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeInto deserializes a tree node into out through the
// serialization collaborator.
func decodeInto(op, path string, node any, out any) error {
	data, err := jsonAPI.Marshal(node)
	if err != nil {
		return newSerializationError(op, path, err)
	}
	if err := jsonAPI.Unmarshal(data, out); err != nil {
		return newSerializationError(op, path, err)
	}
	return nil
}

// toValue converts an arbitrary Go value into tree form. Scalars
// convert directly; existing tree containers pass through (arrays
// after normalizing their elements); everything else round-trips
// through the serialization collaborator.
func toValue(op, path string, value any) (any, error) {
	if node, ok := normalizeScalar(value); ok {
		return node, nil
	}
	switch v := value.(type) {
	case *Object:
		return v, nil
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			node, err := toValue(op, path, elem)
			if err != nil {
				return nil, err
			}
			out[i] = node
		}
		return out, nil
	}
	data, err := jsonAPI.Marshal(value)
	if err != nil {
		return nil, newSerializationError(op, path, err)
	}
	node, err := Parse(data)
	if err != nil {
		return nil, newSerializationError(op, path, err)
	}
	return node, nil
}
