package valext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parse decodes JSON text into a value tree: objects become *Object
// with insertion order preserved, arrays []any, numbers json.Number,
// and the remaining scalars their native Go forms.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeNext(dec)
	if err != nil {
		return nil, newSerializationError(opParse, "", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, newSerializationError(opParse, "", errors.New("trailing data after top-level value"))
	}
	return node, nil
}

// ParseString decodes a JSON string into a value tree.
func ParseString(data string) (any, error) {
	return Parse([]byte(data))
}

// ParseObject decodes JSON text that must hold an object at the top
// level.
func ParseObject(data []byte) (*Object, error) {
	node, err := Parse(data)
	if err != nil {
		return nil, err
	}
	obj, ok := AsObject(node)
	if !ok {
		return nil, newRootTypeError(opParse, typeObject)
	}
	return obj, nil
}

// UnmarshalJSON implements json.Unmarshaler, replacing the object's
// contents with the decoded properties in document order.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("valext: cannot unmarshal non-object into Object")
	}
	decoded, err := decodeObjectBody(dec)
	if err != nil {
		return err
	}
	*o = *decoded
	return nil
}

// decodeNext decodes a single value starting at the decoder's next
// token.
func decodeNext(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (any, error) {
	if d, ok := tok.(json.Delim); ok {
		switch d {
		case '{':
			return decodeObjectBody(dec)
		case '[':
			return decodeArrayBody(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", d.String())
		}
	}
	// string, bool, json.Number or nil
	return tok, nil
}

func decodeObjectBody(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}
		value, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
}

func decodeArrayBody(dec *json.Decoder) ([]any, error) {
	arr := make([]any, 0)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		value, err := decodeToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
}
