package valext

// Operation names carried in error context.
const (
	opGet     = "get"
	opInsert  = "insert"
	opTake    = "take"
	opRemove  = "remove"
	opMerge   = "merge"
	opParse   = "parse"
	opMarshal = "marshal"
	opPretty  = "pretty"
)

// Get retrieves the value at path, fully deserialized into T through
// the serialization collaborator. A key holding null is found and
// decodes as null into T; only a missing key or segment reports
// ErrPropertyNotFound.
func Get[T any](root any, path string) (T, error) {
	var out T
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return out, err
	}
	if err := decodeInto(opGet, path, node, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Contains reports whether path resolves to a node in the tree.
func Contains(root any, path string) bool {
	_, err := resolveForRead(opGet, root, path)
	return err == nil
}

// GetObject retrieves the object node at path without copying.
func GetObject(root any, path string) (*Object, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return nil, err
	}
	obj, ok := AsObject(node)
	if !ok {
		return nil, newTypeMismatchError(opGet, path, typeObject)
	}
	return obj, nil
}

// GetString retrieves the string value at path.
func GetString(root any, path string) (string, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return "", err
	}
	return asString(opGet, path, node)
}

// GetFloat64 retrieves the numeric value at path as a float64.
func GetFloat64(root any, path string) (float64, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return 0, err
	}
	return asFloat64(opGet, path, node)
}

// GetInt64 retrieves the integral numeric value at path as an int64.
func GetInt64(root any, path string) (int64, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return 0, err
	}
	return asInt64(opGet, path, node)
}

// GetInt32 retrieves the integral numeric value at path as an int32.
func GetInt32(root any, path string) (int32, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return 0, err
	}
	return asInt32(opGet, path, node)
}

// GetUint32 retrieves the non-negative integral numeric value at path
// as a uint32.
func GetUint32(root any, path string) (uint32, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return 0, err
	}
	return asUint32(opGet, path, node)
}

// GetBool retrieves the boolean value at path.
func GetBool(root any, path string) (bool, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return false, err
	}
	return asBool(opGet, path, node)
}

// GetArray retrieves the array node at path, returning its backing
// slice without copying.
func GetArray(root any, path string) ([]any, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return nil, err
	}
	return asArray(opGet, path, node)
}

// GetStringSlice retrieves the array at path as []string. Every
// element must be a string.
func GetStringSlice(root any, path string) ([]string, error) {
	node, err := resolveForRead(opGet, root, path)
	if err != nil {
		return nil, err
	}
	return asStringSlice(opGet, path, node)
}
