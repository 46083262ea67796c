package valext

import "errors"

// Present-or-absent accessors. Each returns (value, present, error):
// a missing path and a key holding null both report present=false with
// no error, collapsing the two absent cases the way optional
// extraction is meant to. A present non-null node of the wrong type is
// still a type mismatch. Note the asymmetry with Get and the strict
// accessors, which treat a null-valued key as found.

// optNode resolves path for optional extraction. ok=false with a nil
// error means absent.
func optNode(root any, path string) (node any, ok bool, err error) {
	node, err = resolveForRead(opGet, root, path)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if node == nil {
		return nil, false, nil
	}
	return node, true, nil
}

// GetStringOpt retrieves the string at path, reporting absence for a
// missing or null-valued key.
func GetStringOpt(root any, path string) (string, bool, error) {
	node, ok, err := optNode(root, path)
	if !ok || err != nil {
		return "", false, err
	}
	s, err := asString(opGet, path, node)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// GetFloat64Opt retrieves the number at path as a float64, reporting
// absence for a missing or null-valued key.
func GetFloat64Opt(root any, path string) (float64, bool, error) {
	node, ok, err := optNode(root, path)
	if !ok || err != nil {
		return 0, false, err
	}
	f, err := asFloat64(opGet, path, node)
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

// GetInt64Opt retrieves the integral number at path as an int64,
// reporting absence for a missing or null-valued key.
func GetInt64Opt(root any, path string) (int64, bool, error) {
	node, ok, err := optNode(root, path)
	if !ok || err != nil {
		return 0, false, err
	}
	i, err := asInt64(opGet, path, node)
	if err != nil {
		return 0, false, err
	}
	return i, true, nil
}

// GetInt32Opt retrieves the integral number at path as an int32,
// reporting absence for a missing or null-valued key.
func GetInt32Opt(root any, path string) (int32, bool, error) {
	node, ok, err := optNode(root, path)
	if !ok || err != nil {
		return 0, false, err
	}
	i, err := asInt32(opGet, path, node)
	if err != nil {
		return 0, false, err
	}
	return i, true, nil
}

// GetUint32Opt retrieves the non-negative integral number at path as a
// uint32, reporting absence for a missing or null-valued key.
func GetUint32Opt(root any, path string) (uint32, bool, error) {
	node, ok, err := optNode(root, path)
	if !ok || err != nil {
		return 0, false, err
	}
	u, err := asUint32(opGet, path, node)
	if err != nil {
		return 0, false, err
	}
	return u, true, nil
}

// GetBoolOpt retrieves the boolean at path, reporting absence for a
// missing or null-valued key.
func GetBoolOpt(root any, path string) (bool, bool, error) {
	node, ok, err := optNode(root, path)
	if !ok || err != nil {
		return false, false, err
	}
	b, err := asBool(opGet, path, node)
	if err != nil {
		return false, false, err
	}
	return b, true, nil
}

// GetStringOr retrieves the string at path with a default fallback on
// any error.
func GetStringOr(root any, path, defaultValue string) string {
	result, err := GetString(root, path)
	if err != nil {
		return defaultValue
	}
	return result
}

// GetInt64Or retrieves the int64 at path with a default fallback on
// any error.
func GetInt64Or(root any, path string, defaultValue int64) int64 {
	result, err := GetInt64(root, path)
	if err != nil {
		return defaultValue
	}
	return result
}

// GetFloat64Or retrieves the float64 at path with a default fallback
// on any error.
func GetFloat64Or(root any, path string, defaultValue float64) float64 {
	result, err := GetFloat64(root, path)
	if err != nil {
		return defaultValue
	}
	return result
}

// GetBoolOr retrieves the bool at path with a default fallback on any
// error.
func GetBoolOr(root any, path string, defaultValue bool) bool {
	result, err := GetBool(root, path)
	if err != nil {
		return defaultValue
	}
	return result
}
