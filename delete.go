package valext

// Take replaces the value at path with null in place and returns the
// previous value deserialized into T. The key itself stays in its
// container, so a subsequent Get on the same path finds null. A
// missing path reports ErrPropertyNotFound; Take never autocreates.
//
// Take requires exclusive access to the tree for the duration of the
// call.
func Take[T any](root any, path string) (T, error) {
	var out T
	site, err := resolveEntry(opTake, root, path)
	if err != nil {
		return out, err
	}
	prev := site.swapNull()
	if err := decodeInto(opTake, path, prev, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Remove deletes the entry at path from its parent container and
// returns the removed value deserialized into T. Object entries are
// removed by key; array elements are removed positionally, shifting
// subsequent elements down. A missing path reports ErrPropertyNotFound.
//
// Remove requires exclusive access to the tree for the duration of the
// call.
func Remove[T any](root any, path string) (T, error) {
	var out T
	site, err := resolveEntry(opRemove, root, path)
	if err != nil {
		return out, err
	}
	prev := site.remove()
	if err := decodeInto(opRemove, path, prev, &out); err != nil {
		return out, err
	}
	return out, nil
}
