package valext

// Insert serializes value into tree form and stores it at path,
// overwriting any existing value there regardless of its previous
// type. For pointer paths, missing intermediate objects are created on
// the way down; an existing non-object intermediate is a type
// mismatch. The root must be an object.
//
// Insert requires exclusive access to the tree for the duration of the
// call.
func Insert(root any, path string, value any) error {
	node, err := toValue(opInsert, path, value)
	if err != nil {
		return err
	}
	parent, key, err := resolveForWrite(opInsert, root, path)
	if err != nil {
		return err
	}
	parent.Set(key, node)
	return nil
}

// Merge copies every property of other into root, one level deep.
// Colliding keys are overwritten wholesale: when both sides hold an
// object under the same key, the right-hand object replaces the
// left-hand one rather than recursing. Existing keys keep their
// position; new keys append in other's iteration order. Merged values
// are deep copies, so the two trees stay independent.
//
// Both root and other must be object nodes.
func Merge(root, other any) error {
	dst, ok := AsObject(root)
	if !ok {
		return newRootTypeError(opMerge, typeObject)
	}
	src, ok := AsObject(other)
	if !ok {
		return newRootTypeError(opMerge, typeObject)
	}
	src.Range(func(key string, value any) bool {
		dst.Set(key, cloneValue(value))
		return true
	})
	return nil
}
