package valext

import (
	"strconv"
	"strings"
)

// A path is either a flat key or a pointer:
//
//   - Flat key: any string not starting with '/'. Addresses a single
//     direct property of the root object. The empty path is the flat
//     key "" and addresses a root property literally named "".
//   - Pointer: a '/'-delimited string descending through nested
//     objects, one property name per segment. Segments never index
//     arrays during descent; only a final numeric segment may address
//     an array element.

const pointerPrefix = "/"

func isPointer(path string) bool {
	return strings.HasPrefix(path, pointerPrefix)
}

func splitPointer(path string) []string {
	return strings.Split(path[1:], "/")
}

// arrayIndex parses a final pointer segment as an array index.
func arrayIndex(segment string, length int) (int, bool) {
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

// resolveForRead locates the node addressed by path. A present key
// holding null resolves to (nil, nil); only a missing key or segment
// reports ErrPropertyNotFound. Descending through an existing
// non-object intermediate reports ErrTypeMismatch.
func resolveForRead(op string, root any, path string) (any, error) {
	if !isPointer(path) {
		obj, ok := AsObject(root)
		if !ok {
			return nil, newRootTypeError(op, typeObject)
		}
		value, found := obj.Get(path)
		if !found {
			return nil, newNotFoundError(op, path)
		}
		return value, nil
	}

	segments := splitPointer(path)
	current := root
	for i, segment := range segments {
		switch node := current.(type) {
		case *Object:
			value, found := node.Get(segment)
			if !found {
				return nil, newNotFoundError(op, path)
			}
			current = value
		case []any:
			if i != len(segments)-1 {
				return nil, newTypeMismatchError(op, path, typeObject)
			}
			idx, ok := arrayIndex(segment, len(node))
			if !ok {
				return nil, newNotFoundError(op, path)
			}
			current = node[idx]
		default:
			return nil, newTypeMismatchError(op, path, typeObject)
		}
	}
	return current, nil
}

// resolveForWrite locates the parent container for an insert,
// autocreating missing intermediate objects, and returns the parent
// together with the final key. It never touches the leaf itself.
func resolveForWrite(op string, root any, path string) (*Object, string, error) {
	obj, ok := AsObject(root)
	if !ok {
		return nil, "", newRootTypeError(op, typeObject)
	}
	if !isPointer(path) {
		return obj, path, nil
	}

	segments := splitPointer(path)
	for _, segment := range segments[:len(segments)-1] {
		child, found := obj.Get(segment)
		if !found {
			next := NewObject()
			obj.Set(segment, next)
			obj = next
			continue
		}
		obj, ok = AsObject(child)
		if !ok {
			return nil, "", newTypeMismatchError(op, path, typeObject)
		}
	}
	return obj, segments[len(segments)-1], nil
}

// entrySite is an existing leaf entry located for take or remove: an
// object property, or an array element reachable through its owning
// object entry so that positional removal can write the shrunk slice
// back.
type entrySite struct {
	parent *Object
	key    string

	owner    *Object
	ownerKey string
	arr      []any
	index    int
}

func (s *entrySite) isArrayElement() bool {
	return s.arr != nil
}

// value returns the current leaf value.
func (s *entrySite) value() any {
	if s.isArrayElement() {
		return s.arr[s.index]
	}
	v, _ := s.parent.Get(s.key)
	return v
}

// swapNull replaces the leaf with null in place, returning the
// previous value.
func (s *entrySite) swapNull() any {
	prev := s.value()
	if s.isArrayElement() {
		s.arr[s.index] = nil
		return prev
	}
	s.parent.Set(s.key, nil)
	return prev
}

// remove deletes the leaf entry from its container, returning the
// removed value. Array removal shifts subsequent elements down.
func (s *entrySite) remove() any {
	if s.isArrayElement() {
		prev := s.arr[s.index]
		s.owner.Set(s.ownerKey, append(s.arr[:s.index], s.arr[s.index+1:]...))
		return prev
	}
	prev, _ := s.parent.Delete(s.key)
	return prev
}

// resolveEntry locates an existing entry for take or remove. It never
// autocreates; any missing segment reports ErrPropertyNotFound.
func resolveEntry(op string, root any, path string) (*entrySite, error) {
	rootObj, ok := AsObject(root)
	if !ok {
		return nil, newRootTypeError(op, typeObject)
	}
	if !isPointer(path) {
		if !rootObj.Has(path) {
			return nil, newNotFoundError(op, path)
		}
		return &entrySite{parent: rootObj, key: path}, nil
	}

	segments := splitPointer(path)
	parent := rootObj
	for i, segment := range segments[:len(segments)-1] {
		child, found := parent.Get(segment)
		if !found {
			return nil, newNotFoundError(op, path)
		}
		if i == len(segments)-2 {
			// The child may be the array the final segment indexes.
			if arr, isArr := AsArray(child); isArr {
				idx, ok := arrayIndex(segments[len(segments)-1], len(arr))
				if !ok {
					return nil, newNotFoundError(op, path)
				}
				return &entrySite{
					owner:    parent,
					ownerKey: segment,
					arr:      arr,
					index:    idx,
				}, nil
			}
		}
		obj, isObj := AsObject(child)
		if !isObj {
			return nil, newTypeMismatchError(op, path, typeObject)
		}
		parent = obj
	}

	last := segments[len(segments)-1]
	if !parent.Has(last) {
		return nil, newNotFoundError(op, path)
	}
	return &entrySite{parent: parent, key: last}, nil
}
