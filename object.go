package valext

// Object is the object node of a value tree: a string-keyed container
// that preserves insertion order. Overwriting an existing key keeps its
// original position; new keys append at the end.
//
// Object carries no internal synchronization. Callers must hold
// exclusive access for mutations and may share read access, the same
// discipline the package-level operations document.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty object node.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Len returns the number of properties in the object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Has reports whether the object holds the given key.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[key]
	return ok
}

// Get returns the value stored under key and whether the key exists.
// A present key holding null yields (nil, true), distinguishing it
// from a missing key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set stores value under key. The value must already be in tree form
// (nil, bool, json.Number, string, []any or *Object); path-level
// operations such as Insert perform conversion before calling Set.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[key] = value
}

// Delete removes key from the object, returning the removed value and
// whether the key existed. Remaining keys keep their relative order.
func (o *Object) Delete(key string) (any, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Keys returns the object's keys in insertion order. The returned
// slice is a copy and stays valid across subsequent mutations.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Range calls fn for each property in insertion order until fn returns
// false. It returns true if every property was visited.
func (o *Object) Range(fn func(key string, value any) bool) bool {
	if o == nil {
		return true
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return false
		}
	}
	return true
}
