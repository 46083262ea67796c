// Package valext provides typed, path-addressed access to in-memory
// JSON value trees: get, insert, take, remove, merge and traversal
// over a tree of null/bool/number/string/array/object nodes, without
// pattern-matching the tree by hand at every call site.
//
// A tree node is an `any` holding nil, bool, json.Number, string,
// []any or *Object. Object preserves insertion order. Trees are
// usually materialized with Parse and rendered back with Marshal or
// Pretty; structural (de)serialization of arbitrary caller types is
// delegated to json-iterator.
//
// # Paths
//
// Every operation takes either a flat property name or a pointer:
//
//	name, err := valext.GetString(root, "name")           // flat key
//	retries, err := valext.GetInt64(root, "/settings/retries") // pointer
//
// A pointer starts with '/' and descends through nested objects one
// property per segment. Insert creates missing intermediate objects on
// the way down:
//
//	root, _ := valext.ParseString(`{}`)
//	_ = valext.Insert(root, "/a/b/c", 1) // {"a":{"b":{"c":1}}}
//
// # Typed access
//
// Get deserializes the addressed subtree into any Go type; the
// shortcut accessors extract scalars without copying or full
// deserialization:
//
//	cfg, err := valext.Get[Config](root, "/settings")
//	host, err := valext.GetString(root, "/settings/host")
//	port, ok, err := valext.GetInt64Opt(root, "/settings/port")
//
// The *Opt accessors report absence for missing and null-valued keys
// alike; Get and the strict accessors treat a null-valued key as
// found.
//
// # Mutation
//
//	_ = valext.Insert(root, "city", "New York")
//	age, err := valext.Take[int](root, "age")       // leaves null behind
//	old, err := valext.Remove[string](root, "/tmp/token") // deletes the entry
//	err = valext.Merge(root, other)                  // shallow, one level
//
// # Traversal
//
// Walk visits every object property breadth-first and stops when the
// callback returns false:
//
//	valext.Walk(root, func(parent *valext.Object, key string) bool {
//		fmt.Println(key)
//		return true
//	})
//
// # Concurrency
//
// Trees carry no internal synchronization. Callers must serialize
// access themselves: exclusive access for Insert, Take, Remove, Merge
// and mutating Walk callbacks, shared access for reads.
package valext
