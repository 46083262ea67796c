package valext

// WalkFunc is called for every object property during a Walk. It
// receives the object holding the property and the property name, and
// returns whether the traversal should continue. The callback may
// mutate parent, including removing the property it was called for.
type WalkFunc func(parent *Object, key string) bool

// Walk traverses every object property in the tree breadth-first:
// containers are visited level by level, and within one object the
// callback runs in insertion order. Array elements do not generate
// callbacks themselves, but containers nested in arrays are still
// descended into.
//
// Walk returns true if the traversal visited everything, false if the
// callback stopped it early.
func Walk(root any, fn WalkFunc) bool {
	if !isContainer(root) {
		return true
	}
	queue := []any{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		switch node := current.(type) {
		case *Object:
			// Snapshot the keys so the callback can mutate the object.
			for _, key := range node.Keys() {
				if !fn(node, key) {
					return false
				}
			}
			node.Range(func(_ string, value any) bool {
				if isContainer(value) {
					queue = append(queue, value)
				}
				return true
			})
		case []any:
			for _, value := range node {
				if isContainer(value) {
					queue = append(queue, value)
				}
			}
		}
	}
	return true
}
