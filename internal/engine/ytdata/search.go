package ytdata

// FindValuesByKey collects every value stored under key anywhere in root,
// depth-first in pre-order: an object's own match comes before anything found
// inside its members, and members and array elements are visited in document order.
// Scalars and nulls are never descended into. Matched values are descended
// into as well, so a renderer nested inside another of the same name is found too.
func FindValuesByKey(root *Node, key string) []*Node {
	var results []*Node
	if !descendable(root) {
		return results
	}

	// Children are pushed in reverse so they pop in document order.
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.kind {
		case Object:
			if v := n.Get(key); v != nil {
				results = append(results, v)
			}
			for i := len(n.members) - 1; i >= 0; i-- {
				if v := n.members[i].Value; descendable(v) {
					stack = append(stack, v)
				}
			}
		case Array:
			for i := len(n.items) - 1; i >= 0; i-- {
				if v := n.items[i]; descendable(v) {
					stack = append(stack, v)
				}
			}
		}
	}
	return results
}

func descendable(n *Node) bool {
	k := n.Kind()
	return k == Object || k == Array
}
