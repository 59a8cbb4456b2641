package afli

import "slices"

// auditModelDomain recursively checks that every key reachable below
// slot i of a Node maps to i under that Node's model.
func auditModelDomain[V any](n *node[V]) bool {
	if n == nil {
		return true
	}

	for i := range n.slots {
		s := &n.slots[i]

		switch s.tag {
		case slotSingle:
			if n.model.slot(s.single.Key) != i {
				return false
			}
		case slotBucket:
			for _, e := range s.bucket.entries {
				if n.model.slot(e.Key) != i {
					return false
				}
			}
		case slotChild:
			for _, k := range collectKeys(s.child) {
				if n.model.slot(k) != i {
					return false
				}
			}

			if !auditModelDomain(s.child) {
				return false
			}
		}
	}

	return true
}

// collectKeys returns every live key in the tree, in ascending order.
func collectKeys[V any](n *node[V]) []Key {
	if n == nil {
		return nil
	}

	var keys []Key

	for i := range n.slots {
		s := &n.slots[i]

		switch s.tag {
		case slotSingle:
			keys = append(keys, s.single.Key)
		case slotBucket:
			for _, e := range s.bucket.entries {
				keys = append(keys, e.Key)
			}
		case slotChild:
			keys = append(keys, collectKeys(s.child)...)
		}
	}

	slices.Sort(keys)

	return keys
}

// rootNode exposes the tree's root node for white-box property tests.
func (t *AFLI[V]) rootNode() *node[V] {
	return t.root
}
