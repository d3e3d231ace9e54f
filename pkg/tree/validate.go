package tree

import "fmt"

// Validate walks the tree and panics if any of SPEC_FULL.md §3's structural
// invariants are violated: unique ids, live children, a focus target (if
// any) that still exists. It is a debug aid, not production error handling
// — per spec.md §7 the only legal panics are invariant violations that are
// unreachable after a successful parse, and this is the one place that
// checks for them.
func (t *Tree) Validate(focus *ID) {
	seen := make(map[ID]bool, len(t.elements))
	for id, el := range t.elements {
		if id != el.ID {
			panic(fmt.Sprintf("kiln/tree: element stored under %s has id %s", id, el.ID))
		}
		if seen[id] {
			panic(fmt.Sprintf("kiln/tree: duplicate node id %s", id))
		}
		seen[id] = true
	}
	for id, el := range t.elements {
		for _, child := range el.Children {
			if _, ok := t.elements[child]; !ok {
				panic(fmt.Sprintf("kiln/tree: element %s references missing child %s", id, child))
			}
		}
	}
	if focus != nil {
		if _, ok := t.elements[*focus]; !ok {
			panic(fmt.Sprintf("kiln/tree: focus references missing element %s", *focus))
		}
	}
}
