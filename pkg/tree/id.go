// Package tree holds the node tree that the rest of kiln operates on: the
// Element data model, stable node identifiers, and the shared ViewError
// taxonomy used by every other subsystem to report structural failures.
package tree

import "fmt"

// Position identifies where a node originated in the parsed template. It is
// the stable half of an ID: re-rendering the same template produces the
// same Position for the same syntactic node, so ids survive a reparse of an
// unchanged source region.
type Position struct {
	Line int
	Col  int
}

// ID is a stable, comparable node identifier. Pos locates the node's origin
// in the parsed template; Hash disambiguates clones produced by *repeat and
// synthetic children such as an input's caret, so several ids can share a
// Pos without colliding.
type ID struct {
	Pos  Position
	Hash uint64
}

// String renders the id in a debug-friendly form.
func (id ID) String() string {
	if id.Hash == 0 {
		return fmt.Sprintf("%d:%d", id.Pos.Line, id.Pos.Col)
	}
	return fmt.Sprintf("%d:%d#%x", id.Pos.Line, id.Pos.Col, id.Hash)
}

// Child derives a disambiguated id for a synthetic or cloned descendant of
// the node at pos, salted by value (e.g. a repeat index or a fixed child
// slot such as "value" or "caret").
func Child(pos Position, value uint64) ID {
	return ID{Pos: pos, Hash: value}
}

// Fake returns the zero id, a single shared id for synthetic elements that
// need no unique identity of their own. The template renderer does not use
// it: an input's value/caret children and an img's background child get
// Child ids.
func Fake() ID {
	return ID{}
}
