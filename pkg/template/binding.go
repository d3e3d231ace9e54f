// Package template expands an already-parsed parsed.Node tree into a
// tree.Tree of Elements plus a Bindings table recording every data binding
// discovered along the way (spec.md §4.1).
package template

import "github.com/kiln-ui/kiln/pkg/tree"

// BindingKind selects which variant of Binding a value holds.
type BindingKind int

const (
	BindText BindingKind = iota
	BindVisibility
	BindAttribute
	BindRepeat
)

// Binding is an edge from a canonical model path to a mutation on a node
// (spec.md §3). Only the fields relevant to Kind are meaningful.
type Binding struct {
	Kind BindingKind
	Node tree.ID

	// BindText
	SpanIndex int

	// BindVisibility
	Expected bool

	// BindAttribute
	Attr string

	// BindRepeat
	Start int
	Size  int
}

// Bindings maps a canonical model path to every Binding registered at that
// path, in discovery (declaration) order — the order reactions are applied
// in, per spec.md §5's ordering guarantee.
type Bindings struct {
	byPath map[string][]Binding
	order  []string
}

// NewBindings returns an empty Bindings table.
func NewBindings() *Bindings {
	return &Bindings{byPath: map[string][]Binding{}}
}

// Add registers b at path, preserving first-seen path order.
func (b *Bindings) Add(path string, binding Binding) {
	if _, ok := b.byPath[path]; !ok {
		b.order = append(b.order, path)
	}
	b.byPath[path] = append(b.byPath[path], binding)
}

// At returns the bindings registered at path, in declaration order.
func (b *Bindings) At(path string) []Binding {
	return b.byPath[path]
}

// Paths returns every path that has at least one binding, in discovery
// order.
func (b *Bindings) Paths() []string {
	return b.order
}
