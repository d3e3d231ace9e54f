package binder

import "github.com/kiln-ui/kiln/pkg/tree"

// ReactionKind mirrors template.BindingKind: each Reaction variant is the
// concrete-value counterpart of the Binding that produced it (spec.md §3).
type ReactionKind int

const (
	ReactText ReactionKind = iota
	ReactVisibility
	ReactAttribute
	ReactRepeat
)

// Reaction is a deferred, concrete mutation produced by the binder for one
// changed model path (spec.md §4.2's table).
type Reaction struct {
	Kind ReactionKind
	Node tree.ID

	// ReactText
	SpanIndex int
	Text      string

	// ReactVisibility
	Visible bool

	// ReactAttribute
	Attr  string
	Value string

	// ReactRepeat
	Start  int
	Cursor int
	End    int
}
