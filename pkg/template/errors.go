package template

import (
	"errors"
	"fmt"
)

// RenderError sentinels, following the sentinel+struct pairing used across
// kiln (see pkg/tree/errors.go). These surface malformed template semantics
// per spec.md §7 — a close-without-open alias, a repeat directive with no
// bound list, conflicting ?/! directives on one node.
var (
	ErrAliasUnbalanced  = errors.New("kiln/template: alias scope closed without matching open")
	ErrRepeatNoList     = errors.New("kiln/template: *repeat directive has no bound list expression")
	ErrConflictingShow  = errors.New("kiln/template: element has both ?visible and !visible directives")
)

// DirectiveError carries the offending node position alongside one of the
// sentinels above.
type DirectiveError struct {
	Line, Col int
	Err       error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("kiln/template: %v at %d:%d", e.Err, e.Line, e.Col)
}

func (e *DirectiveError) Unwrap() error { return e.Err }
