package style

import "fmt"

// CascadeErrorKind names the six ways one property application can fail
// (spec.md §7), mirroring the sentinel+struct error shape of
// pkg/tree/errors.go and pkg/template/errors.go.
type CascadeErrorKind int

const (
	ErrInvalidKeyword CascadeErrorKind = iota
	ErrInvalidColor
	ErrInvalidLength
	ErrUnresolvedVar
	ErrUnsupportedUnit
	ErrUnsupportedCombinator
)

// CascadeError reports a single failed property application or selector
// match. The cascade's propagation policy (spec.md §7) is to log and skip
// the offending property/selector, not to abort the whole node.
type CascadeError struct {
	Kind     CascadeErrorKind
	Property string
	Detail   string
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("style: %s: %s (%s)", e.Property, e.Detail, e.kindName())
}

func (e *CascadeError) kindName() string {
	switch e.Kind {
	case ErrInvalidKeyword:
		return "invalid keyword"
	case ErrInvalidColor:
		return "invalid color"
	case ErrInvalidLength:
		return "invalid length"
	case ErrUnresolvedVar:
		return "unresolved var()"
	case ErrUnsupportedUnit:
		return "unsupported unit"
	case ErrUnsupportedCombinator:
		return "unsupported combinator"
	default:
		return "unknown"
	}
}

func invalidKeyword(property, keyword string) error {
	return &CascadeError{Kind: ErrInvalidKeyword, Property: property, Detail: fmt.Sprintf("keyword %q", keyword)}
}
