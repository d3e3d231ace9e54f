// Package style implements the CSS cascade: matching parsed rules against
// tree nodes, expanding shorthands, computing values with units, running
// animations/transitions, and splitting the result into element
// presentation fields and a layout-engine style object (spec.md §4.3).
package style

import "fmt"

// ValueKind tags the variant carried by a ComputedValue, mirroring
// original_source/src/css/mod.rs's ComputedValue enum flattened to Go's
// tagged-struct idiom, the way pkg/components/layout_types.go models its
// string-backed enums.
type ValueKind int

const (
	KindKeyword ValueKind = iota
	KindColor
	KindLength   // resolved to device pixels
	KindDimension // unresolved number+unit, for units the Sizes context does not resolve (fr)
	KindPercentage
	KindNumber
	KindTime
	KindString
	KindFunction
	KindZero
)

// ComputedValue is the result of resolving one parsed Token against a
// Sizes context. Exactly one payload field is meaningful, selected by Kind.
type ComputedValue struct {
	Kind ValueKind

	Keyword string
	Color   Color
	Length  float64 // device pixels for KindLength/KindZero; for KindPercentage, pixels when resolved against a basis, else the raw percentage
	Unit    string  // original unit, for KindDimension
	Number  float64
	Time    float64 // seconds
	Str     string
	Func    string
	Args    []ComputedValue
}

// Color is a resolved rgba color in 0-255 channels, matching tree.Color.
type Color struct {
	R, G, B, A uint8
}

func (v ComputedValue) String() string {
	switch v.Kind {
	case KindKeyword:
		return v.Keyword
	case KindColor:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	case KindLength:
		return fmt.Sprintf("%gpx", v.Length)
	case KindDimension:
		return fmt.Sprintf("%g%s", v.Number, v.Unit)
	case KindPercentage:
		return fmt.Sprintf("%g%%", v.Length)
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	case KindTime:
		return fmt.Sprintf("%gs", v.Time)
	case KindString:
		return v.Str
	case KindFunction:
		return v.Func + "(...)"
	default:
		return "0"
	}
}
