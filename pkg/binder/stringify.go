// Package binder holds the view model: it reconciles a new JSON value
// against the previous one and emits the minimal list of Reactions that
// mutate the node tree in place (spec.md §4.2).
package binder

import (
	"fmt"
	"strconv"
)

// Stringify converts a decoded JSON value to its attribute/text
// representation, following the fixed table in spec.md §4.2: null → "" ,
// bool → its literal ("true"/"false"), number → decimal, string → itself,
// array/object → a placeholder string (kept, not joined — see
// SPEC_FULL.md §9's note on this inherited ambiguity).
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case []any:
		return "[array]"
	case map[string]any:
		return "[object]"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Truthy converts a decoded JSON value to a boolean, following spec.md
// §4.2's table: null/false → false; true → true; numbers are true unless
// exactly zero; strings are true unless empty; arrays/objects are true
// unless empty.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
