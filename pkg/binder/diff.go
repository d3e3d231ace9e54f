package binder

import (
	"fmt"
	"sort"

	"github.com/kiln-ui/kiln/pkg/template"
)

// Logger receives a human-readable reason whenever the diff walk skips part
// of the incoming value (a type mismatch or a key missing from the new
// object), per spec.md §4.2 and the log-and-skip propagation policy of
// spec.md §7. The zero value is a silent no-op.
type Logger func(path, reason string)

// ViewModel holds the canonical model and the Bindings table discovered by
// the template renderer, and reconciles a new value against the previous
// one on each Bind call (spec.md §4.2).
type ViewModel struct {
	bindings *template.Bindings
	model    any
	log      Logger
}

// New returns a ViewModel with no prior model (the first Bind call reacts
// as if every bound path changed from "absent").
func New(bindings *template.Bindings, log Logger) *ViewModel {
	if log == nil {
		log = func(string, string) {}
	}
	return &ViewModel{bindings: bindings, log: log}
}

// Bind performs the typed diff walk of spec.md §4.2 against next and
// returns the Reactions it produces, then adopts next as the new canonical
// model. Binding two structurally identical values in a row yields no
// reactions (spec.md §8's idempotence property).
func (vm *ViewModel) Bind(next any) []Reaction {
	var out []Reaction
	out = vm.walk("", vm.model, next, out)
	vm.model = next
	return out
}

func (vm *ViewModel) walk(path string, old, next any, out []Reaction) []Reaction {
	switch nextVal := next.(type) {
	case []any:
		oldArr, ok := old.([]any)
		if !ok && old != nil {
			vm.log(path, fmt.Sprintf("type mismatch: expected array, model has %T", old))
			return out
		}
		if len(oldArr) != len(nextVal) {
			out = vm.emit(path, nextVal, out)
		}
		for i, v := range nextVal {
			var ov any
			if i < len(oldArr) {
				ov = oldArr[i]
			}
			out = vm.walk(indexPath(path, i), ov, v, out)
		}
		return out

	case map[string]any:
		oldObj, ok := old.(map[string]any)
		if !ok && old != nil {
			vm.log(path, fmt.Sprintf("type mismatch: expected object, model has %T", old))
			return out
		}
		for _, k := range sortedKeys(nextVal) {
			ov, had := oldObj[k]
			_ = had
			out = vm.walk(fieldPath(path, k), ov, nextVal[k], out)
		}
		for k := range oldObj {
			if _, ok := nextVal[k]; !ok {
				vm.log(fieldPath(path, k), "key missing from updated model")
			}
		}
		return out

	default:
		switch old.(type) {
		case []any, map[string]any:
			vm.log(path, fmt.Sprintf("type mismatch: expected leaf, model has %T", old))
			return out
		}
		if !equalLeaf(old, next) {
			out = vm.emit(path, next, out)
		}
		return out
	}
}

// emit looks up every Binding registered at path and appends the Reaction
// each one produces for the current value, in the Bindings table's
// declaration order (spec.md §5's ordering guarantee).
func (vm *ViewModel) emit(path string, value any, out []Reaction) []Reaction {
	for _, b := range vm.bindings.At(path) {
		switch b.Kind {
		case template.BindText:
			out = append(out, Reaction{Kind: ReactText, Node: b.Node, SpanIndex: b.SpanIndex, Text: Stringify(value)})
		case template.BindVisibility:
			out = append(out, Reaction{Kind: ReactVisibility, Node: b.Node, Visible: Truthy(value) == b.Expected})
		case template.BindAttribute:
			out = append(out, Reaction{Kind: ReactAttribute, Node: b.Node, Attr: b.Attr, Value: Stringify(value)})
		case template.BindRepeat:
			arr, ok := value.([]any)
			if !ok {
				vm.log(path, "repeat binding target is not an array")
				continue
			}
			cursor := b.Start + min(len(arr), b.Size)
			out = append(out, Reaction{
				Kind: ReactRepeat, Node: b.Node,
				Start: b.Start, Cursor: cursor, End: b.Start + b.Size,
			})
		}
	}
	return out
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func fieldPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// equalLeaf compares two decoded JSON leaf values (nil/bool/float64/string)
// with "!=" as spec.md §4.2 requires. Values of differing dynamic type
// (including a leaf compared against nil) are always unequal.
func equalLeaf(a, b any) bool {
	return a == b
}
