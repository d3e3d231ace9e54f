package template

import "strings"

// Schema composes surface binding expressions into canonical dotted model
// paths, tracking the local alias environment introduced by *item repeats
// and @name=expr rebindings (spec.md §4.1). The same surface expression
// resolves to the same canonical key regardless of which scope it appears
// in, which is what lets pkg/binder key its Bindings lookups by path alone.
type Schema struct {
	scopes []map[string]string
}

// NewSchema returns a Schema with just the root scope (no aliases).
func NewSchema() *Schema {
	return &Schema{scopes: []map[string]string{{}}}
}

// PushAlias introduces name as an alias for canonical (e.g. repeating
// "todo" over "list" at index 2 pushes {"todo": "list[2]"}). It must be
// paired with a later PopAlias when the node's subtree is done rendering.
func (s *Schema) PushAlias(name, canonical string) {
	scope := make(map[string]string, 1)
	scope[name] = canonical
	s.scopes = append(s.scopes, scope)
}

// PopAlias restores the environment to what it was before the matching
// PushAlias. Popping past the root scope is a RenderError
// (ErrAliasUnbalanced) surfaced by the caller, not here, since Schema has
// no position context of its own.
func (s *Schema) PopAlias() bool {
	if len(s.scopes) <= 1 {
		return false
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return true
}

// Depth reports how many alias scopes (beyond the root) are currently open,
// used by the renderer to detect unbalanced aliases at the end of a parse.
func (s *Schema) Depth() int { return len(s.scopes) - 1 }

// Resolve composes expr against the current alias environment into a
// canonical dotted path. Only the leading identifier of expr is subject to
// alias substitution; the remainder of the expression (a ".field" chain
// and/or a "[index]" suffix) is appended unchanged.
func (s *Schema) Resolve(expr string) string {
	head, sep, rest := splitHead(expr)
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if canonical, ok := s.scopes[i][head]; ok {
			switch {
			case rest == "":
				return canonical
			case sep == '.':
				return canonical + "." + rest
			default: // '['
				return canonical + "[" + rest
			}
		}
	}
	return expr
}

// splitHead splits "item.done" into ("item", '.', "done") and
// "list[0]" into ("list", '[', "0]"); "list" alone splits into
// ("list", 0, "").
func splitHead(expr string) (head string, sep byte, rest string) {
	i := strings.IndexAny(expr, ".[")
	if i < 0 {
		return expr, 0, ""
	}
	return expr[:i], expr[i], expr[i+1:]
}
