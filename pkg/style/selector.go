package style

import (
	"strings"

	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// Matcher supplies the host-tracked interaction state a selector needs to
// evaluate pseudo-classes; the tree itself only knows tag/attrs/children.
type Matcher interface {
	Parent(id tree.ID) (tree.ID, error)
	Children(id tree.ID) ([]*tree.Element, error)
	Get(id tree.ID) (*tree.Element, error)
	PseudoClasses(id tree.ID) map[string]bool
}

// MatchesAny reports whether any of sel's alternative selectors matches el,
// grounded on original_source/src/css/matching.rs's match_style.
func MatchesAny(m Matcher, el *tree.Element, selectors []parsed.Selector) bool {
	for _, sel := range selectors {
		if Matches(m, el, sel) {
			return true
		}
	}
	return false
}

// Matches walks sel's components right to left against the tree starting
// at el, grounded on original_source/src/css/matching.rs's
// match_complex_selector: each component matches the current target, then
// its own Combinator field (the relation to the component one step to its
// left, per CSS grammar) produces the next target. The child (>) and
// adjacent-sibling (+) combinators have one deterministic candidate; the
// descendant combinator (spec.md §4.3, unsupported in the original) scans
// ancestors outward and accepts the first one that matches — a greedy
// simplification of full selector backtracking, adequate for the single-
// compound-per-level stylesheets this engine targets.
func Matches(m Matcher, el *tree.Element, sel parsed.Selector) bool {
	components := sel.Components
	target := el.ID
	for i := len(components) - 1; i >= 0; i-- {
		node, err := m.Get(target)
		if err != nil {
			return false
		}
		if !matchComponent(m, node, components[i]) {
			return false
		}
		if i == 0 {
			return true
		}
		next, ok := step(m, components[i].Combinator, target, components[i-1])
		if !ok {
			return false
		}
		target = next
	}
	return true
}

// step advances from target to a candidate for the component one step to
// the left, per combinator. For descendant it returns the nearest matching
// ancestor (if any); for child/adjacent the single deterministic candidate.
func step(m Matcher, combinator parsed.SelectorCombinator, target tree.ID, left parsed.SelectorComponent) (tree.ID, bool) {
	switch combinator {
	case parsed.CombinatorDescendant:
		cur := target
		for {
			parent, err := m.Parent(cur)
			if err != nil {
				return tree.ID{}, false
			}
			node, err := m.Get(parent)
			if err != nil {
				return tree.ID{}, false
			}
			if matchComponent(m, node, left) {
				return parent, true
			}
			cur = parent
		}
	case parsed.CombinatorChild:
		parent, err := m.Parent(target)
		if err != nil {
			return tree.ID{}, false
		}
		return parent, true
	case parsed.CombinatorAdjacent:
		parent, err := m.Parent(target)
		if err != nil {
			return tree.ID{}, false
		}
		siblings, err := m.Children(parent)
		if err != nil {
			return tree.ID{}, false
		}
		for i, sib := range siblings {
			if sib.ID == target && i > 0 {
				return siblings[i-1].ID, true
			}
		}
		return tree.ID{}, false
	default:
		return tree.ID{}, false
	}
}

func matchComponent(m Matcher, el *tree.Element, comp parsed.SelectorComponent) bool {
	if comp.Universal {
		return true
	}
	if comp.Type != "" && el.Tag != comp.Type {
		return false
	}
	if comp.ID != "" && el.Attrs["id"] != comp.ID {
		return false
	}
	for _, class := range comp.Classes {
		if !hasClass(el.Attrs["class"], class) {
			return false
		}
	}
	if comp.Attr != nil && !matchAttr(el, *comp.Attr) {
		return false
	}
	if comp.Root {
		if _, err := m.Parent(el.ID); err == nil {
			return false
		}
	}
	if comp.PseudoClass != "" && !m.PseudoClasses(el.ID)[comp.PseudoClass] {
		return false
	}
	return true
}

func hasClass(classes, want string) bool {
	for _, c := range strings.Fields(classes) {
		if c == want {
			return true
		}
	}
	return false
}

func matchAttr(el *tree.Element, a parsed.AttrSelector) bool {
	val, ok := el.Attrs[a.Name]
	if !ok {
		return false
	}
	switch a.Match {
	case parsed.AttrPresent:
		return true
	case parsed.AttrEquals:
		return val == a.Value
	case parsed.AttrIncludes:
		for _, w := range strings.Fields(val) {
			if w == a.Value {
				return true
			}
		}
		return false
	case parsed.AttrDash:
		return val == a.Value || strings.HasPrefix(val, a.Value+"-")
	case parsed.AttrPrefix:
		return strings.HasPrefix(val, a.Value)
	case parsed.AttrSubstr:
		return strings.Contains(val, a.Value)
	case parsed.AttrSuffix:
		return strings.HasSuffix(val, a.Value)
	default:
		return false
	}
}
