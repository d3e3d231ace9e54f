package style

import (
	"fmt"

	"github.com/kiln-ui/kiln/pkg/layout"
	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// InheritedStyle is the closed set of properties spec.md §4.3 step 2 pulls
// from the parent rather than resetting to an engine default: color, the
// font longhands, text-align, and pointer-events. Grounded on
// original_source/src/styles.rs's inherit() function.
type InheritedStyle struct {
	Color         Color
	FontFamily    string
	FontSize      float64
	FontStyle     tree.FontStyle
	FontWeight    tree.FontWeight
	LineHeight    float64
	TextAlign     tree.TextAlign
	PointerEvents tree.PointerEvents
}

// DefaultInherited are the engine's root-level defaults, applied to nodes
// with no parent (spec.md §4.3 step 1's reset, for the inherited subset).
func DefaultInherited() InheritedStyle {
	return InheritedStyle{
		Color:         Color{R: 0, G: 0, B: 0, A: 255},
		FontFamily:    "system-ui",
		FontSize:      16,
		FontStyle:     tree.FontStyleNormal,
		FontWeight:    tree.FontWeightNormal,
		LineHeight:    16,
		TextAlign:     tree.TextAlignStart,
		PointerEvents: tree.PointerEventsAuto,
	}
}

// AnimationSource supplies the active animator/transition tween values for
// one node during cascade steps 5 and 6 (spec.md §4.3/§4.4), implemented
// by pkg/anim. Cascade calls it after the rule/inline passes so animated
// values blend onto, and transitions watch, the already-computed style
// map — kept as an interface here rather than an import so pkg/style does
// not depend on pkg/anim.
type AnimationSource interface {
	// Overrides returns the property/value pairs any running animator on
	// id contributes this frame, already resolved to ComputedValue.
	Overrides(id tree.ID) map[string]ComputedValue
	// Transition returns a ComputedValue override for prop if a watched
	// transition on id is mid-flight, and whether one applies.
	Transition(id tree.ID, prop string, target ComputedValue) (ComputedValue, bool)
}

// Cascade runs the per-node cascade (spec.md §4.3) for every node of tr,
// writing presentation fields onto each tree.Element and returning a
// layout.Style per node for the layout driver.
type Cascade struct {
	Sheet  parsed.StyleSheet
	Sizes  Sizes
	Matcher Matcher
	Anim   AnimationSource // nil disables steps 5/6
	Log    func(nodeID tree.ID, property string, err error)
}

// Run walks tr computing each visible node's style, parent-first so
// inheritance and font-size-before-children ordering hold (spec.md §4.3's
// "font-size resolved before children inherit it").
func (c *Cascade) Run(tr *tree.Tree) (map[tree.ID]layout.Style, error) {
	root, err := tr.Get(tr.Root)
	if err != nil {
		return nil, err
	}
	out := map[tree.ID]layout.Style{}
	if err := c.node(tr, root, DefaultInherited(), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Cascade) node(tr *tree.Tree, el *tree.Element, inherited InheritedStyle, out map[tree.ID]layout.Style) error {
	if !el.Visible {
		return nil
	}

	// Step 1: reset.
	el.Backgrounds = nil
	el.Borders = tree.Borders{}
	el.Opacity = 1
	el.Transforms = nil
	el.Animation = nil
	el.Transition = nil
	lstyle := layout.DefaultStyle()

	// Step 2: inherit closed set.
	c.applyInherited(el, inherited)
	sizes := c.Sizes
	sizes.ParentFontSize = inherited.FontSize

	computed := map[string]ComputedValue{}

	// Step 3: matching rules, in source order.
	for _, rule := range c.Sheet.Rules {
		if !MatchesAny(c.Matcher, el, rule.Selectors) {
			continue
		}
		c.collectDeclarations(el.ID, rule.Declarations, sizes, computed)
	}

	// Step 4: inline style, already tokenized by the template renderer into
	// the same Declaration shape a stylesheet Rule carries. Runs after
	// matched rules so it wins ties on the same longhand, same as CSS.
	if len(el.InlineStyle) > 0 {
		c.collectDeclarations(el.ID, el.InlineStyle, sizes, computed)
	}

	// Step 5: animators.
	if c.Anim != nil {
		for prop, v := range c.Anim.Overrides(el.ID) {
			computed[prop] = v
		}
	}

	// Step 6: transitions watch the final pre-transition value per prop.
	if c.Anim != nil {
		for prop, v := range computed {
			if tv, ok := c.Anim.Transition(el.ID, prop, v); ok {
				computed[prop] = tv
			}
		}
	}

	// Step 7: translate into presentation + layout style. font-size is
	// applied first so a percentage line-height resolves against it.
	if v, ok := computed["font-size"]; ok {
		if err := c.apply("font-size", v, sizes, el, &lstyle); err != nil {
			c.log(el.ID, "font-size", err)
		}
	}
	for prop, v := range computed {
		if prop == "font-size" {
			continue
		}
		if err := c.apply(prop, v, sizes, el, &lstyle); err != nil {
			c.log(el.ID, prop, err)
		}
	}

	out[el.ID] = lstyle

	childInherited := InheritedStyle{
		Color:         el.Foreground,
		FontFamily:    el.Font.Family,
		FontSize:      el.Font.Size,
		FontStyle:     el.Font.Style,
		FontWeight:    el.Font.Weight,
		LineHeight:    el.Font.LineHeight,
		TextAlign:     el.Font.Align,
		PointerEvents: el.PointerEvents,
	}

	children, err := tr.Children(el.ID)
	if err != nil {
		return err
	}
	for _, c2 := range children {
		if err := c.node(tr, c2, childInherited, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cascade) applyInherited(el *tree.Element, inherited InheritedStyle) {
	el.Foreground = inherited.Color
	el.Font.Family = inherited.FontFamily
	el.Font.Size = inherited.FontSize
	el.Font.Style = inherited.FontStyle
	el.Font.Weight = inherited.FontWeight
	el.Font.LineHeight = inherited.LineHeight
	el.Font.Align = inherited.TextAlign
	el.PointerEvents = inherited.PointerEvents
}

func (c *Cascade) collectDeclarations(id tree.ID, decls []parsed.Declaration, sizes Sizes, out map[string]ComputedValue) {
	for _, d := range decls {
		if d.Custom {
			continue // custom properties feed var() resolution, not direct application
		}
		for _, longhand := range expandShorthand(d) {
			resolved, err := c.resolveDeclaration(longhand, sizes)
			if err != nil {
				c.log(id, longhand.Property, err)
				continue
			}
			out[longhand.Property] = resolved
		}
	}
}

func (c *Cascade) log(id tree.ID, property string, err error) {
	if c.Log != nil {
		c.Log(id, property, err)
	}
}

// multiValued names the longhands whose value is a list of tracks rather
// than a single token (spec.md §4.3's grid-template track lists).
func multiValued(property string) bool {
	return property == "grid-template-rows" || property == "grid-template-columns"
}

// resolveDeclaration resolves a declaration's token(s) against the var()
// scope and Sizes. Most longhands are single-valued (font-size, color,
// ...) and resolve their first token; grid-template-rows/columns carry a
// track list and resolve every token, packed into a synthetic "list"
// function value for resolveTrackList to unpack.
func (c *Cascade) resolveDeclaration(d parsed.Declaration, sizes Sizes) (ComputedValue, error) {
	if len(d.Value) == 0 {
		return ComputedValue{Kind: KindZero}, nil
	}
	if multiValued(d.Property) {
		args := make([]ComputedValue, 0, len(d.Value))
		for _, tok := range d.Value {
			v, err := c.resolveToken(tok, sizes)
			if err != nil {
				return ComputedValue{}, err
			}
			args = append(args, v)
		}
		return ComputedValue{Kind: KindFunction, Func: "list", Args: args}, nil
	}
	return c.resolveToken(d.Value[0], sizes)
}

func (c *Cascade) resolveToken(tok parsed.Token, sizes Sizes) (ComputedValue, error) {
	if tok.Kind == parsed.TokenVarRef {
		resolved, ok := c.resolveVar(tok, sizes)
		if !ok {
			return ComputedValue{}, fmt.Errorf("unresolved var(--%s)", tok.VarName)
		}
		return resolved, nil
	}
	return sizes.Resolve(tok, 0)
}

func (c *Cascade) resolveVar(tok parsed.Token, sizes Sizes) (ComputedValue, bool) {
	if toks, ok := c.Sheet.Vars[tok.VarName]; ok && len(toks) > 0 {
		v, err := sizes.Resolve(toks[0], 0)
		if err == nil {
			return v, true
		}
	}
	if len(tok.VarFallback) > 0 {
		v, err := sizes.Resolve(tok.VarFallback[0], 0)
		if err == nil {
			return v, true
		}
	}
	return ComputedValue{}, false
}
