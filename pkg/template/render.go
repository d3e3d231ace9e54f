package template

import (
	"strconv"
	"strings"

	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// Options configures a Render pass.
type Options struct {
	// DefaultRepeatMax is the repeat ceiling used when a *item directive
	// omits count="N" (spec.md §4.1).
	DefaultRepeatMax int
}

// DefaultOptions returns the engine defaults: a repeat ceiling of 64.
func DefaultOptions() Options {
	return Options{DefaultRepeatMax: 64}
}

// Render expands root into a node tree of empty-styled Elements plus the
// Bindings table discovered along the way (spec.md §4.1). The returned
// Tree has no presentation or layout applied yet — that is the cascade and
// layout driver's job.
func Render(root *parsed.Node, opts Options) (*tree.Tree, *Bindings, error) {
	r := &renderer{
		schema:   NewSchema(),
		bindings: NewBindings(),
		tr:       tree.New(),
		opts:     opts,
	}
	id, err := r.renderElement(root, 0)
	if err != nil {
		return nil, nil, err
	}
	if r.schema.Depth() != 0 {
		return nil, nil, &DirectiveError{Line: root.Pos.Line, Col: root.Pos.Col, Err: ErrAliasUnbalanced}
	}
	r.tr.Root = id
	return r.tr, r.bindings, nil
}

type renderer struct {
	schema   *Schema
	bindings *Bindings
	tr       *tree.Tree
	opts     Options
}

// renderElement renders a single KindElement node (after any repeat
// expansion has already turned it into zero or more clones) and inserts it
// into the tree under parent. salt disambiguates clones sharing a Pos.
func (r *renderer) renderElement(n *parsed.Node, salt uint64) (tree.ID, error) {
	id := tree.Child(tree.Position{Line: n.Pos.Line, Col: n.Pos.Col}, salt)
	el := tree.NewElement(id, n.Tag)
	el.InlineStyle = n.InlineStyle

	aliasPushed := n.Dirs.Alias != nil
	for name, expr := range n.Dirs.Alias {
		r.schema.PushAlias(name, r.schema.Resolve(expr))
	}

	if err := r.applyDirectives(n, el); err != nil {
		return tree.ID{}, err
	}
	if err := r.applyAttrs(n, el); err != nil {
		return tree.ID{}, err
	}
	applyBehavior(n, el)

	r.tr.Insert(el) // parent linkage for children fixed up below

	if err := r.renderChildren(n, el); err != nil {
		return tree.ID{}, err
	}

	if parsed.IsVoid(n.Tag) {
		if err := r.populateVoidChildren(n, el); err != nil {
			return tree.ID{}, err
		}
	}

	if aliasPushed {
		for range n.Dirs.Alias {
			r.schema.PopAlias()
		}
	}
	return id, nil
}

// applyBehavior tags el with the interactive variant its tag implies
// (spec.md §4.6), so pkg/interact knows which input/select semantics to
// run without re-inspecting the tag name every frame. input's initial
// value comes straight from its "value" attribute; select's aggregate
// value/values are recomputed by the interaction resolver from its option
// children's "selected" attribute, since those children don't exist yet
// at this point in rendering.
func applyBehavior(n *parsed.Node, el *tree.Element) {
	switch n.Tag {
	case "input":
		el.State.Behavior = tree.BehaviorState{Kind: tree.BehaviorInput, Value: el.Attrs["value"]}
	case "select":
		kind := tree.BehaviorSelect
		for _, a := range n.Attrs {
			if a.Name == "multiple" {
				kind = tree.BehaviorMultiSelect
				break
			}
		}
		el.State.Behavior = tree.BehaviorState{Kind: kind}
	}
}

// applyDirectives registers the Visibility and Repeat bindings a node
// carries on itself (repeat is handled by the caller expanding clones, but
// the *containing* parent's repeat binding is registered once here via
// renderChildren).
func (r *renderer) applyDirectives(n *parsed.Node, el *tree.Element) error {
	switch {
	case n.Dirs.Visible != "" && n.Dirs.Hidden != "":
		return &DirectiveError{Line: n.Pos.Line, Col: n.Pos.Col, Err: ErrConflictingShow}
	case n.Dirs.Visible != "":
		path := r.schema.Resolve(n.Dirs.Visible)
		r.bindings.Add(path, Binding{Kind: BindVisibility, Node: el.ID, Expected: true})
	case n.Dirs.Hidden != "":
		path := r.schema.Resolve(n.Dirs.Hidden)
		r.bindings.Add(path, Binding{Kind: BindVisibility, Node: el.ID, Expected: false})
	}
	return nil
}

func (r *renderer) applyAttrs(n *parsed.Node, el *tree.Element) error {
	for _, a := range n.Attrs {
		if a.Value.Expression != "" {
			el.Attrs[a.Name] = "{" + a.Value.Expression + "}"
			path := r.schema.Resolve(a.Value.Expression)
			r.bindings.Add(path, Binding{Kind: BindAttribute, Node: el.ID, Attr: a.Name})
			continue
		}
		el.Attrs[a.Name] = a.Value.Literal
	}
	for event, raw := range n.Dirs.Events {
		fn, argExpr, pipes := parseEventExpr(raw)
		el.Handlers[event] = tree.Handler{
			Function:  fn,
			ArgPath:   r.schema.Resolve(argExpr),
			PipeChain: pipes,
		}
	}
	return nil
}

// renderChildren renders n's parsed children into el.Children, expanding
// any single child that carries a *repeat directive into N clones and
// registering its Repeat binding, and folding consecutive text children
// into el.Spans rather than separate child elements (spec.md: "<p>Hello,
// {name}!</p>" is one element with text, not a parent plus a text child).
func (r *renderer) renderChildren(n *parsed.Node, el *tree.Element) error {
	if parsed.IsVoid(n.Tag) {
		return nil // void tags never receive HTML children (spec.md §6)
	}
	for _, child := range n.Children {
		switch child.Kind {
		case parsed.KindText:
			r.appendSpans(child, el)
		case parsed.KindElement:
			if child.Dirs.RepeatList != "" {
				if err := r.renderRepeat(child, el); err != nil {
					return err
				}
				continue
			}
			childID, err := r.renderElement(child, 0)
			if err != nil {
				return err
			}
			el.Children = append(el.Children, childID)
		}
	}
	r.tr.Link(el.ID, el.Children)
	return nil
}

func (r *renderer) appendSpans(n *parsed.Node, el *tree.Element) {
	for _, chunk := range n.Text {
		if chunk.Expression == "" {
			el.Spans = append(el.Spans, tree.Span{Text: chunk.Literal})
			continue
		}
		idx := len(el.Spans)
		el.Spans = append(el.Spans, tree.Span{IsPlaceholder: true})
		path := r.schema.Resolve(chunk.Expression)
		r.bindings.Add(path, Binding{Kind: BindText, Node: el.ID, SpanIndex: idx})
	}
}

// renderRepeat clones child N times (N = its count directive, or
// opts.DefaultRepeatMax if omitted), each clone rendered with its alias
// bound to list[i] and its own *repeat directive stripped, and registers a
// single Repeat binding for the group at the bound list's canonical path.
func (r *renderer) renderRepeat(child *parsed.Node, parent *tree.Element) error {
	if child.Dirs.RepeatList == "" {
		return &DirectiveError{Line: child.Pos.Line, Col: child.Pos.Col, Err: ErrRepeatNoList}
	}
	n := child.Dirs.RepeatCount
	if n <= 0 {
		n = r.opts.DefaultRepeatMax
	}
	listPath := r.schema.Resolve(child.Dirs.RepeatList)
	start := len(parent.Children)

	template := *child
	template.Dirs.RepeatList = ""
	template.Dirs.RepeatAlias = ""
	template.Dirs.RepeatCount = 0

	for i := 0; i < n; i++ {
		itemPath := listPath + "[" + strconv.Itoa(i) + "]"
		if child.Dirs.RepeatAlias != "" {
			r.schema.PushAlias(child.Dirs.RepeatAlias, itemPath)
		}
		cloneID, err := r.renderElement(&template, uint64(i)+1)
		if child.Dirs.RepeatAlias != "" {
			r.schema.PopAlias()
		}
		if err != nil {
			return err
		}
		parent.Children = append(parent.Children, cloneID)
	}
	r.bindings.Add(listPath, Binding{Kind: BindRepeat, Node: parent.ID, Start: start, Size: n})
	return nil
}

// populateVoidChildren pre-populates the structural children spec.md §4.1
// names for img and input. input's children are [value, caret] at indices
// 0 and 1 respectively, matching the convention the interaction resolver
// (pkg/interact) relies on.
func (r *renderer) populateVoidChildren(n *parsed.Node, el *tree.Element) error {
	switch n.Tag {
	case "img":
		bg := tree.NewElement(tree.Child(posOf(n), 1), "__background")
		r.tr.Insert(bg)
		el.Children = append(el.Children, bg.ID)
	case "input":
		value := el.Attrs["value"]
		valueEl := tree.NewElement(tree.Child(posOf(n), 1), "__value")
		valueEl.Spans = []tree.Span{{Text: value}}
		r.tr.Insert(valueEl)

		caretEl := tree.NewElement(tree.Child(posOf(n), 2), "__caret")
		caretEl.Spans = []tree.Span{{Text: "|"}}
		r.tr.Insert(caretEl)

		el.Children = append(el.Children, valueEl.ID, caretEl.ID)
	}
	r.tr.Link(el.ID, el.Children)
	return nil
}

func posOf(n *parsed.Node) tree.Position {
	return tree.Position{Line: n.Pos.Line, Col: n.Pos.Col}
}

// parseEventExpr splits "fn(argExpr|pipe1|pipe2)" into its function name,
// argument path expression, and pipe chain (spec.md §4.6).
func parseEventExpr(raw string) (fn, argExpr string, pipes []string) {
	open := strings.IndexByte(raw, '(')
	close := strings.LastIndexByte(raw, ')')
	if open < 0 || close < open {
		return raw, "", nil
	}
	fn = raw[:open]
	inner := raw[open+1 : close]
	parts := strings.Split(inner, "|")
	argExpr = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		pipes = append(pipes, strings.TrimSpace(p))
	}
	return fn, argExpr, pipes
}
