package interact

import "github.com/kiln-ui/kiln/pkg/tree"

// requireBehavior returns tree.ErrElementInvalidBehaviour (wrapped in a
// tree.InvalidBehaviourError carrying the offending id) when el does not
// carry want, for the exported operations below that target a specific
// input/select kind rather than skip silently like the per-frame resolver
// does for a hit/focused element of the wrong kind.
func requireBehavior(el *tree.Element, want tree.Behavior) error {
	if el.State.Behavior.Kind != want {
		return &tree.InvalidBehaviourError{ID: el.ID, Have: el.State.Behavior.Kind, Expected: want}
	}
	return nil
}

// SetValue programmatically overwrites a focused or unfocused input's value
// (e.g. a host-driven attribute binding), keeping the wrapped
// TextInputState and value child span in sync. Returns
// tree.ErrElementInvalidBehaviour if id does not name an input.
func (r *Resolver) SetValue(tr *tree.Tree, id tree.ID, value string) error {
	el, err := tr.Get(id)
	if err != nil {
		return err
	}
	if err := requireBehavior(el, tree.BehaviorInput); err != nil {
		return err
	}
	el.State.Behavior.Value = value
	el.Attrs["value"] = value
	if valueEl, err := tr.ChildAt(id, 0); err == nil && len(valueEl.Spans) > 0 {
		valueEl.Spans[0].Text = value
	}
	if state, ok := r.inputs[id]; ok {
		state.SetValue(value)
	}
	return nil
}
