package interact

import (
	"github.com/kiln-ui/kiln/pkg/binder"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// scrollPxPerUnit is the fixed wheel step (spec.md §4.6: "50 px per unit of
// delta").
const scrollPxPerUnit = 50.0

// Resolver runs the per-frame interaction pass over a laid-out tree: hit
// testing, pseudo-class computation, focus transfer, click detection,
// scrolling, and the input/select behavior variants, assembling the Call
// list a frame's update returns. A Resolver is reused across frames so
// focus and per-element text/caret state persist.
type Resolver struct {
	pipes *binder.PipeRegistry

	focus    tree.ID
	hasFocus bool
	// active holds the element that was hit with the left button down on a
	// previous frame, so a later button-up on the same element fires a
	// click (spec.md §4.6: "if the element was previously active").
	active    tree.ID
	hasActive bool

	// prevFocus is the previous frame's focused element, compared against
	// the current frame's to detect loss of focus on a text input
	// (spec.md §4.6: "loss of focus fires onchange then onblur").
	prevFocus    tree.ID
	hasPrevFocus bool

	inputs map[tree.ID]*TextInputState
	carets map[tree.ID]*Caret
}

// NewResolver returns a Resolver with no element focused or active.
func NewResolver(pipes *binder.PipeRegistry) *Resolver {
	return &Resolver{
		pipes:  pipes,
		inputs: map[tree.ID]*TextInputState{},
		carets: map[tree.ID]*Caret{},
	}
}

// Focus returns the currently focused element id, if any.
func (r *Resolver) Focus() (tree.ID, bool) { return r.focus, r.hasFocus }

// SetFocus forces the focused element id without waiting for a left-button
// press, used by a view's hot-reload path to carry focus across a reparse
// when the same id still exists in the rebuilt tree (SPEC_FULL.md §5).
func (r *Resolver) SetFocus(id tree.ID) {
	r.focus = id
	r.hasFocus = true
}

// Resolve runs one frame's interaction pass over tr against model (the
// decoded JSON model value handler ArgPaths resolve through) and in (the
// frame's pointer/keyboard input), returning the Calls to append to the
// frame's output in tree-traversal order.
func (r *Resolver) Resolve(tr *tree.Tree, model any, in Input) ([]Call, error) {
	var calls []Call

	leftDown := in.MouseButtonsDown[MouseLeft]
	leftUp := in.MouseButtonsUp[MouseLeft]

	var hitID tree.ID
	hasHit := false

	err := tr.Walk(func(el *tree.Element) error {
		hit := r.hitTest(tr, el, in.MousePosition)

		el.State.Hover = hit
		el.State.Active = hit && leftDown
		el.State.Focus = r.hasFocus && el.ID == r.focus

		if hit {
			hitID = el.ID
			hasHit = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if leftDown && hasHit {
		r.focus = hitID
		r.hasFocus = true
	}

	if hasHit && leftUp && r.hasActive && r.active == hitID {
		if el, err := tr.Get(hitID); err == nil {
			if el.Tag == "option" {
				call, fired, err := toggleOption(tr, el)
				if err != nil {
					return nil, err
				}
				if fired {
					calls = append(calls, call)
				}
			}
			if h, ok := el.Handlers["click"]; ok {
				call, err := r.invoke(model, h)
				if err != nil {
					return nil, err
				}
				calls = append(calls, call)
			}
		}
	}

	r.hasActive = false
	if hasHit && leftDown {
		r.active = hitID
		r.hasActive = true
	}

	if in.WheelDelta != 0 && hasHit {
		if err := r.scroll(tr, hitID, in.WheelDelta); err != nil {
			return nil, err
		}
	}

	focusCalls, err := r.resolveFocusedBehavior(tr, in)
	if err != nil {
		return nil, err
	}
	calls = append(calls, focusCalls...)

	r.prevFocus, r.hasPrevFocus = r.focus, r.hasFocus

	return calls, nil
}

// resolveFocusedBehavior runs the text-input key handling for the currently
// focused input, and fires the blur sequence for an input that just lost
// focus, per original_source/src/controls/input.rs's handle_input_char/
// handle_input_key_up/handle_input_blur.
func (r *Resolver) resolveFocusedBehavior(tr *tree.Tree, in Input) ([]Call, error) {
	var calls []Call

	if r.hasPrevFocus && (!r.hasFocus || r.prevFocus != r.focus) {
		if el, err := tr.Get(r.prevFocus); err == nil && el.State.Behavior.Kind == tree.BehaviorInput {
			calls = append(calls, r.blurInput(el)...)
		}
	}

	if !r.hasFocus {
		return calls, nil
	}
	el, err := tr.Get(r.focus)
	if err != nil || el.State.Behavior.Kind != tree.BehaviorInput {
		return calls, nil
	}

	state, ok := r.inputs[el.ID]
	if !ok {
		state = NewTextInputState(el.State.Behavior.Value)
		r.inputs[el.ID] = state
	}
	caret, ok := r.carets[el.ID]
	if !ok {
		caret = NewCaret()
		r.carets[el.ID] = caret
	}

	chars := filterInputChars(in.Characters)
	frameIn := in
	frameIn.Characters = chars

	if len(chars) > 0 || in.KeysPressed[KeyBackspace] {
		value, changed := state.Apply(frameIn)
		if changed {
			caret.Reset()
			el.State.Behavior.Value = value
			el.Attrs["value"] = value
			if valueEl, err := tr.ChildAt(el.ID, 0); err == nil && len(valueEl.Spans) > 0 {
				valueEl.Spans[0].Text = value
			}
			if h, ok := el.Handlers["input"]; ok {
				calls = append(calls, Call{Function: h.Function, Arguments: []any{value}})
			}
		}
	}

	if in.KeysPressed[KeyEnter] {
		if h, ok := el.Handlers["change"]; ok {
			calls = append(calls, Call{Function: h.Function, Arguments: []any{state.Value()}})
		}
	}

	return calls, nil
}

// blurInput fires the onchange-then-onblur sequence for an input losing
// focus, and drops its per-element state (a freshly unfocused input starts
// clean if it is refocused later, matching a fresh textinput.Model seeded
// from the attribute value rather than resuming an old one).
func (r *Resolver) blurInput(el *tree.Element) []Call {
	var calls []Call
	value := el.State.Behavior.Value
	if state, ok := r.inputs[el.ID]; ok {
		value = state.Value()
	}
	if h, ok := el.Handlers["change"]; ok {
		calls = append(calls, Call{Function: h.Function, Arguments: []any{value}})
	}
	if h, ok := el.Handlers["blur"]; ok {
		calls = append(calls, Call{Function: h.Function})
	}
	delete(r.inputs, el.ID)
	delete(r.carets, el.ID)
	return calls
}

// filterInputChars drops control characters and \r from a frame's typed
// characters (spec.md §4.6: "ignoring control chars and \r").
func filterInputChars(chars []rune) []rune {
	out := make([]rune, 0, len(chars))
	for _, c := range chars {
		if c == '\r' || c < 0x20 || c == 0x7f {
			continue
		}
		out = append(out, c)
	}
	return out
}

// hitTest reports whether pos lands inside el's laid-out rectangle, el
// accepts pointer events, and pos is not clipped away by el's own clip rect
// (spec.md §4.6).
func (r *Resolver) hitTest(tr *tree.Tree, el *tree.Element, pos [2]float64) bool {
	if el.PointerEvents == tree.PointerEventsNone {
		return false
	}
	if !rectContains(el.Position, pos) {
		return false
	}
	if el.Clip != nil && !clipContains(*el.Clip, pos) {
		return false
	}
	return true
}

func rectContains(r tree.Rect, pos [2]float64) bool {
	return pos[0] >= r.X && pos[0] <= r.X+r.Width &&
		pos[1] >= r.Y && pos[1] <= r.Y+r.Height
}

func clipContains(c tree.ClipRect, pos [2]float64) bool {
	return pos[0] >= c.X && pos[0] <= c.X+c.Width &&
		pos[1] >= c.Y && pos[1] <= c.Y+c.Height
}

// scroll walks up from hitID to find the nearest ancestor carrying scroll
// overflow and advances its offset by the wheel delta, clamped to
// [0, scroll_max] (spec.md §4.6).
func (r *Resolver) scroll(tr *tree.Tree, hitID tree.ID, delta float64) error {
	id := hitID
	for {
		el, err := tr.Get(id)
		if err != nil {
			return nil
		}
		if el.Scroll != nil {
			s := el.Scroll
			s.OffsetY = clamp(s.OffsetY+delta*scrollPxPerUnit, 0, s.MaxOffsetY)
			return nil
		}
		parent, err := tr.Parent(id)
		if err != nil {
			return nil // reached the root without a scrollable ancestor
		}
		id = parent
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// invoke resolves h's argument path through model, applies its pipe chain,
// and assembles the outbound Call (spec.md §4.6). A handler declared with no
// argument expression ("fn()") fires with no arguments.
func (r *Resolver) invoke(model any, h tree.Handler) (Call, error) {
	if h.ArgPath == "" {
		return Call{Function: h.Function}, nil
	}
	arg, _ := binder.ResolvePath(model, h.ArgPath)
	arg, err := r.pipes.Apply(arg, h.PipeChain)
	if err != nil {
		return Call{}, err
	}
	return Call{Function: h.Function, Arguments: []any{arg}}, nil
}
