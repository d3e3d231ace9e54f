package interact

import "github.com/charmbracelet/bubbles/textinput"

// TextInputState wraps a bubbles/textinput.Model to drive one <input>
// element's append/backspace/cursor behavior against a synthetic
// tea.KeyMsg/tea.KeyRunes stream (keymsg.go), grounded on
// original_source/src/controls/input.rs's handle_input_char/
// handle_input_key_up/update_input_value. The wrapped model's own cursor is
// unused — kiln draws its own caret element (caret.go) per spec.md §4.1.
type TextInputState struct {
	model textinput.Model
}

// NewTextInputState seeds a wrapped textinput.Model with an element's
// current value attribute and focuses it (focus/blur in kiln is driven by
// the resolver's own focus tracking, not textinput.Model's, but the model
// must be in a focused state for it to process key messages at all).
func NewTextInputState(value string) *TextInputState {
	ti := textinput.New()
	ti.SetValue(value)
	ti.Focus()
	return &TextInputState{model: ti}
}

// Apply feeds one frame's Input through the wrapped model and returns the
// resulting value plus whether it changed.
func (t *TextInputState) Apply(in Input) (value string, changed bool) {
	before := t.model.Value()
	for _, msg := range keyMsgs(in) {
		t.model, _ = t.model.Update(msg)
	}
	after := t.model.Value()
	return after, after != before
}

// Value returns the wrapped model's current value without processing input.
func (t *TextInputState) Value() string { return t.model.Value() }

// SetValue resets the wrapped model's value, used when an external reaction
// (e.g. a model-driven attribute binding) overwrites the input while it is
// not focused.
func (t *TextInputState) SetValue(v string) { t.model.SetValue(v) }
