package interact

import (
	"testing"

	"github.com/kiln-ui/kiln/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newInputElement builds an <input> element with its value/caret structural
// children pre-populated, matching pkg/template/render.go's
// populateVoidChildren convention (value child at index 0, caret at 1).
func newInputElement(line int, value string) (*tree.Element, *tree.Tree) {
	tr := tree.New()
	el := tree.NewElement(idAt(line), "input")
	el.Position = tree.Rect{X: 0, Y: 0, Width: 50, Height: 10}
	el.State.Behavior = tree.BehaviorState{Kind: tree.BehaviorInput, Value: value}
	el.Attrs["value"] = value

	valueEl := tree.NewElement(tree.Child(tree.Position{Line: line}, 1), "__value")
	valueEl.Spans = []tree.Span{{Text: value}}
	caretEl := tree.NewElement(tree.Child(tree.Position{Line: line}, 2), "__caret")

	tr.Insert(el)
	tr.Insert(valueEl)
	tr.Insert(caretEl)
	el.Children = []tree.ID{valueEl.ID, caretEl.ID}
	tr.Link(el.ID, el.Children)

	return el, tr
}

func TestTypingAppendsAndFiresOninput(t *testing.T) {
	el, tr := newInputElement(1, "he")
	el.Handlers["input"] = tree.Handler{Function: "oninput"}

	r := newResolver()
	// Focus the input first.
	_, err := r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{5, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)
	_, err = r.Resolve(tr, nil, Input{MouseButtonsUp: map[MouseButton]bool{MouseLeft: true}})
	require.NoError(t, err)

	calls, err := r.Resolve(tr, nil, Input{Characters: []rune{'l'}})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, Call{Function: "oninput", Arguments: []any{"hel"}}, calls[0])
	assert.Equal(t, "hel", el.Attrs["value"])

	valueEl, err := tr.ChildAt(el.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "hel", valueEl.Spans[0].Text)
}

func TestBackspacePopsLastChar(t *testing.T) {
	el, tr := newInputElement(1, "abc")
	r := newResolver()
	_, _ = r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{5, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	_, _ = r.Resolve(tr, nil, Input{MouseButtonsUp: map[MouseButton]bool{MouseLeft: true}})

	calls, err := r.Resolve(tr, nil, Input{KeysPressed: map[Key]bool{KeyBackspace: true}})
	require.NoError(t, err)
	_ = calls
	assert.Equal(t, "ab", el.Attrs["value"])
}

func TestEnterFiresOnchangeWithCurrentValue(t *testing.T) {
	el, tr := newInputElement(1, "abc")
	el.Handlers["change"] = tree.Handler{Function: "onchange"}
	r := newResolver()
	_, _ = r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{5, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	_, _ = r.Resolve(tr, nil, Input{MouseButtonsUp: map[MouseButton]bool{MouseLeft: true}})

	calls, err := r.Resolve(tr, nil, Input{KeysPressed: map[Key]bool{KeyEnter: true}})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, Call{Function: "onchange", Arguments: []any{"abc"}}, calls[0])
}

func TestLossOfFocusFiresOnchangeThenOnblur(t *testing.T) {
	el, tr := newInputElement(1, "abc")
	el.Handlers["change"] = tree.Handler{Function: "onchange"}
	el.Handlers["blur"] = tree.Handler{Function: "onblur"}

	other := newButton(2, tree.Rect{X: 100, Y: 0, Width: 10, Height: 10})
	tr.Insert(other)

	r := newResolver()
	_, _ = r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{5, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	_, _ = r.Resolve(tr, nil, Input{MouseButtonsUp: map[MouseButton]bool{MouseLeft: true}})

	calls, err := r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{105, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, Call{Function: "onchange", Arguments: []any{"abc"}}, calls[0])
	assert.Equal(t, Call{Function: "onblur"}, calls[1])
}

func TestSetValueRejectsNonInputElement(t *testing.T) {
	tr := tree.New()
	btn := newButton(1, tree.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	tr.Insert(btn)

	r := newResolver()
	err := r.SetValue(tr, btn.ID, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, tree.ErrElementInvalidBehaviour)
}

func TestFilterInputCharsDropsControlAndCarriageReturn(t *testing.T) {
	out := filterInputChars([]rune{'a', '\r', '\n', 'b', 0x7f, 'c'})
	assert.Equal(t, []rune{'a', 'b', 'c'}, out)
}
