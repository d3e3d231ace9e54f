package interact

import (
	"testing"

	"github.com/kiln-ui/kiln/pkg/binder"
	"github.com/kiln-ui/kiln/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idAt(line int) tree.ID {
	return tree.Child(tree.Position{Line: line}, 0)
}

func newButton(line int, rect tree.Rect) *tree.Element {
	el := tree.NewElement(idAt(line), "button")
	el.Position = rect
	return el
}

func newResolver() *Resolver {
	return NewResolver(binder.NewPipeRegistry())
}

func TestHitTestRespectsPointerEventsNone(t *testing.T) {
	el := newButton(1, tree.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	el.PointerEvents = tree.PointerEventsNone
	r := newResolver()
	assert.False(t, r.hitTest(nil, el, [2]float64{5, 5}))
}

func TestHitTestRespectsClip(t *testing.T) {
	el := newButton(1, tree.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	el.Clip = &tree.ClipRect{X: 0, Y: 0, Width: 10, Height: 10}
	r := newResolver()
	assert.False(t, r.hitTest(nil, el, [2]float64{50, 50}))
	assert.True(t, r.hitTest(nil, el, [2]float64{5, 5}))
}

func TestClickFiresOnlyAfterPressThenRelease(t *testing.T) {
	tr := tree.New()
	btn := newButton(1, tree.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	btn.Handlers["click"] = tree.Handler{Function: "save", ArgPath: "value"}
	tr.Insert(btn)

	r := newResolver()
	model := map[string]any{"value": "ok"}

	calls, err := r.Resolve(tr, model, Input{
		MousePosition:    [2]float64{5, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)
	assert.Empty(t, calls, "button down alone must not fire a click")
	assert.True(t, btn.State.Active)

	calls, err = r.Resolve(tr, model, Input{
		MousePosition:  [2]float64{5, 5},
		MouseButtonsUp: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, Call{Function: "save", Arguments: []any{"ok"}}, calls[0])
}

func TestClickDoesNotFireIfReleasedOffElement(t *testing.T) {
	tr := tree.New()
	btn := newButton(1, tree.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	btn.Handlers["click"] = tree.Handler{Function: "save"}
	tr.Insert(btn)

	r := newResolver()
	_, err := r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{5, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)

	calls, err := r.Resolve(tr, nil, Input{
		MousePosition:  [2]float64{500, 500},
		MouseButtonsUp: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestPressSetsFocusClearingPrevious(t *testing.T) {
	tr := tree.New()
	a := newButton(1, tree.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	b := newButton(2, tree.Rect{X: 20, Y: 0, Width: 10, Height: 10})
	tr.Insert(a)
	tr.Insert(b)

	r := newResolver()
	_, err := r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{5, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)
	assert.True(t, a.State.Focus)
	assert.False(t, b.State.Focus)

	_, err = r.Resolve(tr, nil, Input{
		MousePosition:    [2]float64{25, 5},
		MouseButtonsDown: map[MouseButton]bool{MouseLeft: true},
	})
	require.NoError(t, err)
	assert.False(t, a.State.Focus)
	assert.True(t, b.State.Focus)
}

func TestScrollClampsToMaxOffset(t *testing.T) {
	tr := tree.New()
	box := newButton(1, tree.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	box.Scroll = &tree.ScrollState{MaxOffsetY: 60}
	tr.Insert(box)

	r := newResolver()
	_, err := r.Resolve(tr, nil, Input{MousePosition: [2]float64{5, 5}, WheelDelta: 1})
	require.NoError(t, err)
	assert.Equal(t, 50.0, box.Scroll.OffsetY)

	_, err = r.Resolve(tr, nil, Input{MousePosition: [2]float64{5, 5}, WheelDelta: 1})
	require.NoError(t, err)
	assert.Equal(t, 60.0, box.Scroll.OffsetY, "clamped at scroll_max")

	_, err = r.Resolve(tr, nil, Input{MousePosition: [2]float64{5, 5}, WheelDelta: -100})
	require.NoError(t, err)
	assert.Equal(t, 0.0, box.Scroll.OffsetY, "clamped at 0")
}

func TestScrollWalksUpToNearestScrollableAncestor(t *testing.T) {
	tr := tree.New()
	outer := newButton(1, tree.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	outer.Scroll = &tree.ScrollState{MaxOffsetY: 100}
	tr.Insert(outer)

	inner := newButton(2, tree.Rect{X: 10, Y: 10, Width: 10, Height: 10})
	tr.Insert(inner)
	outer.Children = []tree.ID{inner.ID}
	tr.Link(outer.ID, outer.Children)

	r := newResolver()
	_, err := r.Resolve(tr, nil, Input{MousePosition: [2]float64{15, 15}, WheelDelta: 1})
	require.NoError(t, err)
	assert.Equal(t, 50.0, outer.Scroll.OffsetY)
}

func TestInvokeWithEmptyArgPathFiresNoArguments(t *testing.T) {
	r := newResolver()
	call, err := r.invoke(nil, tree.Handler{Function: "refresh"})
	require.NoError(t, err)
	assert.Equal(t, Call{Function: "refresh"}, call)
}

func TestInvokeAppliesPipeChain(t *testing.T) {
	r := newResolver()
	model := map[string]any{"name": "ada"}
	call, err := r.invoke(model, tree.Handler{Function: "save", ArgPath: "name", PipeChain: []string{"upper"}})
	require.NoError(t, err)
	assert.Equal(t, Call{Function: "save", Arguments: []any{"ADA"}}, call)
}
