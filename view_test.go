package kiln

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ui/kiln/pkg/interact"
	"github.com/kiln-ui/kiln/pkg/layout"
	"github.com/kiln-ui/kiln/pkg/parsed"
)

func textNode(pos parsed.Position, chunks ...parsed.TextChunk) *parsed.Node {
	return &parsed.Node{Kind: parsed.KindText, Pos: pos, Text: chunks}
}

func greetingTemplate() *parsed.Node {
	return &parsed.Node{
		Kind: parsed.KindElement,
		Tag:  "p",
		Pos:  parsed.Position{Line: 1, Col: 1},
		Children: []*parsed.Node{
			textNode(parsed.Position{Line: 1, Col: 4},
				parsed.TextChunk{Literal: "Hello, "},
				parsed.TextChunk{Expression: "name"},
				parsed.TextChunk{Literal: "!"},
			),
		},
	}
}

func toggleTemplate() *parsed.Node {
	return &parsed.Node{
		Kind: parsed.KindElement,
		Tag:  "div",
		Pos:  parsed.Position{Line: 1, Col: 1},
		Dirs: parsed.Directives{Visible: "shown"},
	}
}

func emptySheet() parsed.StyleSheet { return parsed.StyleSheet{} }

func blankInput(vp layout.Viewport) Input {
	return Input{
		Viewport: vp,
		Input: interact.Input{
			MouseButtonsDown: map[interact.MouseButton]bool{},
			MouseButtonsUp:   map[interact.MouseButton]bool{},
			KeysDown:         map[interact.Key]bool{},
			KeysUp:           map[interact.Key]bool{},
			KeysPressed:      map[interact.Key]bool{},
		},
	}
}

func TestNewViewRejectsMalformedTemplate(t *testing.T) {
	root := &parsed.Node{
		Kind: parsed.KindElement,
		Tag:  "div",
		Pos:  parsed.Position{Line: 1, Col: 1},
		Dirs: parsed.Directives{Visible: "shown", Hidden: "hidden"},
	}
	_, err := NewView(root, emptySheet())
	assert.Error(t, err)
}

func TestUpdateBindsTextAndLaysOutRoot(t *testing.T) {
	v, err := NewView(greetingTemplate(), emptySheet())
	require.NoError(t, err)

	in := blankInput(layout.Viewport{Width: 200, Height: 50})
	in.Value = map[string]any{"name": "Ada"}

	out := v.Update(in)
	require.Len(t, out.Elements, 1)
	assert.Equal(t, "Hello, Ada!", out.Elements[0].Text())
	assert.Equal(t, 200.0, out.Elements[0].Position.Width)
}

func TestUpdateOmitsInvisibleElementFromOutput(t *testing.T) {
	v, err := NewView(toggleTemplate(), emptySheet())
	require.NoError(t, err)

	vp := layout.Viewport{Width: 100, Height: 50}

	hidden := blankInput(vp)
	hidden.Value = map[string]any{"shown": false}
	out := v.Update(hidden)
	assert.Empty(t, out.Elements)

	shown := blankInput(vp)
	shown.Value = map[string]any{"shown": true}
	out = v.Update(shown)
	require.Len(t, out.Elements, 1)
}

func TestUpdateRebindsAcrossFrames(t *testing.T) {
	v, err := NewView(greetingTemplate(), emptySheet())
	require.NoError(t, err)
	vp := layout.Viewport{Width: 200, Height: 50}

	first := blankInput(vp)
	first.Value = map[string]any{"name": "Ada"}
	out := v.Update(first)
	require.Len(t, out.Elements, 1)
	assert.Equal(t, "Hello, Ada!", out.Elements[0].Text())

	second := blankInput(vp)
	second.Value = map[string]any{"name": "Grace"}
	out = v.Update(second)
	require.Len(t, out.Elements, 1)
	assert.Equal(t, "Hello, Grace!", out.Elements[0].Text())
}

func TestUpdateFiresClickHandler(t *testing.T) {
	root := &parsed.Node{
		Kind: parsed.KindElement,
		Tag:  "button",
		Pos:  parsed.Position{Line: 1, Col: 1},
		Dirs: parsed.Directives{Events: map[string]string{"click": "save()"}},
	}
	v, err := NewView(root, emptySheet())
	require.NoError(t, err)
	vp := layout.Viewport{Width: 100, Height: 50}

	down := blankInput(vp)
	down.Value = map[string]any{}
	down.MousePosition = [2]float64{1, 1}
	down.MouseButtonsDown[interact.MouseLeft] = true
	v.Update(down)

	up := blankInput(vp)
	up.Value = map[string]any{}
	up.MousePosition = [2]float64{1, 1}
	up.MouseButtonsUp[interact.MouseLeft] = true
	out := v.Update(up)

	require.Len(t, out.Calls, 1)
	assert.Equal(t, "save", out.Calls[0].Function)
}

func TestHotReloadPicksUpSourceChange(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "view.html")
	stylePath := filepath.Join(dir, "view.css")
	require.NoError(t, os.WriteFile(templatePath, []byte("v1"), 0o644))
	require.NoError(t, os.WriteFile(stylePath, []byte("v1"), 0o644))

	loadCount := 0
	loader := func() (*parsed.Node, parsed.StyleSheet, error) {
		loadCount++
		return greetingTemplate(), emptySheet(), nil
	}

	v, err := NewView(greetingTemplate(), emptySheet(), WithSourcePaths(templatePath, stylePath, loader))
	require.NoError(t, err)

	vp := layout.Viewport{Width: 200, Height: 50}
	in := blankInput(vp)
	in.Value = map[string]any{"name": "Ada"}
	v.Update(in)
	assert.Equal(t, 0, loadCount)

	future := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(templatePath, future, future))

	in2 := blankInput(vp)
	in2.Value = map[string]any{"name": "Ada"}
	out := v.Update(in2)
	assert.Equal(t, 1, loadCount)
	require.Len(t, out.Elements, 1)
}

func TestUpdateToleratesZeroViewport(t *testing.T) {
	root := &parsed.Node{Kind: parsed.KindElement, Tag: "div", Pos: parsed.Position{Line: 1, Col: 1}}
	v, err := NewView(root, emptySheet())
	require.NoError(t, err)

	// tr.Root is left intact so this is really exercising a healthy path;
	// the only way to provoke a layout.Run failure without reaching into
	// unexported state is a zero viewport, which is legal and simply
	// falls back to natural size rather than failing. Assert the happy
	// path instead: Update never panics on a degenerate empty viewport.
	out := v.Update(blankInput(layout.Viewport{}))
	assert.NotNil(t, out)
}
