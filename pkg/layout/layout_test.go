package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ui/kiln/pkg/tree"
)

func buildRow(n int) (*tree.Tree, []tree.ID) {
	tr := tree.New()
	root := tree.NewElement(tree.ID{Pos: tree.Position{Line: 1, Col: 1}}, "div")
	var ids []tree.ID
	for i := 0; i < n; i++ {
		child := tree.NewElement(tree.ID{Pos: tree.Position{Line: 1, Col: i + 2}}, "span")
		child.Spans = []tree.Span{{Text: "x"}}
		root.Children = append(root.Children, child.ID)
		ids = append(ids, child.ID)
		tr.Insert(child)
	}
	tr.Insert(root)
	tr.Link(root.ID, root.Children)
	return tr, ids
}

func TestRunFlexRowDistributesGrow(t *testing.T) {
	tr, ids := buildRow(2)
	styles := map[tree.ID]Style{
		tr.Root: {Display: DisplayFlex, FlexDirection: FlexRow},
		ids[0]:  {FlexGrow: 1, FlexBasis: Auto(), Size: Size{Width: Px(10), Height: Px(10)}},
		ids[1]:  {FlexGrow: 1, FlexBasis: Auto(), Size: Size{Width: Px(10), Height: Px(10)}},
	}
	require.NoError(t, Run(tr, styles, FallbackFonts{}, Viewport{Width: 100, Height: 20}))

	a, err := tr.Get(ids[0])
	require.NoError(t, err)
	b, err := tr.Get(ids[1])
	require.NoError(t, err)

	assert.InDelta(t, 0, a.Position.X, 0.001)
	assert.InDelta(t, a.Position.X+a.Position.Width, b.Position.X, 0.001)
	assert.InDelta(t, 100, a.Position.Width+b.Position.Width, 0.001)
}

func TestRunBlockStacksChildrenVertically(t *testing.T) {
	tr, ids := buildRow(2)
	styles := map[tree.ID]Style{
		ids[0]: {Size: Size{Width: Px(20), Height: Px(10)}},
		ids[1]: {Size: Size{Width: Px(20), Height: Px(15)}},
	}
	require.NoError(t, Run(tr, styles, FallbackFonts{}, Viewport{Width: 50, Height: 100}))

	a, err := tr.Get(ids[0])
	require.NoError(t, err)
	b, err := tr.Get(ids[1])
	require.NoError(t, err)

	assert.InDelta(t, 0, a.Position.Y, 0.001)
	assert.InDelta(t, 10, b.Position.Y, 0.001)
}

func TestRunGridPlacesChildrenInTracks(t *testing.T) {
	tr, ids := buildRow(4)
	styles := map[tree.ID]Style{
		tr.Root: {
			Display:             DisplayGrid,
			GridTemplateColumns: []TrackSize{{Kind: DimFr, Value: 1}, {Kind: DimFr, Value: 1}},
		},
	}
	require.NoError(t, Run(tr, styles, FallbackFonts{}, Viewport{Width: 100, Height: 100}))

	first, err := tr.Get(ids[0])
	require.NoError(t, err)
	second, err := tr.Get(ids[1])
	require.NoError(t, err)
	third, err := tr.Get(ids[2])
	require.NoError(t, err)

	assert.InDelta(t, 0, first.Position.X, 0.001)
	assert.InDelta(t, 50, second.Position.X, 0.001)
	assert.InDelta(t, first.Position.Y, second.Position.Y, 0.001)
	assert.Greater(t, third.Position.Y, first.Position.Y)
}

func TestFallbackFontsWrapsAtMaxWidth(t *testing.T) {
	f := FallbackFonts{}
	w, h := f.Measure("hello world", tree.Font{Size: 10}, 20, true)
	assert.Equal(t, 20.0, w)
	assert.Greater(t, h, 10.0)
}

func TestFinishAppliesTranslateAndClip(t *testing.T) {
	tr, ids := buildRow(1)
	styles := map[tree.ID]Style{
		tr.Root: {OverflowX: OverflowScroll, OverflowY: OverflowScroll},
		ids[0]:  {Size: Size{Width: Px(200), Height: Px(10)}},
	}
	require.NoError(t, Run(tr, styles, FallbackFonts{}, Viewport{Width: 50, Height: 50}))

	root, err := tr.Get(tr.Root)
	require.NoError(t, err)
	root.Transforms = []tree.TransformFunc{{Name: "translate", X: 5, Y: 3}}

	require.NoError(t, Finish(tr, styles))

	root, err = tr.Get(tr.Root)
	require.NoError(t, err)
	assert.InDelta(t, 5, root.Position.X, 0.001)
	require.NotNil(t, root.Scroll)
	assert.Greater(t, root.Scroll.MaxOffsetX, 0.0)
	require.NotNil(t, root.Clip)
}
