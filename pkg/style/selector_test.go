package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// fakeMatcher adapts a *tree.Tree to the Matcher interface with a fixed
// pseudo-class table keyed by node id.
type fakeMatcher struct {
	tr     *tree.Tree
	pseudo map[tree.ID]map[string]bool
}

func (f *fakeMatcher) Parent(id tree.ID) (tree.ID, error)          { return f.tr.Parent(id) }
func (f *fakeMatcher) Children(id tree.ID) ([]*tree.Element, error) { return f.tr.Children(id) }
func (f *fakeMatcher) Get(id tree.ID) (*tree.Element, error)        { return f.tr.Get(id) }
func (f *fakeMatcher) PseudoClasses(id tree.ID) map[string]bool {
	return f.pseudo[id]
}

func pos(line, col int) tree.ID { return tree.ID{Pos: tree.Position{Line: line, Col: col}} }

func buildCardTree() (*tree.Tree, *tree.Element, *tree.Element, *tree.Element) {
	tr := tree.New()
	root := tree.NewElement(pos(1, 1), "div")
	root.Attrs["class"] = "card"
	card := tree.NewElement(pos(2, 1), "div")
	card.Attrs["class"] = "card"
	title := tree.NewElement(pos(3, 1), "span")
	title.Attrs["class"] = "title"
	sibling := tree.NewElement(pos(3, 2), "span")

	card.Children = []tree.ID{title.ID, sibling.ID}
	root.Children = []tree.ID{card.ID}

	tr.Insert(title)
	tr.Insert(sibling)
	tr.Insert(card)
	tr.Insert(root)
	tr.Link(card.ID, card.Children)
	tr.Link(root.ID, root.Children)
	return tr, root, card, title
}

func TestMatchesDescendantCombinator(t *testing.T) {
	tr, root, _, title := buildCardTree()
	m := &fakeMatcher{tr: tr}
	sel := parsed.Selector{Components: []parsed.SelectorComponent{
		{Type: "div"},
		{Combinator: parsed.CombinatorDescendant, Type: "span", Classes: []string{"title"}},
	}}
	assert.True(t, Matches(m, title, sel))
	_ = root
}

func TestMatchesChildCombinatorRequiresDirectParent(t *testing.T) {
	tr, _, card, title := buildCardTree()
	m := &fakeMatcher{tr: tr}
	sel := parsed.Selector{Components: []parsed.SelectorComponent{
		{Type: "div", Classes: []string{"card"}},
		{Combinator: parsed.CombinatorChild, Type: "span"},
	}}
	assert.True(t, Matches(m, title, sel))

	grandparentSel := parsed.Selector{Components: []parsed.SelectorComponent{
		{Classes: []string{"card"}, Root: true},
		{Combinator: parsed.CombinatorChild, Type: "span"},
	}}
	assert.False(t, Matches(m, title, grandparentSel))
	_ = card
}

func TestMatchesAdjacentSibling(t *testing.T) {
	tr, _, card, title := buildCardTree()
	m := &fakeMatcher{tr: tr}
	siblings, err := tr.Children(card.ID)
	require.NoError(t, err)
	sibling := siblings[1]

	sel := parsed.Selector{Components: []parsed.SelectorComponent{
		{Type: "span", Classes: []string{"title"}},
		{Combinator: parsed.CombinatorAdjacent, Type: "span"},
	}}
	assert.True(t, Matches(m, sibling, sel))
	assert.False(t, Matches(m, title, sel))
}

func TestMatchesPseudoClass(t *testing.T) {
	tr, _, _, title := buildCardTree()
	m := &fakeMatcher{tr: tr, pseudo: map[tree.ID]map[string]bool{title.ID: {"hover": true}}}
	sel := parsed.Selector{Components: []parsed.SelectorComponent{{Type: "span", PseudoClass: "hover"}}}
	assert.True(t, Matches(m, title, sel))

	sel2 := parsed.Selector{Components: []parsed.SelectorComponent{{Type: "span", PseudoClass: "focus"}}}
	assert.False(t, Matches(m, title, sel2))
}

func TestMatchAttrModes(t *testing.T) {
	el := tree.NewElement(pos(1, 1), "input")
	el.Attrs["data-kind"] = "primary-button"

	assert.True(t, matchAttr(el, parsed.AttrSelector{Name: "data-kind", Match: parsed.AttrPresent}))
	assert.True(t, matchAttr(el, parsed.AttrSelector{Name: "data-kind", Match: parsed.AttrPrefix, Value: "primary"}))
	assert.True(t, matchAttr(el, parsed.AttrSelector{Name: "data-kind", Match: parsed.AttrSuffix, Value: "button"}))
	assert.True(t, matchAttr(el, parsed.AttrSelector{Name: "data-kind", Match: parsed.AttrSubstr, Value: "ry-bu"}))
	assert.False(t, matchAttr(el, parsed.AttrSelector{Name: "missing", Match: parsed.AttrPresent}))
}
