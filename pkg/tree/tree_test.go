package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSmallTree() *Tree {
	tr := New()
	root := NewElement(ID{Pos: Position{1, 1}}, "div")
	child := NewElement(ID{Pos: Position{1, 5}}, "p")
	root.Children = []ID{child.ID}
	tr.Insert(root)
	tr.Insert(child)
	return tr
}

func TestTreeGetAndChildren(t *testing.T) {
	tr := buildSmallTree()

	root, err := tr.Get(tr.Root)
	require.NoError(t, err)
	assert.Equal(t, "div", root.Tag)

	kids, err := tr.Children(tr.Root)
	require.NoError(t, err)
	require.Len(t, kids, 1)
	assert.Equal(t, "p", kids[0].Tag)
}

func TestTreeGetMissingReturnsTypedError(t *testing.T) {
	tr := buildSmallTree()
	missing := ID{Pos: Position{99, 99}}

	_, err := tr.Get(missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrElementNotFound))

	var notFound *ElementNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.ID)
}

func TestTreeParentOfRootFails(t *testing.T) {
	tr := buildSmallTree()
	_, err := tr.Parent(tr.Root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParentNotFound))
}

func TestTreeWalkOrderIsParentBeforeChildSiblingsInOrder(t *testing.T) {
	tr := New()
	root := NewElement(ID{Pos: Position{1, 1}}, "div")
	a := NewElement(ID{Pos: Position{1, 2}}, "a")
	b := NewElement(ID{Pos: Position{1, 3}}, "b")
	root.Children = []ID{a.ID, b.ID}
	tr.Insert(root)
	tr.Insert(a)
	tr.Insert(b)

	var tags []string
	err := tr.Walk(func(el *Element) error {
		tags = append(tags, el.Tag)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"div", "a", "b"}, tags)
}

func TestElementTextConcatenatesSpansDirectly(t *testing.T) {
	el := NewElement(ID{}, "p")
	el.Spans = []Span{
		{Text: "Hello, "},
		{Text: "Ada", IsPlaceholder: true},
		{Text: "!"},
	}
	assert.Equal(t, "Hello, Ada!", el.Text())
}

func TestValidatePanicsOnMissingChild(t *testing.T) {
	tr := New()
	root := NewElement(ID{Pos: Position{1, 1}}, "div")
	root.Children = []ID{{Pos: Position{9, 9}}}
	tr.Insert(root)

	assert.Panics(t, func() {
		tr.Validate(nil)
	})
}

func TestValidateAcceptsConsistentTree(t *testing.T) {
	tr := buildSmallTree()
	focus := tr.Root
	assert.NotPanics(t, func() {
		tr.Validate(&focus)
	})
}
