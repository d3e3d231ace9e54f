package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaResolveNoAlias(t *testing.T) {
	s := NewSchema()
	assert.Equal(t, "name", s.Resolve("name"))
	assert.Equal(t, "user.name", s.Resolve("user.name"))
}

func TestSchemaResolveWithAlias(t *testing.T) {
	s := NewSchema()
	s.PushAlias("todo", "todos[2]")
	assert.Equal(t, "todos[2]", s.Resolve("todo"))
	assert.Equal(t, "todos[2].done", s.Resolve("todo.done"))
}

func TestSchemaResolveSameExpressionAcrossScopesIsStable(t *testing.T) {
	s := NewSchema()
	s.PushAlias("item", "list[0]")
	first := s.Resolve("item.name")
	s.PopAlias()
	s.PushAlias("item", "list[1]")
	second := s.Resolve("item.name")

	assert.Equal(t, "list[0].name", first)
	assert.Equal(t, "list[1].name", second)
}

func TestSchemaPopRestoresOuterScope(t *testing.T) {
	s := NewSchema()
	s.PushAlias("outer", "a")
	s.PushAlias("inner", "b")
	require.True(t, s.PopAlias())
	assert.Equal(t, "a", s.Resolve("outer"))
	_, ok := func() (string, bool) { return s.Resolve("inner"), s.Resolve("inner") == "inner" }()
	assert.True(t, ok) // "inner" no longer aliased, resolves to itself
}

func TestSchemaPopPastRootFails(t *testing.T) {
	s := NewSchema()
	assert.False(t, s.PopAlias())
	assert.Equal(t, 0, s.Depth())
}
