package dag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pvcircus/internal/circuserr"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Len(t, g.nodes, 1)
	nodeA, ok := g.nodes["a"]
	require.True(t, ok)
	assert.Equal(t, "a", nodeA.id)
	assert.NotNil(t, nodeA.deps)
	assert.NotNil(t, nodeA.dependents)

	g.AddNode("a") // idempotent
	assert.Len(t, g.nodes, 1)

	g.AddNode("b")
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []string{"a", "b"}, g.Nodes())
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		err := g.AddEdge("a", "b") // a depends on b
		require.NoError(t, err)

		nodeA := g.nodes["a"]
		nodeB := g.nodes["b"]

		assert.Contains(t, nodeA.deps, "b")
		assert.Equal(t, nodeB, nodeA.deps["b"])
		assert.Contains(t, nodeB.dependents, "a")
		assert.Equal(t, nodeA, nodeB.dependents["a"])
		assert.Equal(t, []Edge{{From: "a", To: "b"}}, g.Edges())
	})

	t.Run("self reference is a loop, not an error", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		require.NoError(t, g.AddEdge("a", "a"))

		deps, err := g.Dependencies("a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, deps)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")

		err := g.AddEdge("dne", "a")
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "destination node not found")
	})
}

func TestDependenciesAndDependents(t *testing.T) {
	g, err := Build(context.Background(), map[string][]string{
		"a": {"c", "b"},
		"b": {"c"},
		"c": nil,
	})
	require.NoError(t, err)

	deps, err := g.Dependencies("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, deps)

	dependents, err := g.Dependents("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dependents)

	_, err = g.Dependencies("zzz")
	assert.ErrorContains(t, err, "node not found")
	_, err = g.Dependents("zzz")
	assert.ErrorContains(t, err, "node not found")
}

func TestClone(t *testing.T) {
	g, err := Build(context.Background(), map[string][]string{"a": {"b"}, "b": nil})
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())

	c.AddNode("x")
	require.NoError(t, c.AddEdge("b", "x"))
	assert.Equal(t, []string{"a", "b"}, g.Nodes())
	assert.Equal(t, []Edge{{From: "a", To: "b"}}, g.Edges())

	dependents, err := c.Dependents("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, dependents)
}

func TestBuild_UnknownReference(t *testing.T) {
	_, err := Build(context.Background(), map[string][]string{"a": {"z"}})
	assert.ErrorContains(t, err, "destination node not found: z")
}

func TestDetectCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		g := New()
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("graph with nodes but no edges has no cycles", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("valid dag has no cycles", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		g.AddNode("d")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("a", "c")) // transitive edge
		require.NoError(t, g.AddEdge("c", "d"))
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("simple direct cycle is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))
		err := g.DetectCycles()
		assert.ErrorIs(t, err, circuserr.ErrCircularDependency)
	})

	t.Run("longer cycle is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		g.AddNode("d")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("c", "d"))
		require.NoError(t, g.AddEdge("d", "a"))
		assert.ErrorIs(t, g.DetectCycles(), circuserr.ErrCircularDependency)
	})

	t.Run("cycle in a disjoint component is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))

		g.AddNode("x")
		g.AddNode("y")
		g.AddNode("z")
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "z"))
		require.NoError(t, g.AddEdge("z", "y"))

		assert.ErrorIs(t, g.DetectCycles(), circuserr.ErrCircularDependency)
	})
}
