package dag

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pvcircus/internal/circuserr"
)

func mustBuild(t *testing.T, refs map[string][]string) *Graph {
	t.Helper()
	g, err := Build(context.Background(), refs)
	require.NoError(t, err)
	return g
}

func cycleErr(t *testing.T, err error) *circuserr.Error {
	t.Helper()
	var e *circuserr.Error
	require.True(t, errors.As(err, &e), "expected *circuserr.Error, got %v", err)
	require.Equal(t, circuserr.KindCircularDependency, e.Kind)
	return e
}

func TestResolveOrder(t *testing.T) {
	testCases := []struct {
		name string
		refs map[string][]string
		want []string
	}{
		{
			name: "empty graph",
			refs: map[string][]string{},
			want: []string{},
		},
		{
			name: "chain resolves dependencies first",
			refs: map[string][]string{"A": {"B"}, "B": {"C"}, "C": nil},
			want: []string{"C", "B", "A"},
		},
		{
			name: "independent keys in lexical order",
			refs: map[string][]string{"zeta": nil, "alpha": nil, "mid": nil},
			want: []string{"alpha", "mid", "zeta"},
		},
		{
			name: "diamond",
			refs: map[string][]string{
				"top":   {"left", "right"},
				"left":  {"base"},
				"right": {"base"},
				"base":  nil,
			},
			want: []string{"base", "left", "right", "top"},
		},
		{
			name: "ready key released late still sorts by heap",
			refs: map[string][]string{"x": nil, "y": nil, "d": {"x"}, "a": {"y"}},
			want: []string{"x", "d", "y", "a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustBuild(t, tc.refs).ResolveOrder(context.Background())
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ResolveOrder() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveOrder_Deterministic(t *testing.T) {
	refs := map[string][]string{
		"irradiance": nil, "temperature": nil, "wind": nil,
		"cell_temp": {"irradiance", "temperature", "wind"},
		"power":     {"cell_temp", "irradiance"},
	}
	g := mustBuild(t, refs)

	first, err := g.ResolveOrder(context.Background())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := mustBuild(t, refs).ResolveOrder(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, again)

		same, err := g.ResolveOrder(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, same)
	}
}

func TestResolveOrder_Cycles(t *testing.T) {
	t.Run("two node cycle", func(t *testing.T) {
		_, err := mustBuild(t, map[string][]string{"A": {"B"}, "B": {"A"}}).ResolveOrder(context.Background())
		e := cycleErr(t, err)
		assert.Equal(t, []string{"A", "B"}, e.Keys)
		assert.Equal(t, [][]string{{"A", "B"}}, e.Cycles)
	})

	t.Run("self reference is a one node cycle", func(t *testing.T) {
		_, err := mustBuild(t, map[string][]string{"a": {"a"}, "b": nil}).ResolveOrder(context.Background())
		e := cycleErr(t, err)
		assert.Equal(t, []string{"a"}, e.Keys)
		assert.Equal(t, [][]string{{"a"}}, e.Cycles)
	})

	t.Run("dependents of a cycle are reported as blocked", func(t *testing.T) {
		refs := map[string][]string{
			"a": {"b"}, "b": {"a"},
			"c": {"a"},
			"free": nil,
		}
		_, err := mustBuild(t, refs).ResolveOrder(context.Background())
		e := cycleErr(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, e.Keys)
		assert.Equal(t, [][]string{{"a", "b"}}, e.Cycles)
	})

	t.Run("every disjoint cycle is reported", func(t *testing.T) {
		refs := map[string][]string{
			"a": {"b"}, "b": {"a"},
			"x": {"y"}, "y": {"z"}, "z": {"x"},
			"s": {"s"},
		}
		_, err := mustBuild(t, refs).ResolveOrder(context.Background())
		e := cycleErr(t, err)
		assert.Equal(t, []string{"a", "b", "s", "x", "y", "z"}, e.Keys)
		assert.Equal(t, [][]string{{"a", "b"}, {"s"}, {"x", "y", "z"}}, e.Cycles)
	})
}

func TestLevels(t *testing.T) {
	g := mustBuild(t, map[string][]string{
		"x": nil, "y": nil,
		"d": {"x"}, "a": {"y"},
		"top": {"a", "d"},
	})

	levels, err := g.Levels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y"}, {"a", "d"}, {"top"}}, levels)

	_, err = mustBuild(t, map[string][]string{"a": {"a"}}).Levels(context.Background())
	assert.ErrorIs(t, err, circuserr.ErrCircularDependency)
}
