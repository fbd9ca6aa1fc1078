package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture builds an expansion function over bidirectional weighted edges:
//
//	1 (10) 2 (20) 3
//	1 (30) 3
//	1 (20) 4 (10) 3
//	1 (20) 5 (20) 3
//	3 (10) 6
//
// Three equally short ways lead from 1 to 3 (and on to 6); the route via 5
// is longer.
func fixture() Expand[string] {
	edges := map[string][]Edge[string]{}
	add := func(a, b string, cost int) {
		edges[a] = append(edges[a], Edge[string]{To: b, Cost: cost})
		edges[b] = append(edges[b], Edge[string]{To: a, Cost: cost})
	}
	add("1", "2", 10)
	add("2", "3", 20)
	add("1", "3", 30)
	add("1", "4", 20)
	add("4", "3", 10)
	add("1", "5", 20)
	add("5", "3", 20)
	add("3", "6", 10)
	return func(v string) []Edge[string] { return edges[v] }
}

// pathSet keys each path by its printed form so sets of paths can be
// compared regardless of expansion order.
func pathSet[V comparable](paths [][]V) map[string]bool {
	set := map[string]bool{}
	for _, p := range paths {
		set[fmt.Sprint(p)] = true
	}
	return set
}

func TestShortestPaths(t *testing.T) {
	r := ShortestPaths("1", fixture())

	t.Run("distances", func(t *testing.T) {
		want := map[string]int{"1": 0, "2": 10, "3": 30, "4": 20, "5": 20, "6": 40}
		require.Equal(t, want, r.Distances(), "every vertex should settle at its least cost")
	})

	t.Run("distance lookup", func(t *testing.T) {
		d, ok := r.Distance("6")
		require.True(t, ok)
		require.Equal(t, 40, d)

		_, ok = r.Distance("7")
		require.False(t, ok, "a vertex outside the graph should be unreachable")
	})

	t.Run("all tied paths are expanded", func(t *testing.T) {
		require.Equal(t, pathSet([][]string{{}}), pathSet(r.PathsTo("1")),
			"the source expands to a single empty path")
		require.Equal(t, pathSet([][]string{{"2"}}), pathSet(r.PathsTo("2")))
		require.Equal(t,
			pathSet([][]string{{"3"}, {"2", "3"}, {"4", "3"}}),
			pathSet(r.PathsTo("3")),
			"all three 30-cost routes should survive, the 40-cost route via 5 should not")
		require.Equal(t,
			pathSet([][]string{{"3", "6"}, {"2", "3", "6"}, {"4", "3", "6"}}),
			pathSet(r.PathsTo("6")),
			"ties should propagate through later vertices")
	})

	t.Run("unreachable vertex has no paths", func(t *testing.T) {
		require.Nil(t, r.PathsTo("7"))
	})
}

func TestShortestPathsDisconnected(t *testing.T) {
	expand := func(v string) []Edge[string] {
		if v == "a" {
			return []Edge[string]{{To: "b", Cost: 1}}
		}
		return nil
	}
	r := ShortestPaths("a", expand)

	_, ok := r.Distance("c")
	require.False(t, ok, "vertices the expansion never reaches stay at infinite distance")

	d, ok := r.Distance("b")
	require.True(t, ok)
	require.Equal(t, 1, d)
}

func TestShortestPathsZeroCostEdges(t *testing.T) {
	// Cost 0 edges are legal; the search must still settle every vertex
	// and keep both unit-cost routes to 2.
	expand := func(v int) []Edge[int] {
		switch v {
		case 0:
			return []Edge[int]{{To: 1, Cost: 0}, {To: 2, Cost: 1}}
		case 1:
			return []Edge[int]{{To: 2, Cost: 1}}
		}
		return nil
	}
	r := ShortestPaths(0, expand)
	require.Equal(t, map[int]int{0: 0, 1: 0, 2: 1}, r.Distances())
	require.Equal(t, pathSet([][]int{{2}, {1, 2}}), pathSet(r.PathsTo(2)))
}
