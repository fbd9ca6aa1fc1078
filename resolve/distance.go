package resolve

import (
	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/graph"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// unreachable stands in for an infinite distance. It compares like any
// other distance, so unreachable candidates still order by the remaining
// keys.
const unreachable = int(^uint(0) >> 1)

// forwardDistances runs uniform-cost search from the mover's hex over the
// board's movement edges.
func forwardDistances(bd *board.Board) graph.Result[hexgrid.Hex] {
	return graph.ShortestPaths(bd.Mover().At, func(h hexgrid.Hex) []graph.Edge[hexgrid.Hex] {
		steps := bd.Steps(h)
		edges := make([]graph.Edge[hexgrid.Hex], len(steps))
		for i, s := range steps {
			edges[i] = graph.Edge[hexgrid.Hex]{To: s.To, Cost: s.Cost}
		}
		return edges
	})
}

// candidateDistance is the movement distance from the mover to an occupied
// candidate hex. The destination itself relaxes: the candidate's body does
// not block its own hex, walls still do.
func candidateDistance(bd *board.Board, fwd graph.Result[hexgrid.Hex], c hexgrid.Hex) int {
	best := unreachable
	for _, n := range c.Neighbors() {
		if bd.WallBetween(c, n) {
			continue
		}
		d, ok := fwd.Distance(n)
		if !ok {
			continue
		}
		if d+bd.EntryCost(c) < best {
			best = d + bd.EntryCost(c)
		}
	}
	return best
}

// towardDistances searches the reversed movement graph outward from the
// focus hex, giving every hex its movement distance toward the focus.
// Costs stay forward costs: a reversed edge charges entry into its origin.
func towardDistances(bd *board.Board, focus hexgrid.Hex) graph.Result[hexgrid.Hex] {
	return graph.ShortestPaths(focus, func(v hexgrid.Hex) []graph.Edge[hexgrid.Hex] {
		edges := make([]graph.Edge[hexgrid.Hex], 0, 6)
		cost := bd.EntryCost(v)
		for _, u := range v.Neighbors() {
			if bd.WallBetween(v, u) || !bd.Enterable(u) {
				continue
			}
			edges = append(edges, graph.Edge[hexgrid.Hex]{To: u, Cost: cost})
		}
		return edges
	})
}

func towardOf(toward graph.Result[hexgrid.Hex], h hexgrid.Hex) int {
	if d, ok := toward.Distance(h); ok {
		return d
	}
	return unreachable
}
