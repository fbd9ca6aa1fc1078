package resolve

import (
	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/graph"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
	"golang.org/x/exp/slices"
)

// candidateEval is one opposing actor scored by the two focus keys.
type candidateEval struct {
	actor    *board.Actor
	moveDist int
	proxDist int
}

// candidates lists the actors the mover may focus: its opponents, skipping
// invisible ones as long as at least one visible opponent remains.
func candidates(bd *board.Board) []*board.Actor {
	opponents := bd.Opponents()
	visible := make([]*board.Actor, 0, len(opponents))
	for _, a := range opponents {
		if !a.Invisible {
			visible = append(visible, a)
		}
	}
	if len(visible) > 0 {
		return visible
	}
	return opponents
}

// evaluate scores one candidate: movement distance to its hex (destination
// relaxed, never capped by the allowance) and straight-line proximity.
func evaluate(bd *board.Board, fwd graph.Result[hexgrid.Hex], a *board.Actor) candidateEval {
	return candidateEval{
		actor:    a,
		moveDist: candidateDistance(bd, fwd, a.At),
		proxDist: hexgrid.Distance(bd.Mover().At, a.At),
	}
}

// tiedFoci keeps every candidate minimizing movement distance, then
// proximity distance, ordered by the composite initiative key. The scan is
// order-independent, so focus selection survives permuting the input.
func tiedFoci(evals []candidateEval) []candidateEval {
	var best []candidateEval
	for _, e := range evals {
		switch {
		case len(best) == 0 || focusLess(e, best[0]):
			best = []candidateEval{e}
		case e.moveDist == best[0].moveDist && e.proxDist == best[0].proxDist:
			best = append(best, e)
		}
	}
	slices.SortFunc(best, func(a, b candidateEval) int {
		return board.Compare(a.actor, b.actor)
	})
	return best
}

func focusLess(a, b candidateEval) bool {
	if a.moveDist != b.moveDist {
		return a.moveDist < b.moveDist
	}
	return a.proxDist < b.proxDist
}
