package resolve

import (
	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/graph"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
	"github.com/stevenpelley/gloomhaven-monster-ai/sight"
	"golang.org/x/exp/slices"
)

// branch resolves one focus completely: attack hexes, the target list, and
// the closest-hex fallback when no attack position exists.
func (r *Resolver) branch(bd *board.Board, fwd graph.Result[hexgrid.Hex], focus candidateEval, evals []candidateEval) Branch {
	mover := bd.Mover()
	move := mover.Move
	toward := towardDistances(bd, focus.actor.At)
	r.collector.AddExpandedHexes(len(toward.Distances()))

	b := Branch{
		Focus:       ref(focus.actor),
		Targets:     []ActorRef{ref(focus.actor)},
		AttackHexes: []hexgrid.Hex{},
	}

	allowance := move.Movement
	if mover.Stunned {
		allowance = 0
	}

	if move.Attack != nil {
		if hexes := r.attackHexes(bd, fwd, toward, focus.actor.At, allowance); len(hexes) > 0 {
			b.AttackHexes = hexes
		}
	}
	if len(b.AttackHexes) == 0 {
		h := closestHex(bd, fwd, toward, focus.actor.At, allowance)
		b.ClosestHex = &h
		return b
	}

	if n := move.TargetCount; n > 1 {
		b.Targets = append(b.Targets, r.extraTargets(bd, b.AttackHexes[0], focus, evals, n-1)...)
	}
	return b
}

// attackable dispatches the legality of an attack from a hex against an
// occupied hex under the resolver's policy flags.
func (r *Resolver) attackable(bd *board.Board, from, to hexgrid.Hex) bool {
	mover := bd.Mover()
	rng := mover.Move.EffectiveRange(mover.Disarmed)
	if rng == 0 || (r.rangeOneMelee && rng == 1) {
		return sight.Melee(bd, from, to)
	}
	return sight.Ranged(bd, from, to, rng, r.actorsBlockSight)
}

// attackHexes walks the reachable hexes in spiral order around the mover
// and keeps every legal attack position of minimal movement cost, ties
// broken by the uncapped movement distance toward the focus.
func (r *Resolver) attackHexes(bd *board.Board, fwd, toward graph.Result[hexgrid.Hex], focus hexgrid.Hex, allowance int) []hexgrid.Hex {
	mover := bd.Mover()
	standing, hasStanding := mover.Move.StandingOffset()
	if mover.Disarmed {
		// A disarmed mover falls back to a plain melee: the shape goes too.
		hasStanding = false
	}

	var out []hexgrid.Hex
	bestCost, bestToward := 0, 0
	for _, h := range hexgrid.Spiral(mover.At, allowance) {
		cost, ok := fwd.Distance(h)
		if !ok || cost > allowance {
			continue
		}
		if !r.attackable(bd, h, focus) {
			continue
		}
		if hasStanding && !bd.InPlay(h.Add(standing)) {
			continue
		}
		td := towardOf(toward, h)
		switch {
		case len(out) == 0 || cost < bestCost || (cost == bestCost && td < bestToward):
			out = []hexgrid.Hex{h}
			bestCost, bestToward = cost, td
		case cost == bestCost && td == bestToward:
			out = append(out, h)
		}
	}
	return out
}

// closestHex picks the reachable hex nearest the focus: least movement
// distance toward it, then least straight-line proximity, the first spiral
// position winning any remaining tie. The mover's own hex is always
// reachable, so a pick always exists.
func closestHex(bd *board.Board, fwd, toward graph.Result[hexgrid.Hex], focus hexgrid.Hex, allowance int) hexgrid.Hex {
	var best hexgrid.Hex
	bestToward, bestProx := 0, 0
	found := false
	for _, h := range hexgrid.Spiral(bd.Mover().At, allowance) {
		cost, ok := fwd.Distance(h)
		if !ok || cost > allowance {
			continue
		}
		td, prox := towardOf(toward, h), hexgrid.Distance(h, focus)
		if !found || td < bestToward || (td == bestToward && prox < bestProx) {
			best, bestToward, bestProx = h, td, prox
			found = true
		}
	}
	return best
}

// extraTargets ranks the remaining candidates attackable from the branch's
// first attack hex by the focus keys and takes up to want of them.
func (r *Resolver) extraTargets(bd *board.Board, from hexgrid.Hex, focus candidateEval, evals []candidateEval, want int) []ActorRef {
	attackable := make([]candidateEval, 0, len(evals))
	for _, e := range evals {
		if e.actor == focus.actor || !r.attackable(bd, from, e.actor.At) {
			continue
		}
		attackable = append(attackable, e)
	}
	slices.SortFunc(attackable, func(a, b candidateEval) int {
		if a.moveDist != b.moveDist {
			return a.moveDist - b.moveDist
		}
		if a.proxDist != b.proxDist {
			return a.proxDist - b.proxDist
		}
		return board.Compare(a.actor, b.actor)
	})
	if len(attackable) > want {
		attackable = attackable[:want]
	}
	out := make([]ActorRef, len(attackable))
	for i, e := range attackable {
		out[i] = ref(e.actor)
	}
	return out
}
