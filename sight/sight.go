package sight

import (
	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// Melee reports whether a melee attack from one hex to another is legal:
// plain adjacency with no separating wall.
func Melee(bd *board.Board, from, to hexgrid.Hex) bool {
	return hexgrid.Adjacent(from, to) && !bd.WallBetween(from, to)
}

// Ranged reports whether an attack of the given range is legal: the target
// within straight-line range, and at least one candidate hex-line between
// the hexes crossing no wall. Only walls block sight; actorsBlock extends
// blocking to actors standing on a line's interior hexes.
func Ranged(bd *board.Board, from, to hexgrid.Hex, rng int, actorsBlock bool) bool {
	if hexgrid.Distance(from, to) > rng {
		return false
	}
	for _, line := range hexgrid.Lines(from, to) {
		if lineClear(bd, line, actorsBlock) {
			return true
		}
	}
	return false
}

// lineClear walks one candidate line. A wall between two consecutive line
// hexes poisons it; with actorsBlock, so does an actor on any hex strictly
// between the endpoints.
func lineClear(bd *board.Board, line []hexgrid.Hex, actorsBlock bool) bool {
	for i := 0; i+1 < len(line); i++ {
		if bd.WallBetween(line[i], line[i+1]) {
			return false
		}
	}
	if actorsBlock && len(line) > 2 {
		for _, h := range line[1 : len(line)-1] {
			if bd.ActorAt(h) != nil {
				return false
			}
		}
	}
	return true
}
