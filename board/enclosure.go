package board

import (
	"fmt"

	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// enclosedRegion flood fills wall-free adjacency from start and returns
// the filled region. Every wall lies within the bounding box of the placed
// elements, so an enclosed region can never leave that box; a fill step
// that would exit it has escaped between the walls and the wall set does
// not enclose the play area. Runs once at construction, never per call.
func enclosedRegion(start hexgrid.Hex, walls map[WallSegment]struct{}, elements []hexgrid.Hex) (map[hexgrid.Hex]bool, error) {
	minX, maxX := start.X, start.X
	minY, maxY := start.Y, start.Y
	for _, h := range elements {
		minX = min(minX, h.X)
		maxX = max(maxX, h.X)
		minY = min(minY, h.Y)
		maxY = max(maxY, h.Y)
	}

	inside := func(h hexgrid.Hex) bool {
		return h.X >= minX && h.X <= maxX && h.Y >= minY && h.Y <= maxY
	}

	region := map[hexgrid.Hex]bool{start: true}
	frontier := []hexgrid.Hex{start}
	for len(frontier) > 0 {
		h := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, n := range h.Neighbors() {
			if region[n] {
				continue
			}
			if _, walled := walls[canonicalWall(h, n)]; walled {
				continue
			}
			if !inside(n) {
				return nil, fmt.Errorf("%w: walls do not enclose the play area, open toward %v", ErrMalformedBoard, n)
			}
			region[n] = true
			frontier = append(frontier, n)
		}
	}
	return region, nil
}
