package board

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrMalformedBoard flags construction input the engine must not touch:
	// walls that are not between neighbors or do not close, overlapping
	// occupancy, unknown marker kinds.
	ErrMalformedBoard = errors.New("malformed board")

	// ErrInvalidMover flags an invocation whose designated mover does not
	// resolve to exactly one actor carrying a move description.
	ErrInvalidMover = errors.New("invalid mover")
)

// WallSegment is an unordered pair of adjacent hexes whose shared edge
// blocks movement and sight. Stored in canonical order so it can key maps.
type WallSegment struct {
	A, B hexgrid.Hex
}

// NewWallSegment builds a canonical wall segment, rejecting pairs that are
// not neighbors.
func NewWallSegment(a, b hexgrid.Hex) (WallSegment, error) {
	if !hexgrid.Adjacent(a, b) {
		return WallSegment{}, fmt.Errorf("%w: wall between non-adjacent hexes %v and %v", ErrMalformedBoard, a, b)
	}
	return canonicalWall(a, b), nil
}

func canonicalWall(a, b hexgrid.Hex) WallSegment {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return WallSegment{A: a, B: b}
}

// Step is one legal movement edge out of a hex: the entered hex and the
// movement points charged on entry.
type Step struct {
	To   hexgrid.Hex
	Cost int
}

// Config carries the closure of one invocation: every actor, wall, and
// marker in play.
type Config struct {
	Actors  []*Actor
	Walls   []WallSegment
	Markers []Marker
}

// Board is the validated, immutable world for one resolution call.
// Adjacency is derived on demand, never persisted.
type Board struct {
	walls   map[WallSegment]struct{}
	markers map[hexgrid.Hex]Kind
	actors  []*Actor
	byHex   map[hexgrid.Hex]*Actor
	mover   *Actor

	// region is the enclosed playable area when walls are present. On open
	// boards it is nil and bound caps the search radius around the mover.
	region map[hexgrid.Hex]bool
	bound  int
}

// New validates the configuration and builds the board. Structural
// problems return ErrMalformedBoard; mover problems return ErrInvalidMover.
// The board retains the given actors; callers must not mutate them for the
// lifetime of the board.
func New(cfg Config) (*Board, error) {
	b := &Board{
		walls:   make(map[WallSegment]struct{}, len(cfg.Walls)),
		markers: make(map[hexgrid.Hex]Kind, len(cfg.Markers)),
		actors:  slices.Clone(cfg.Actors),
		byHex:   make(map[hexgrid.Hex]*Actor, len(cfg.Actors)),
	}

	// Duplicate walls collapse: room merging legitimately produces them.
	for _, w := range cfg.Walls {
		canon, err := NewWallSegment(w.A, w.B)
		if err != nil {
			return nil, err
		}
		b.walls[canon] = struct{}{}
	}

	for _, m := range cfg.Markers {
		if prev, ok := b.markers[m.At]; ok {
			return nil, fmt.Errorf("%w: markers %v and %v share hex %v", ErrMalformedBoard, prev, m.Kind, m.At)
		}
		b.markers[m.At] = m.Kind
	}

	for _, a := range b.actors {
		if other, ok := b.byHex[a.At]; ok {
			return nil, fmt.Errorf("%w: two objects occupy the same hex: %s and %s at %v", ErrMalformedBoard, other.Name, a.Name, a.At)
		}
		if kind, ok := b.markers[a.At]; ok && !kind.Passable() {
			return nil, fmt.Errorf("%w: %s stands on impassable %v at %v", ErrMalformedBoard, a.Name, kind, a.At)
		}
		b.byHex[a.At] = a

		switch {
		case a.Side == Mover:
			if b.mover != nil {
				return nil, fmt.Errorf("%w: both %s and %s are designated movers", ErrInvalidMover, b.mover.Name, a.Name)
			}
			if a.Move == nil {
				return nil, fmt.Errorf("%w: mover %s has no move description", ErrInvalidMover, a.Name)
			}
			b.mover = a
		case a.Move != nil:
			return nil, fmt.Errorf("%w: non-mover %s carries a move description", ErrInvalidMover, a.Name)
		}
	}
	if b.mover == nil {
		return nil, fmt.Errorf("%w: no designated mover", ErrInvalidMover)
	}
	if n := standingOffsets(b.mover.Move); n > 1 {
		return nil, fmt.Errorf("%w: move description declares %d standing offsets", ErrInvalidMover, n)
	}

	if len(b.walls) > 0 {
		region, err := enclosedRegion(b.mover.At, b.walls, b.elementHexes())
		if err != nil {
			return nil, err
		}
		// Boundary walls keep one endpoint outside the region; only placed
		// contents must lie inside it.
		for _, a := range b.actors {
			if !region[a.At] {
				return nil, fmt.Errorf("%w: %s at %v lies outside the enclosed play area", ErrMalformedBoard, a.Name, a.At)
			}
		}
		for h := range b.markers {
			if !region[h] {
				return nil, fmt.Errorf("%w: marker at %v lies outside the enclosed play area", ErrMalformedBoard, h)
			}
		}
		b.region = region
	} else {
		b.bound = b.openBound()
	}
	return b, nil
}

func standingOffsets(m *MoveDescription) int {
	n := 0
	for _, o := range m.AoE {
		if o.Standing {
			n++
		}
	}
	return n
}

// elementHexes lists every placed hex: actors, markers, wall endpoints.
func (b *Board) elementHexes() []hexgrid.Hex {
	out := make([]hexgrid.Hex, 0, len(b.actors)+len(b.markers)+2*len(b.walls))
	for _, a := range b.actors {
		out = append(out, a.At)
	}
	for h := range b.markers {
		out = append(out, h)
	}
	for w := range b.walls {
		out = append(out, w.A, w.B)
	}
	return out
}

// openBound caps search on a wall-less board: no shortest path needs to
// stray farther than the farthest element plus a two-hex detour around
// each blocking element.
func (b *Board) openBound() int {
	prox, blockers := 0, 0
	for _, a := range b.actors {
		if a == b.mover {
			continue
		}
		prox = max(prox, hexgrid.Distance(b.mover.At, a.At))
		blockers++
	}
	for h, kind := range b.markers {
		prox = max(prox, hexgrid.Distance(b.mover.At, h))
		if !kind.Passable() {
			blockers++
		}
	}
	return prox + 2*blockers + 2
}

func (b *Board) Mover() *Actor { return b.mover }

func (b *Board) Actors() []*Actor { return b.actors }

// Opponents returns the actors on the side opposing the mover, in input
// order.
func (b *Board) Opponents() []*Actor {
	var out []*Actor
	for _, a := range b.actors {
		if b.mover.Opposes(a) {
			out = append(out, a)
		}
	}
	return out
}

func (b *Board) ActorAt(h hexgrid.Hex) *Actor { return b.byHex[h] }

func (b *Board) MarkerAt(h hexgrid.Hex) (Kind, bool) {
	k, ok := b.markers[h]
	return k, ok
}

// WallBetween reports whether a wall segment separates the two hexes.
// Non-adjacent hexes are never separated by a single wall.
func (b *Board) WallBetween(x, y hexgrid.Hex) bool {
	if !hexgrid.Adjacent(x, y) {
		return false
	}
	_, ok := b.walls[canonicalWall(x, y)]
	return ok
}

// InPlay reports whether h belongs to the playable area: the enclosed
// region on walled boards, the bounded search radius on open ones.
func (b *Board) InPlay(h hexgrid.Hex) bool {
	if b.region != nil {
		return b.region[h]
	}
	return hexgrid.Distance(b.mover.At, h) <= b.bound
}

// EntryCost returns the movement points charged for entering h.
func (b *Board) EntryCost(h hexgrid.Hex) int {
	if kind, ok := b.markers[h]; ok && kind.Passable() {
		return kind.EntryCost()
	}
	return 1
}

// Enterable reports whether the mover may step onto h: in play, no
// impassable marker, and no actor other than the mover itself (its own
// vacated hex stays passable to it).
func (b *Board) Enterable(h hexgrid.Hex) bool {
	if !b.InPlay(h) {
		return false
	}
	if kind, ok := b.markers[h]; ok && !kind.Passable() {
		return false
	}
	if a := b.byHex[h]; a != nil && a != b.mover {
		return false
	}
	return true
}

// Steps returns the legal movement edges out of h in neighbor order:
// wall-free, into enterable hexes, charging the entered hex's cost.
func (b *Board) Steps(h hexgrid.Hex) []Step {
	out := make([]Step, 0, 6)
	for _, n := range h.Neighbors() {
		if b.WallBetween(h, n) || !b.Enterable(n) {
			continue
		}
		out = append(out, Step{To: n, Cost: b.EntryCost(n)})
	}
	return out
}

// Walls returns the wall set in canonical sorted order.
func (b *Board) Walls() []WallSegment {
	out := maps.Keys(b.walls)
	slices.SortFunc(out, compareWalls)
	return out
}

func compareWalls(a, b WallSegment) int {
	if c := compareHexes(a.A, b.A); c != 0 {
		return c
	}
	return compareHexes(a.B, b.B)
}

func compareHexes(a, b hexgrid.Hex) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

// Hash folds the whole board into a 64-bit value. Identical boards hash
// identically; experiments use it to label generated boards.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()
	writeInt := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}
	writeHex := func(h hexgrid.Hex) {
		writeInt(h.X)
		writeInt(h.Y)
	}

	for _, w := range b.Walls() {
		writeHex(w.A)
		writeHex(w.B)
	}

	markers := make([]Marker, 0, len(b.markers))
	for h, k := range b.markers {
		markers = append(markers, Marker{At: h, Kind: k})
	}
	slices.SortFunc(markers, func(a, b Marker) int { return compareHexes(a.At, b.At) })
	for _, m := range markers {
		writeHex(m.At)
		writeInt(int(m.Kind))
	}

	for _, a := range b.actors {
		hasher.Write([]byte(a.Name))
		writeInt(a.Number)
		writeHex(a.At)
		writeInt(int(a.Side))
		writeInt(a.Initiative)
		writeInt(a.Initiative2)
		writeInt(a.SummonRank)
		writeInt(boolInt(a.Invisible)<<2 | boolInt(a.Stunned)<<1 | boolInt(a.Disarmed))
		if m := a.Move; m != nil {
			if m.Attack != nil {
				writeInt(*m.Attack)
			}
			writeInt(m.Range)
			writeInt(m.TargetCount)
			writeInt(m.Movement)
			writeInt(m.Heal)
			for _, o := range m.AoE {
				writeHex(o.Offset)
				writeInt(boolInt(o.Standing))
			}
		}
	}
	return hasher.Sum64()
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
