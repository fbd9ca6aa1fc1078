package board

import (
	"testing"

	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
	"github.com/stretchr/testify/require"
)

func mover(at hexgrid.Hex) *Actor {
	return &Actor{Name: "living bones", Number: 1, At: at, Side: Mover, Initiative: 50, Move: &MoveDescription{Movement: 3}}
}

func ally(name string, at hexgrid.Hex) *Actor {
	return &Actor{Name: name, At: at, Side: Ally, Initiative: 20, Initiative2: 70}
}

// enclosure returns the wall segments sealing the spiral of the given
// radius around c.
func enclosure(c hexgrid.Hex, radius int) []WallSegment {
	region := map[hexgrid.Hex]bool{}
	for _, h := range hexgrid.Spiral(c, radius) {
		region[h] = true
	}
	var walls []WallSegment
	for h := range region {
		for _, n := range h.Neighbors() {
			if !region[n] {
				walls = append(walls, WallSegment{A: h, B: n})
			}
		}
	}
	return walls
}

func TestNew(t *testing.T) {
	t.Run("accepts a minimal open board", func(t *testing.T) {
		b, err := New(Config{Actors: []*Actor{mover(hexgrid.Hex{0, 0}), ally("rogue", hexgrid.Hex{2, 0})}})
		require.NoError(t, err)
		require.Equal(t, "living bones", b.Mover().Name)
		require.Len(t, b.Opponents(), 1, "the rogue should oppose the mover")
	})

	t.Run("rejects two actors on one hex", func(t *testing.T) {
		_, err := New(Config{Actors: []*Actor{mover(hexgrid.Hex{0, 0}), ally("rogue", hexgrid.Hex{0, 0})}})
		require.ErrorIs(t, err, ErrMalformedBoard)
		require.ErrorContains(t, err, "occupy the same hex")
	})

	t.Run("rejects a missing mover", func(t *testing.T) {
		_, err := New(Config{Actors: []*Actor{ally("rogue", hexgrid.Hex{0, 0})}})
		require.ErrorIs(t, err, ErrInvalidMover)
	})

	t.Run("rejects a second mover", func(t *testing.T) {
		m2 := mover(hexgrid.Hex{3, 0})
		m2.Number = 2
		_, err := New(Config{Actors: []*Actor{mover(hexgrid.Hex{0, 0}), m2}})
		require.ErrorIs(t, err, ErrInvalidMover)
	})

	t.Run("rejects a mover without a move description", func(t *testing.T) {
		m := mover(hexgrid.Hex{0, 0})
		m.Move = nil
		_, err := New(Config{Actors: []*Actor{m}})
		require.ErrorIs(t, err, ErrInvalidMover)
	})

	t.Run("rejects a move description on a non-mover", func(t *testing.T) {
		a := ally("rogue", hexgrid.Hex{2, 0})
		a.Move = &MoveDescription{}
		_, err := New(Config{Actors: []*Actor{mover(hexgrid.Hex{0, 0}), a}})
		require.ErrorIs(t, err, ErrInvalidMover)
	})

	t.Run("rejects a wall between non-adjacent hexes", func(t *testing.T) {
		_, err := New(Config{
			Actors: []*Actor{mover(hexgrid.Hex{0, 0})},
			Walls:  []WallSegment{{A: hexgrid.Hex{0, 0}, B: hexgrid.Hex{2, 0}}},
		})
		require.ErrorIs(t, err, ErrMalformedBoard)
		require.ErrorContains(t, err, "non-adjacent")
	})

	t.Run("rejects an actor on an obstacle", func(t *testing.T) {
		_, err := New(Config{
			Actors:  []*Actor{mover(hexgrid.Hex{0, 0}), ally("rogue", hexgrid.Hex{1, 0})},
			Markers: []Marker{{At: hexgrid.Hex{1, 0}, Kind: Obstacle}},
			Walls:   enclosure(hexgrid.Hex{0, 0}, 2),
		})
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("rejects duplicate markers on one hex", func(t *testing.T) {
		_, err := New(Config{
			Actors: []*Actor{mover(hexgrid.Hex{0, 0})},
			Markers: []Marker{
				{At: hexgrid.Hex{1, 0}, Kind: Trap},
				{At: hexgrid.Hex{1, 0}, Kind: Coin},
			},
		})
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("rejects more than one standing aoe offset", func(t *testing.T) {
		m := mover(hexgrid.Hex{0, 0})
		m.Move.AoE = []AoEOffset{
			{Offset: hexgrid.Hex{1, 0}, Standing: true},
			{Offset: hexgrid.Hex{0, 1}, Standing: true},
		}
		_, err := New(Config{Actors: []*Actor{m}})
		require.ErrorIs(t, err, ErrInvalidMover)
	})

	t.Run("collapses duplicate walls", func(t *testing.T) {
		b, err := New(Config{
			Actors: []*Actor{mover(hexgrid.Hex{0, 0})},
			Walls: append(enclosure(hexgrid.Hex{0, 0}, 1),
				WallSegment{A: hexgrid.Hex{1, 0}, B: hexgrid.Hex{2, 0}},
				WallSegment{A: hexgrid.Hex{2, 0}, B: hexgrid.Hex{1, 0}}),
			Markers: []Marker{{At: hexgrid.Hex{1, 0}, Kind: Coin}},
		})
		require.NoError(t, err)
		require.Len(t, b.Walls(), len(enclosure(hexgrid.Hex{0, 0}, 1)),
			"the same wall given twice, in either order, should be stored once")
	})
}

func TestEnclosure(t *testing.T) {
	t.Run("sealed walls build a finite region", func(t *testing.T) {
		b, err := New(Config{
			Actors: []*Actor{mover(hexgrid.Hex{0, 0}), ally("rogue", hexgrid.Hex{1, 0})},
			Walls:  enclosure(hexgrid.Hex{0, 0}, 2),
		})
		require.NoError(t, err)
		require.True(t, b.InPlay(hexgrid.Hex{0, 0}))
		require.True(t, b.InPlay(hexgrid.Hex{2, 0}))
		require.False(t, b.InPlay(hexgrid.Hex{3, 0}), "hexes beyond the walls are out of play")
	})

	t.Run("a gap in the walls is malformed", func(t *testing.T) {
		walls := enclosure(hexgrid.Hex{0, 0}, 2)
		_, err := New(Config{
			Actors: []*Actor{mover(hexgrid.Hex{0, 0})},
			Walls:  walls[1:],
		})
		require.ErrorIs(t, err, ErrMalformedBoard)
		require.ErrorContains(t, err, "enclose")
	})

	t.Run("an actor outside the enclosed region is malformed", func(t *testing.T) {
		_, err := New(Config{
			Actors: []*Actor{mover(hexgrid.Hex{0, 0}), ally("rogue", hexgrid.Hex{4, 0})},
			Walls:  enclosure(hexgrid.Hex{0, 0}, 2),
		})
		require.ErrorIs(t, err, ErrMalformedBoard)
	})
}

func TestSteps(t *testing.T) {
	t.Run("open hex offers all six steps in neighbor order", func(t *testing.T) {
		b, err := New(Config{Actors: []*Actor{mover(hexgrid.Hex{0, 0})}})
		require.NoError(t, err)

		steps := b.Steps(hexgrid.Hex{0, 0})
		require.Len(t, steps, 6)
		for i, n := range (hexgrid.Hex{0, 0}).Neighbors() {
			require.Equal(t, Step{To: n, Cost: 1}, steps[i], "steps should follow the clockwise neighbor order")
		}
	})

	t.Run("walls, actors, and obstacles remove steps", func(t *testing.T) {
		b, err := New(Config{
			Actors: []*Actor{
				mover(hexgrid.Hex{0, 0}),
				ally("rogue", hexgrid.Hex{0, 1}),
			},
			Walls:   append(enclosure(hexgrid.Hex{0, 0}, 2), WallSegment{A: hexgrid.Hex{0, 0}, B: hexgrid.Hex{1, 0}}),
			Markers: []Marker{{At: hexgrid.Hex{-1, 1}, Kind: Obstacle}},
		})
		require.NoError(t, err)

		steps := b.Steps(hexgrid.Hex{0, 0})
		tos := map[hexgrid.Hex]bool{}
		for _, s := range steps {
			tos[s.To] = true
		}
		require.False(t, tos[hexgrid.Hex{1, 0}], "walled edge should not be steppable")
		require.False(t, tos[hexgrid.Hex{0, 1}], "occupied hex should not be steppable")
		require.False(t, tos[hexgrid.Hex{-1, 1}], "obstacle hex should not be steppable")
		require.Len(t, steps, 3)
	})

	t.Run("difficult terrain charges two on entry", func(t *testing.T) {
		b, err := New(Config{
			Actors:  []*Actor{mover(hexgrid.Hex{0, 0})},
			Markers: []Marker{{At: hexgrid.Hex{1, 0}, Kind: DifficultTerrain}},
		})
		require.NoError(t, err)

		steps := b.Steps(hexgrid.Hex{0, 0})
		require.Equal(t, Step{To: hexgrid.Hex{1, 0}, Cost: 2}, steps[0])
		for _, s := range steps[1:] {
			require.Equal(t, 1, s.Cost, "plain hexes cost one")
		}
	})

	t.Run("the mover's own hex stays enterable", func(t *testing.T) {
		b, err := New(Config{Actors: []*Actor{mover(hexgrid.Hex{0, 0})}})
		require.NoError(t, err)
		require.True(t, b.Enterable(hexgrid.Hex{0, 0}), "the vacated hex is passable to the mover itself")
	})
}

func TestHash(t *testing.T) {
	cfg := func() Config {
		return Config{
			Actors:  []*Actor{mover(hexgrid.Hex{0, 0}), ally("rogue", hexgrid.Hex{2, 0})},
			Walls:   enclosure(hexgrid.Hex{0, 0}, 2),
			Markers: []Marker{{At: hexgrid.Hex{1, 1}, Kind: DifficultTerrain}},
		}
	}

	a, err := New(cfg())
	require.NoError(t, err)
	b, err := New(cfg())
	require.NoError(t, err)
	require.Equal(t, a.Hash(), b.Hash(), "identical boards should hash identically")

	moved := cfg()
	moved.Actors[1].At = hexgrid.Hex{1, 0}
	c, err := New(moved)
	require.NoError(t, err)
	require.NotEqual(t, a.Hash(), c.Hash(), "moving an actor should change the hash")
}
