package board

import (
	"testing"

	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestCompare(t *testing.T) {
	t.Run("initiative decides first", func(t *testing.T) {
		fast := &Actor{Name: "rogue", Initiative: 9}
		slow := &Actor{Name: "brute", Initiative: 50}
		require.Negative(t, Compare(fast, slow))
		require.Positive(t, Compare(slow, fast))
	})

	t.Run("secondary initiative breaks equal initiative", func(t *testing.T) {
		a := &Actor{Name: "rogue", Initiative: 20, Initiative2: 30}
		b := &Actor{Name: "brute", Initiative: 20, Initiative2: 80}
		require.Negative(t, Compare(a, b))
	})

	t.Run("summon rank zero sorts last", func(t *testing.T) {
		summon := &Actor{Name: "bear", Initiative: 20, SummonRank: 1}
		owner := &Actor{Name: "beastmaster", Initiative: 20}
		require.Negative(t, Compare(summon, owner), "a summon should order before its non-summon peer at equal initiative")
	})

	t.Run("name and number make the order total", func(t *testing.T) {
		a := &Actor{Name: "living bones", Number: 1, Initiative: 50}
		b := &Actor{Name: "living bones", Number: 3, Initiative: 50}
		require.Negative(t, Compare(a, b))
		require.Equal(t, 0, Compare(a, a))
	})

	t.Run("sorting is deterministic regardless of input order", func(t *testing.T) {
		actors := []*Actor{
			{Name: "living bones", Number: 3, Initiative: 50},
			{Name: "rogue", Initiative: 9, Initiative2: 30},
			{Name: "bear", Initiative: 9, Initiative2: 30, SummonRank: 2},
			{Name: "living bones", Number: 1, Initiative: 50},
		}
		want := []string{"bear", "rogue", "living bones", "living bones"}

		for perm := 0; perm < 4; perm++ {
			shuffled := slices.Clone(actors)
			shuffled = append(shuffled[perm:], shuffled[:perm]...)
			slices.SortFunc(shuffled, Compare)
			var names []string
			for _, a := range shuffled {
				names = append(names, a.Name)
			}
			require.Equal(t, want, names, "rotation %d should sort identically", perm)
		}
	})
}

func TestMoveDescription(t *testing.T) {
	t.Run("disarm forces melee", func(t *testing.T) {
		m := &MoveDescription{Range: 4}
		require.Equal(t, 4, m.EffectiveRange(false))
		require.Equal(t, 0, m.EffectiveRange(true), "a disarmed mover attacks as a simple melee")
	})

	t.Run("standing offset lookup", func(t *testing.T) {
		m := &MoveDescription{AoE: []AoEOffset{
			{Offset: hexgrid.Hex{1, 0}},
			{Offset: hexgrid.Hex{0, 0}, Standing: true},
		}}
		got, ok := m.StandingOffset()
		require.True(t, ok)
		require.Equal(t, hexgrid.Hex{0, 0}, got)

		_, ok = (&MoveDescription{}).StandingOffset()
		require.False(t, ok, "a shape without a flagged cell has no standing offset")
	})
}
