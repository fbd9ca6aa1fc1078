package experiments

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
	"github.com/stevenpelley/gloomhaven-monster-ai/rooms"
)

var characterNames = []string{"brute", "tinkerer", "spellweaver", "scoundrel", "cragheart", "mindthief"}

// generateBoards builds a deterministic board set: the same seed always
// yields the same boards, so every config measures identical work.
func generateBoards(count int) []*board.Board {
	lib, err := rooms.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load room library: %v", err))
	}
	rng := rand.New(rand.NewSource(Seed))
	boards := make([]*board.Board, 0, count)
	for len(boards) < count {
		boards = append(boards, generateBoard(rng, lib))
	}
	return boards
}

func generateBoard(rng *rand.Rand, lib *rooms.Library) *board.Board {
	layout := generateLayout(rng, lib)
	for _, d := range layout.Doors() {
		if rng.Intn(2) == 0 {
			if err := layout.Open(d); err != nil {
				panic(fmt.Sprintf("failed to open generated door: %v", err))
			}
		}
	}

	// Floor hexes minus the doors, permuted: actors first, then terrain.
	doors := map[hexgrid.Hex]bool{}
	for _, d := range layout.Doors() {
		doors[d] = true
	}
	open := []hexgrid.Hex{}
	for _, h := range layout.Floor() {
		if !doors[h] {
			open = append(open, h)
		}
	}
	perm := rng.Perm(len(open))

	numCharacters := 2 + rng.Intn(3)
	numMonsters := 1 + rng.Intn(3)
	moverNumber := 1 + rng.Intn(numMonsters)

	actors := []*board.Actor{}
	for i := 0; i < numCharacters; i++ {
		initiative := 1 + rng.Intn(100)
		actors = append(actors, &board.Actor{
			Name:        characterNames[i],
			At:          open[perm[i]],
			Side:        board.Ally,
			Initiative:  initiative,
			Initiative2: initiative + rng.Intn(101-initiative),
			Invisible:   rng.Intn(6) == 0,
		})
	}
	for n := 1; n <= numMonsters; n++ {
		a := &board.Actor{
			Name:       "living bones",
			Number:     n,
			At:         open[perm[numCharacters+n-1]],
			Side:       board.Enemy,
			Initiative: 1 + rng.Intn(100),
		}
		a.Initiative2 = a.Initiative
		if n == moverNumber {
			a.Side = board.Mover
			a.Move = generateMove(rng)
			a.Stunned = rng.Intn(6) == 0
			a.Disarmed = rng.Intn(6) == 0
		}
		actors = append(actors, a)
	}

	cfg := layout.Config(actors)
	used := numCharacters + numMonsters
	for i := 0; i < rng.Intn(4); i++ {
		cfg.Markers = append(cfg.Markers, board.Marker{
			At:   open[perm[used+i]],
			Kind: board.DifficultTerrain,
		})
	}

	bd, err := board.New(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to build generated board: %v", err))
	}
	return bd
}

func generateLayout(rng *rand.Rand, lib *rooms.Library) *rooms.Layout {
	place := func(name string, at hexgrid.Hex) *rooms.Placed {
		room, err := lib.Room(name)
		if err != nil {
			panic(fmt.Sprintf("failed to look up room: %v", err))
		}
		return room.Place(at, 0)
	}

	var layout *rooms.Layout
	var err error
	if rng.Intn(2) == 0 {
		layout, err = rooms.Merge(
			place("antechamber", hexgrid.Hex{}),
			place("corridor", hexgrid.Hex{X: 3, Y: 0}),
			place("hall", hexgrid.Hex{X: 6, Y: 0}),
		)
	} else {
		layout, err = rooms.Merge(
			place("vault", hexgrid.Hex{}),
			place("doorway", hexgrid.Hex{X: 2, Y: 0}),
			place("antechamber", hexgrid.Hex{X: 3, Y: 0}),
		)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to merge generated layout: %v", err))
	}
	return layout
}

func generateMove(rng *rand.Rand) *board.MoveDescription {
	move := &board.MoveDescription{
		Movement:    1 + rng.Intn(4),
		TargetCount: 1 + rng.Intn(2),
	}
	if rng.Intn(5) > 0 {
		attack := 2 + rng.Intn(3)
		move.Attack = &attack
		if rng.Intn(2) == 0 {
			move.Range = 1 + rng.Intn(3)
		}
		if rng.Intn(4) == 0 {
			move.AoE = []board.AoEOffset{
				{Offset: hexgrid.Hex{X: 1, Y: 0}},
				{Offset: hexgrid.Hex{X: 0, Y: 1}},
			}
		}
	}
	return move
}
