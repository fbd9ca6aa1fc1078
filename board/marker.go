package board

import (
	"fmt"

	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// Kind tags a board marker. The set is closed: passability and entry cost
// are exhaustive lookups, not an extension point.
type Kind int

const (
	Obstacle Kind = iota // blocks entry
	DifficultTerrain     // entry costs 2
	HazardousTerrain
	ClosedDoor // blocks entry until opened
	Trap
	Treasure
	Coin
)

var kindNames = map[Kind]string{
	Obstacle:         "obstacle",
	DifficultTerrain: "difficult_terrain",
	HazardousTerrain: "hazardous_terrain",
	ClosedDoor:       "closed_door",
	Trap:             "trap",
	Treasure:         "treasure",
	Coin:             "coin",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	panic(fmt.Sprintf("unexpected marker kind %d", int(k)))
}

// ParseKind maps the wire name of a marker kind back to its tag.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown marker kind %q", ErrMalformedBoard, name)
}

// Passable reports whether a hex carrying this marker can be entered.
func (k Kind) Passable() bool {
	switch k {
	case Obstacle, ClosedDoor:
		return false
	case DifficultTerrain, HazardousTerrain, Trap, Treasure, Coin:
		return true
	}
	panic(fmt.Sprintf("unexpected marker kind %d", int(k)))
}

// EntryCost returns the movement points charged for entering a hex with
// this marker. Only valid for passable kinds.
func (k Kind) EntryCost() int {
	switch k {
	case DifficultTerrain:
		return 2
	case HazardousTerrain, Trap, Treasure, Coin:
		return 1
	}
	panic(fmt.Sprintf("entry cost of impassable marker kind %v", k))
}

// Marker places a kind tag on a hex.
type Marker struct {
	At   hexgrid.Hex
	Kind Kind
}
