// Package rooms carries a small library of map tiles and composes placed
// tiles into walled board layouts. Tiles never overlap; walls follow the
// outline of each placed tile, and a door hex adjacent to another tile's
// floor opens a passage guarded by a closed door marker.
package rooms

import (
	_ "embed"
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// ErrInvalidLayout wraps every library and composition failure.
var ErrInvalidLayout = errors.New("invalid room layout")

//go:embed rooms.yaml
var libraryText []byte

// Library is a named set of room tiles.
type Library struct {
	rooms map[string]*Room
}

// Room is one tile in library coordinates. Doors are floor hexes that may
// connect to a neighboring tile once placed.
type Room struct {
	Name  string
	Hexes []hexgrid.Hex
	Doors []hexgrid.Hex
}

// Placed is a room transformed into board coordinates.
type Placed struct {
	Room  *Room
	Hexes []hexgrid.Hex
	Doors []hexgrid.Hex

	floor map[hexgrid.Hex]bool
}

type libraryFile struct {
	Rooms map[string]roomDef `yaml:"rooms"`
}

type roomDef struct {
	Hexes []hexgrid.Hex `yaml:"hexes"`
	Doors []hexgrid.Hex `yaml:"doors"`
}

// Load parses and validates the embedded tile library.
func Load() (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(libraryText, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	lib := &Library{rooms: make(map[string]*Room, len(file.Rooms))}
	for name, def := range file.Rooms {
		room := &Room{Name: name, Hexes: def.Hexes, Doors: def.Doors}
		if err := room.validate(); err != nil {
			return nil, err
		}
		lib.rooms[name] = room
	}
	return lib, nil
}

// Names lists the library's tiles in a stable order.
func (l *Library) Names() []string {
	names := maps.Keys(l.rooms)
	slices.Sort(names)
	return names
}

// Room looks a tile up by name.
func (l *Library) Room(name string) (*Room, error) {
	room, ok := l.rooms[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown room %q", ErrInvalidLayout, name)
	}
	return room, nil
}

func (r *Room) validate() error {
	if len(r.Hexes) == 0 {
		return fmt.Errorf("%w: room %s has no floor", ErrInvalidLayout, r.Name)
	}
	floor := make(map[hexgrid.Hex]bool, len(r.Hexes))
	for _, h := range r.Hexes {
		if floor[h] {
			return fmt.Errorf("%w: room %s repeats hex %v", ErrInvalidLayout, r.Name, h)
		}
		floor[h] = true
	}
	for _, d := range r.Doors {
		if !floor[d] {
			return fmt.Errorf("%w: room %s declares a door off its floor at %v", ErrInvalidLayout, r.Name, d)
		}
	}

	// Flood fill from any hex; a tile must be one connected piece.
	reached := map[hexgrid.Hex]bool{r.Hexes[0]: true}
	frontier := []hexgrid.Hex{r.Hexes[0]}
	for len(frontier) > 0 {
		h := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, n := range h.Neighbors() {
			if floor[n] && !reached[n] {
				reached[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	if len(reached) != len(r.Hexes) {
		return fmt.Errorf("%w: room %s is not connected", ErrInvalidLayout, r.Name)
	}
	return nil
}

// Place transforms the tile into board coordinates: a clockwise rotation
// of k sixth turns about the tile origin, then a translation to at.
func (r *Room) Place(at hexgrid.Hex, rotation int) *Placed {
	p := &Placed{
		Room:  r,
		Hexes: make([]hexgrid.Hex, len(r.Hexes)),
		Doors: make([]hexgrid.Hex, len(r.Doors)),
		floor: make(map[hexgrid.Hex]bool, len(r.Hexes)),
	}
	for i, h := range r.Hexes {
		p.Hexes[i] = h.Rotate(rotation).Add(at)
		p.floor[p.Hexes[i]] = true
	}
	for i, d := range r.Doors {
		p.Doors[i] = d.Rotate(rotation).Add(at)
	}
	return p
}

// Layout is a set of merged tiles: the union floor, the sealing walls,
// and the connecting doors with their open or closed state.
type Layout struct {
	floor map[hexgrid.Hex]bool
	walls map[board.WallSegment]struct{}
	doors map[hexgrid.Hex]bool // true while closed
}

// Merge composes placed tiles into one layout. Tiles may touch but never
// overlap; every edge leaving a tile becomes a wall unless a door hex
// faces the neighboring tile's floor.
func Merge(placed ...*Placed) (*Layout, error) {
	if len(placed) == 0 {
		return nil, fmt.Errorf("%w: no rooms placed", ErrInvalidLayout)
	}

	floor := map[hexgrid.Hex]bool{}
	owner := map[hexgrid.Hex]string{}
	for _, p := range placed {
		for _, h := range p.Hexes {
			if prev, ok := owner[h]; ok {
				return nil, fmt.Errorf("%w: rooms %s and %s overlap at %v", ErrInvalidLayout, prev, p.Room.Name, h)
			}
			owner[h] = p.Room.Name
			floor[h] = true
		}
	}

	walls := map[board.WallSegment]struct{}{}
	for _, p := range placed {
		for _, h := range p.Hexes {
			for _, n := range h.Neighbors() {
				if !p.floor[n] {
					walls[wallBetween(h, n)] = struct{}{}
				}
			}
		}
	}

	doors := map[hexgrid.Hex]bool{}
	for _, p := range placed {
		for _, d := range p.Doors {
			connected := false
			for _, n := range d.Neighbors() {
				if floor[n] && !p.floor[n] {
					delete(walls, wallBetween(d, n))
					connected = true
				}
			}
			if connected {
				doors[d] = true
			}
		}
	}
	return &Layout{floor: floor, walls: walls, doors: doors}, nil
}

func wallBetween(a, b hexgrid.Hex) board.WallSegment {
	seg, err := board.NewWallSegment(a, b)
	if err != nil {
		panic(err)
	}
	return seg
}

// Contains reports whether h is part of the layout's floor.
func (l *Layout) Contains(h hexgrid.Hex) bool {
	return l.floor[h]
}

// Floor lists the layout's hexes in a stable order.
func (l *Layout) Floor() []hexgrid.Hex {
	hexes := maps.Keys(l.floor)
	sortHexes(hexes)
	return hexes
}

// Doors lists the connecting doors in a stable order, open or closed.
func (l *Layout) Doors() []hexgrid.Hex {
	hexes := maps.Keys(l.doors)
	sortHexes(hexes)
	return hexes
}

// Open marks a connecting door as opened: its hex becomes plain floor in
// every config built afterwards.
func (l *Layout) Open(h hexgrid.Hex) error {
	if _, ok := l.doors[h]; !ok {
		return fmt.Errorf("%w: no door at %v", ErrInvalidLayout, h)
	}
	l.doors[h] = false
	return nil
}

// Config builds a board configuration for the layout with the given
// actors. Closed doors become door markers; opened ones are plain floor.
func (l *Layout) Config(actors []*board.Actor) board.Config {
	cfg := board.Config{Actors: actors}
	cfg.Walls = maps.Keys(l.walls)
	slices.SortFunc(cfg.Walls, func(a, b board.WallSegment) int {
		if c := compareHexes(a.A, b.A); c != 0 {
			return c
		}
		return compareHexes(a.B, b.B)
	})
	for _, d := range l.Doors() {
		if l.doors[d] {
			cfg.Markers = append(cfg.Markers, board.Marker{At: d, Kind: board.ClosedDoor})
		}
	}
	return cfg
}

func compareHexes(a, b hexgrid.Hex) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

func sortHexes(hexes []hexgrid.Hex) {
	slices.SortFunc(hexes, compareHexes)
}
