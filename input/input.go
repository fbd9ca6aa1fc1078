// Package input decodes and validates the JSON documents describing a
// board position and the moving monster's turn. Decoding runs in three
// layers: the bytes must parse as JSON, the parsed value must satisfy the
// embedded schema, and the resulting document must pass the semantic
// checks the schema cannot express (uniqueness, cross references).
package input

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// ErrInvalidDocument wraps every decode failure, whichever layer caught it.
var ErrInvalidDocument = errors.New("invalid input document")

//go:embed schema.json
var schemaText string

var schema = jsonschema.MustCompileString("input.schema.json", schemaText)

// Document is the decoded form of an input file. Characters are the
// monster's opponents; the monster named by MoverName and MoverNumber is
// the one whose turn is being resolved.
type Document struct {
	Characters  []Character `json:"characters"`
	Monsters    []Monster   `json:"monsters"`
	MoverName   string      `json:"mm_name"`
	MoverNumber int         `json:"mm_num"`
	Move        *Move       `json:"move,omitempty"`
	Walls       []Wall      `json:"walls,omitempty"`
	Markers     []Marker    `json:"markers,omitempty"`
	Statuses    []Status    `json:"statuses,omitempty"`
}

// Character is a player figure. Initiative is the leading card's value,
// Initiative2 the second card's; the pair must be ordered.
type Character struct {
	Name        string `json:"name"`
	Initiative  int    `json:"initiative"`
	Initiative2 int    `json:"initiative2"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}

// Monster is a monster figure, identified by the (name, number) pair on
// its standee. SummonRank is zero for non-summons.
type Monster struct {
	Name       string `json:"name"`
	Number     int    `json:"number"`
	Initiative int    `json:"initiative"`
	SummonRank int    `json:"summon_rank,omitempty"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// Move carries the action card of the moving monster. A nil Attack means
// the turn has no attack at all; zero means an attack of no damage.
type Move struct {
	Attack   *int      `json:"attack,omitempty"`
	Range    int       `json:"range,omitempty"`
	Targets  int       `json:"targets,omitempty"`
	Movement int       `json:"movement,omitempty"`
	Heal     int       `json:"heal,omitempty"`
	AoE      []AoECell `json:"aoe,omitempty"`
}

// AoECell is one hex of an area attack, as an offset from the anchor.
type AoECell struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Standing bool `json:"standing,omitempty"`
}

// Wall is an impassable edge between the two named hexes.
type Wall struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Marker tags a hex with terrain or an overlay tile.
type Marker struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// Status flags an actor by name (characters) or by name and number
// (monsters). Absent flags default to false.
type Status struct {
	Name      string `json:"name"`
	Number    int    `json:"number,omitempty"`
	Stunned   bool   `json:"stunned,omitempty"`
	Disarmed  bool   `json:"disarmed,omitempty"`
	Invisible bool   `json:"invisible,omitempty"`
}

// Decode parses and validates an input document.
func Decode(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	log.Debug().Msgf("decoded input: %d characters, %d monsters, mover (%s, %d)",
		len(d.Characters), len(d.Monsters), d.MoverName, d.MoverNumber)
	return &d, nil
}

// label identifies an actor. Characters carry number zero.
type label struct {
	name   string
	number int
}

func (l label) String() string {
	if l.number == 0 {
		return l.name
	}
	return fmt.Sprintf("(%s, %d)", l.name, l.number)
}

func (d *Document) validate() error {
	names := make(map[string]bool, len(d.Characters))
	for _, c := range d.Characters {
		if c.Initiative > c.Initiative2 {
			return fmt.Errorf("%w: character %s: initiative must be less than or equal to initiative2: %d %d",
				ErrInvalidDocument, c.Name, c.Initiative, c.Initiative2)
		}
		if names[c.Name] {
			return fmt.Errorf("%w: duplicate character name: %s", ErrInvalidDocument, c.Name)
		}
		names[c.Name] = true
	}

	labels := make(map[label]bool, len(d.Monsters))
	for _, m := range d.Monsters {
		l := label{m.Name, m.Number}
		if labels[l] {
			return fmt.Errorf("%w: duplicate monster label: %v", ErrInvalidDocument, l)
		}
		labels[l] = true
	}

	occupied := make(map[hexgrid.Hex]label, len(d.Characters)+len(d.Monsters))
	for _, c := range d.Characters {
		h := hexgrid.Hex{X: c.X, Y: c.Y}
		if prev, ok := occupied[h]; ok {
			return fmt.Errorf("%w: two objects occupy the same hex: %v, %v", ErrInvalidDocument, prev, label{c.Name, 0})
		}
		occupied[h] = label{c.Name, 0}
	}
	for _, m := range d.Monsters {
		h := hexgrid.Hex{X: m.X, Y: m.Y}
		if prev, ok := occupied[h]; ok {
			return fmt.Errorf("%w: two objects occupy the same hex: %v, %v", ErrInvalidDocument, prev, label{m.Name, m.Number})
		}
		occupied[h] = label{m.Name, m.Number}
	}

	if !labels[label{d.MoverName, d.MoverNumber}] {
		return fmt.Errorf("%w: %w: moving monster %v not on the board",
			ErrInvalidDocument, board.ErrInvalidMover, label{d.MoverName, d.MoverNumber})
	}

	for _, s := range d.Statuses {
		l := label{s.Name, s.Number}
		known := labels[l] || (s.Number == 0 && names[s.Name])
		if !known {
			return fmt.Errorf("%w: status for unknown actor %v", ErrInvalidDocument, l)
		}
	}

	if d.Move != nil {
		standing := 0
		for _, c := range d.Move.AoE {
			if c.Standing {
				standing++
			}
		}
		if standing > 1 {
			return fmt.Errorf("%w: attack area names %d standing hexes, at most one is allowed",
				ErrInvalidDocument, standing)
		}
	}
	return nil
}
