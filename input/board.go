package input

import (
	"fmt"

	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// Board converts a decoded document into a validated board. Characters
// become the mover's opponents, the monster matching the mover label takes
// the mover side and carries the move description, and every other monster
// is its ally. A document without a move block resolves with an empty one:
// no attack, no movement, focus selection still runs.
func (d *Document) Board() (*board.Board, error) {
	actors := make([]*board.Actor, 0, len(d.Characters)+len(d.Monsters))
	byLabel := make(map[label]*board.Actor, cap(actors))
	for _, c := range d.Characters {
		a := &board.Actor{
			Name:        c.Name,
			At:          hexgrid.Hex{X: c.X, Y: c.Y},
			Side:        board.Ally,
			Initiative:  c.Initiative,
			Initiative2: c.Initiative2,
		}
		actors = append(actors, a)
		byLabel[label{c.Name, 0}] = a
	}
	for _, m := range d.Monsters {
		a := &board.Actor{
			Name:        m.Name,
			Number:      m.Number,
			At:          hexgrid.Hex{X: m.X, Y: m.Y},
			Side:        board.Enemy,
			Initiative:  m.Initiative,
			Initiative2: m.Initiative,
			SummonRank:  m.SummonRank,
		}
		if m.Name == d.MoverName && m.Number == d.MoverNumber {
			a.Side = board.Mover
			a.Move = d.Move.description()
		}
		actors = append(actors, a)
		byLabel[label{m.Name, m.Number}] = a
	}

	for _, s := range d.Statuses {
		a, ok := byLabel[label{s.Name, s.Number}]
		if !ok {
			return nil, fmt.Errorf("%w: status for unknown actor %v", ErrInvalidDocument, label{s.Name, s.Number})
		}
		a.Stunned = s.Stunned
		a.Disarmed = s.Disarmed
		a.Invisible = s.Invisible
	}

	cfg := board.Config{Actors: actors}
	for _, w := range d.Walls {
		seg, err := board.NewWallSegment(hexgrid.Hex{X: w.X1, Y: w.Y1}, hexgrid.Hex{X: w.X2, Y: w.Y2})
		if err != nil {
			return nil, err
		}
		cfg.Walls = append(cfg.Walls, seg)
	}
	for _, m := range d.Markers {
		kind, err := board.ParseKind(m.Kind)
		if err != nil {
			return nil, err
		}
		cfg.Markers = append(cfg.Markers, board.Marker{At: hexgrid.Hex{X: m.X, Y: m.Y}, Kind: kind})
	}
	return board.New(cfg)
}

// description converts the wire move into the board's form. A nil receiver
// yields an empty description rather than none: the board insists the
// mover carries one.
func (m *Move) description() *board.MoveDescription {
	if m == nil {
		return &board.MoveDescription{}
	}
	out := &board.MoveDescription{
		Range:       m.Range,
		TargetCount: m.Targets,
		Movement:    m.Movement,
		Heal:        m.Heal,
	}
	if m.Attack != nil {
		v := *m.Attack
		out.Attack = &v
	}
	for _, c := range m.AoE {
		out.AoE = append(out.AoE, board.AoEOffset{
			Offset:   hexgrid.Hex{X: c.X, Y: c.Y},
			Standing: c.Standing,
		})
	}
	return out
}
