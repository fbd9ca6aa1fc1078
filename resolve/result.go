package resolve

import (
	"github.com/stevenpelley/gloomhaven-monster-ai/board"
	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// ActorRef identifies an actor in a result: name plus placard number for
// monsters, name alone for characters.
type ActorRef struct {
	Name   string `json:"name"`
	Number int    `json:"number,omitempty"`
}

func ref(a *board.Actor) ActorRef {
	return ActorRef{Name: a.Name, Number: a.Number}
}

// Branch is the complete resolution for one focus. Ties during focus
// selection produce several branches, left for the table to pick from.
type Branch struct {
	Focus       ActorRef      `json:"focus"`
	Targets     []ActorRef    `json:"targets"`
	AttackHexes []hexgrid.Hex `json:"attack_hexes"`
	ClosestHex  *hexgrid.Hex  `json:"closest_hex,omitempty"`
}

// Result is one resolved monster turn. With a single branch the flat
// fields mirror it. With several tied branches Focus is null and Targets
// lists the tied foci. With no candidate at all everything is empty.
type Result struct {
	Focus       *ActorRef     `json:"focus"`
	Targets     []ActorRef    `json:"targets"`
	AttackHexes []hexgrid.Hex `json:"attack_hexes"`
	ClosestHex  *hexgrid.Hex  `json:"closest_hex,omitempty"`
	Branches    []Branch      `json:"branches"`
}

func assemble(branches []Branch) *Result {
	res := &Result{
		Targets:     []ActorRef{},
		AttackHexes: []hexgrid.Hex{},
		Branches:    branches,
	}
	switch len(branches) {
	case 0:
	case 1:
		b := branches[0]
		res.Focus = &b.Focus
		res.Targets = b.Targets
		res.AttackHexes = b.AttackHexes
		res.ClosestHex = b.ClosestHex
	default:
		for _, b := range branches {
			res.Targets = append(res.Targets, b.Focus)
		}
	}
	return res
}
