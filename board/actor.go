package board

import (
	"strings"

	"github.com/stevenpelley/gloomhaven-monster-ai/hexgrid"
)

// Side classifies an actor for one invocation. Allies are the party
// characters the mover hunts; enemies are monsters. Exactly one enemy is
// the mover.
type Side int

const (
	Ally Side = iota
	Enemy
	Mover
)

func (s Side) String() string {
	switch s {
	case Ally:
		return "ally"
	case Enemy:
		return "enemy"
	case Mover:
		return "mover"
	}
	return "unknown"
}

// Actor is a character, monster, or summon standing on the board.
type Actor struct {
	Name   string
	Number int // placard number, 0 when absent
	At     hexgrid.Hex
	Side   Side

	Initiative  int
	Initiative2 int // secondary initiative, 0 when absent
	SummonRank  int // 0 = not a summon

	Invisible bool
	Stunned   bool
	Disarmed  bool

	// Move describes the mover's turn. Nil for every other actor.
	Move *MoveDescription
}

// Opposes reports whether o stands on the side a targets: monsters hunt
// allies, allies hunt monsters (the mover included).
func (a *Actor) Opposes(o *Actor) bool {
	return (a.Side == Ally) != (o.Side == Ally)
}

// Compare orders actors by the composite initiative key: initiative, then
// secondary initiative, then summon rank with 0 sorted last, with name and
// placard number making the order total. This is the deterministic order
// for tie sets and target lists.
func Compare(a, b *Actor) int {
	if a.Initiative != b.Initiative {
		return a.Initiative - b.Initiative
	}
	if a.Initiative2 != b.Initiative2 {
		return a.Initiative2 - b.Initiative2
	}
	if ra, rb := summonOrder(a.SummonRank), summonOrder(b.SummonRank); ra != rb {
		return ra - rb
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return a.Number - b.Number
}

// summonOrder maps rank 0 (not a summon) after every real rank.
func summonOrder(rank int) int {
	if rank == 0 {
		return int(^uint(0) >> 1)
	}
	return rank
}

// MoveDescription is the mover's turn: what it may do once it engages.
// Zero values mean "absent": range 0 is melee, movement 0 cannot move,
// target count below 2 attacks a single target.
type MoveDescription struct {
	Attack      *int // nil = the turn has no attack at all
	Range       int
	TargetCount int
	Movement    int
	Heal        int // carried through for the assistant, never acted on here
	AoE         []AoEOffset
}

// AoEOffset is one cell of an area-of-effect shape, relative to the
// mover's own hex. At most one offset is flagged Standing: the cell the
// attacker itself must occupy.
type AoEOffset struct {
	Offset   hexgrid.Hex
	Standing bool
}

// StandingOffset returns the mandatory actor-standing offset, if the
// shape declares one.
func (m *MoveDescription) StandingOffset() (hexgrid.Hex, bool) {
	for _, o := range m.AoE {
		if o.Standing {
			return o.Offset, true
		}
	}
	return hexgrid.Hex{}, false
}

// EffectiveRange folds the disarm rule in: a disarmed mover attacks as if
// by a simple melee, whatever its card says.
func (m *MoveDescription) EffectiveRange(disarmed bool) int {
	if disarmed {
		return 0
	}
	return m.Range
}
