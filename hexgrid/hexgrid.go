package hexgrid

import "fmt"

// Hex addresses a cell in axial coordinates. The implicit third cube
// coordinate is -(X+Y).
type Hex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// directions holds the 6 unit steps in clockwise order starting east.
// This order is the deterministic tie-break ordering used by the resolver.
var directions = [6]Hex{
	{1, 0},  // east
	{0, 1},  // southeast
	{-1, 1}, // southwest
	{-1, 0}, // west
	{0, -1}, // northwest
	{1, -1}, // northeast
}

func (h Hex) Add(o Hex) Hex { return Hex{h.X + o.X, h.Y + o.Y} }

func (h Hex) Sub(o Hex) Hex { return Hex{h.X - o.X, h.Y - o.Y} }

func (h Hex) Scale(k int) Hex { return Hex{h.X * k, h.Y * k} }

// Neighbor returns the adjacent hex in direction i (0=east, clockwise).
func (h Hex) Neighbor(i int) Hex {
	return h.Add(directions[i])
}

// Neighbors returns the 6 adjacent hexes in clockwise order starting east.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range directions {
		out[i] = h.Add(d)
	}
	return out
}

// RotateRight returns h rotated 60 degrees clockwise about the origin:
// cube (q, r, s) maps to (-r, -s, -q).
func (h Hex) RotateRight() Hex {
	return Hex{X: -h.Y, Y: h.X + h.Y}
}

// Rotate returns h rotated k*60 degrees clockwise about the origin.
// Negative k rotates counterclockwise.
func (h Hex) Rotate(k int) Hex {
	k = ((k % 6) + 6) % 6
	for i := 0; i < k; i++ {
		h = h.RotateRight()
	}
	return h
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.X, h.Y)
}

// Distance returns the straight-line hex distance between a and b,
// ignoring walls, terrain, and occupancy.
func Distance(a, b Hex) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	ds := abs((a.X + a.Y) - (b.X + b.Y))
	return max(dx, dy, ds)
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Hex) bool {
	return Distance(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
