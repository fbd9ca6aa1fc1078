package hexgrid

import (
	"math"

	"golang.org/x/exp/slices"
)

// lineEpsilon nudges line endpoints off cell boundaries so that samples
// falling exactly between two hexes round consistently toward one side.
// Sampling once per side yields both candidate lines.
const lineEpsilon = 1e-6

// Lines returns the candidate hex-lines connecting a to b, endpoints
// included. Most pairs admit a single line; when the exact line runs along
// cell boundaries the two tie-broken variants are both returned, and a
// ranged attack needs only one of them to be clear.
func Lines(a, b Hex) [][]Hex {
	plus := line(a, b, lineEpsilon)
	minus := line(a, b, -lineEpsilon)
	if slices.Equal(plus, minus) {
		return [][]Hex{plus}
	}
	return [][]Hex{plus, minus}
}

// line samples the segment between the cube centers of a and b once per
// unit of distance, rounding each sample to its hex. The epsilon offset
// keeps q+r+s at zero so rounding stays well defined.
func line(a, b Hex, eps float64) []Hex {
	n := Distance(a, b)
	if n == 0 {
		return []Hex{a}
	}
	aq, ar, as := float64(a.X)+eps, float64(a.Y)+eps, float64(-a.X-a.Y)-2*eps
	bq, br, bs := float64(b.X)+eps, float64(b.Y)+eps, float64(-b.X-b.Y)-2*eps
	out := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, cubeRound(lerp(aq, bq, t), lerp(ar, br, t), lerp(as, bs, t)))
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// cubeRound rounds fractional cube coordinates to the nearest hex,
// recomputing the coordinate with the largest rounding error from the
// other two so the cube constraint holds.
func cubeRound(q, r, s float64) Hex {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return Hex{X: int(rq), Y: int(rr)}
}
