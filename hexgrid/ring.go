package hexgrid

// Ring returns the hexes at exactly radius k around c, walked clockwise
// starting k steps east of c. Ring(c, 1) reproduces Neighbors order.
func Ring(c Hex, k int) []Hex {
	if k <= 0 {
		return []Hex{c}
	}
	out := make([]Hex, 0, 6*k)
	h := c.Add(directions[0].Scale(k))
	for i := 0; i < 6; i++ {
		d := directions[(i+2)%6]
		for j := 0; j < k; j++ {
			out = append(out, h)
			h = h.Add(d)
		}
	}
	return out
}

// Spiral returns rings 0..maxK around c concatenated. The resolver uses
// spiral order as the final deterministic tie-break between equal hexes.
func Spiral(c Hex, maxK int) []Hex {
	out := make([]Hex, 0, 1+3*maxK*(maxK+1))
	for k := 0; k <= maxK; k++ {
		out = append(out, Ring(c, k)...)
	}
	return out
}
