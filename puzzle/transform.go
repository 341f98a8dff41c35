package puzzle

import "math/rand"

// TransformPath applies a random rotation, independent 50% horizontal and
// vertical mirrors, and a 50% reversal to the path. Every step is a
// bijection over the cell set (or a sequence reversal), so the coverage
// invariant is preserved.
//
// Rotations remap coordinates without resizing the grid, so quarter turns
// are only valid when the grid is square; on rectangles they degrade to the
// nearest half turn. The shipped presets are all square, so in practice the
// full set of rotations is always available.
func TransformPath(g Grid, p Path, rng *rand.Rand) Path {
	out := make(Path, len(p))
	copy(out, p)

	quarter := rng.Intn(4)
	if g.Cols != g.Rows && quarter%2 == 1 {
		quarter--
	}
	for i, c := range out {
		out[i] = rotateCell(g, c, quarter)
	}

	if rng.Intn(2) == 0 {
		for i, c := range out {
			out[i] = Cell{X: g.Cols - 1 - c.X, Y: c.Y}
		}
	}
	if rng.Intn(2) == 0 {
		for i, c := range out {
			out[i] = Cell{X: c.X, Y: g.Rows - 1 - c.Y}
		}
	}

	if rng.Intn(2) == 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func rotateCell(g Grid, c Cell, quarter int) Cell {
	switch quarter {
	case 1:
		return Cell{X: g.Rows - 1 - c.Y, Y: c.X}
	case 2:
		return Cell{X: g.Cols - 1 - c.X, Y: g.Rows - 1 - c.Y}
	case 3:
		return Cell{X: c.Y, Y: g.Cols - 1 - c.X}
	default:
		return c
	}
}
