package puzzle

import "math/rand"

// PlaceWalls rolls every grid edge (right and down from each cell) as a
// wall candidate with probability pct, except edges whose two endpoints are
// consecutive in the generating path. Leaving those edges open is the
// guarantee that the path itself stays traversable no matter how the dice
// land. The wall set is rebuilt from scratch for every candidate layout.
func PlaceWalls(g Grid, p Path, pct float64, rng *rand.Rand) map[Wall]struct{} {
	onPath := make(map[Wall]struct{}, len(p))
	for i := 0; i+1 < len(p); i++ {
		if w, ok := wallBetween(p[i], p[i+1]); ok {
			onPath[w] = struct{}{}
		}
	}

	walls := make(map[Wall]struct{})
	if pct <= 0 {
		return walls
	}
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := Cell{X: x, Y: y}
			if x+1 < g.Cols {
				w := Wall{From: c, Dir: DirRight}
				if _, skip := onPath[w]; !skip && rng.Float64() < pct {
					walls[w] = struct{}{}
				}
			}
			if y+1 < g.Rows {
				w := Wall{From: c, Dir: DirDown}
				if _, skip := onPath[w]; !skip && rng.Float64() < pct {
					walls[w] = struct{}{}
				}
			}
		}
	}
	return walls
}
