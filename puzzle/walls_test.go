package puzzle

import (
	"math/rand"
	"testing"
)

func TestWallsNeverCutThePath(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}
	rng := rand.New(rand.NewSource(2))
	for seed := 0; seed < 10; seed++ {
		path := TransformPath(g, GeneratePath(g, TemplateDFS, rng), rng)
		walls := PlaceWalls(g, path, 1.0, rng)
		for i := 0; i+1 < len(path); i++ {
			w, ok := wallBetween(path[i], path[i+1])
			if !ok {
				continue
			}
			if _, walled := walls[w]; walled {
				t.Fatalf("wall %v blocks consecutive path cells %v->%v", w, path[i], path[i+1])
			}
		}
	}
}

func TestWallCountAtFullProbability(t *testing.T) {
	// A step-adjacent 6x6 path uses 35 of the 60 grid edges; walling with
	// pct 1.0 must claim exactly the other 25.
	g := Grid{Cols: 6, Rows: 6}
	path := serpentinePath(g)
	walls := PlaceWalls(g, path, 1.0, rand.New(rand.NewSource(1)))
	if len(walls) != 25 {
		t.Fatalf("got %d walls, want 25", len(walls))
	}
}

func TestZeroProbabilityPlacesNoWalls(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}
	walls := PlaceWalls(g, serpentinePath(g), 0, rand.New(rand.NewSource(1)))
	if len(walls) != 0 {
		t.Fatalf("got %d walls, want 0", len(walls))
	}
}
