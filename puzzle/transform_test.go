package puzzle

import (
	"math/rand"
	"testing"
)

func TestTransformPreservesCoverage(t *testing.T) {
	for _, g := range testGrids {
		base := serpentinePath(g)
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			checkCoverage(t, g, TransformPath(g, base, rng))
		}
	}
}

func TestTransformLeavesInputAlone(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}
	base := serpentinePath(g)
	want := make(Path, len(base))
	copy(want, base)
	TransformPath(g, base, rand.New(rand.NewSource(5)))
	for i := range base {
		if base[i] != want[i] {
			t.Fatalf("input path mutated at %d", i)
		}
	}
}

func TestRotateCellSquare(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	cases := []struct {
		quarter int
		in, out Cell
	}{
		{0, Cell{1, 2}, Cell{1, 2}},
		{1, Cell{0, 0}, Cell{3, 0}},
		{2, Cell{0, 0}, Cell{3, 3}},
		{3, Cell{0, 0}, Cell{0, 3}},
		{1, Cell{1, 2}, Cell{1, 1}},
	}
	for _, c := range cases {
		if got := rotateCell(g, c.in, c.quarter); got != c.out {
			t.Errorf("rotate %v by %d = %v, want %v", c.in, c.quarter, got, c.out)
		}
	}
}
