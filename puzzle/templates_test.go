package puzzle

import (
	"math/rand"
	"testing"
)

var testGrids = []Grid{
	{Cols: 6, Rows: 6},
	{Cols: 5, Rows: 7},
	{Cols: 7, Rows: 3},
	{Cols: 4, Rows: 4},
	{Cols: 2, Rows: 3},
	{Cols: 1, Rows: 1},
}

func checkCoverage(t *testing.T, g Grid, p Path) {
	t.Helper()
	if len(p) != g.CellCount() {
		t.Fatalf("path length = %d, want %d", len(p), g.CellCount())
	}
	seen := make(map[Cell]bool, len(p))
	for _, c := range p {
		if !g.Contains(c) {
			t.Fatalf("cell %v out of bounds for %dx%d", c, g.Cols, g.Rows)
		}
		if seen[c] {
			t.Fatalf("cell %v repeated", c)
		}
		seen[c] = true
	}
}

func TestTemplatesCoverEveryGrid(t *testing.T) {
	for tmpl := TemplateDFS; tmpl <= TemplateHilbert; tmpl++ {
		for _, g := range testGrids {
			rng := rand.New(rand.NewSource(1))
			p := GeneratePath(g, tmpl, rng)
			t.Run(tmpl.String(), func(t *testing.T) {
				checkCoverage(t, g, p)
			})
		}
	}
}

func TestAutoTemplateCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		p := GeneratePath(Grid{Cols: 6, Rows: 6}, TemplateAuto, rng)
		checkCoverage(t, Grid{Cols: 6, Rows: 6}, p)
	}
}

func TestSerpentineIsStepAdjacent(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}
	p := serpentinePath(g)
	for i := 0; i+1 < len(p); i++ {
		if !adjacent(p[i], p[i+1]) {
			t.Fatalf("serpentine step %d: %v -> %v not adjacent", i, p[i], p[i+1])
		}
	}
}

func TestDFSPathIsStepAdjacent(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}
	rng := rand.New(rand.NewSource(3))
	found := false
	for i := 0; i < 5 && !found; i++ {
		p := dfsPath(g, rng)
		if p == nil {
			continue
		}
		found = true
		checkCoverage(t, g, p)
		for j := 0; j+1 < len(p); j++ {
			if !adjacent(p[j], p[j+1]) {
				t.Fatalf("dfs step %d: %v -> %v not adjacent", j, p[j], p[j+1])
			}
		}
	}
	if !found {
		t.Fatal("dfs never produced a path on a 6x6 grid")
	}
}

func TestParseTemplate(t *testing.T) {
	for _, name := range TemplateNames() {
		if got := ParseTemplate(name).String(); got != name {
			t.Errorf("ParseTemplate(%q).String() = %q", name, got)
		}
	}
	if ParseTemplate("no-such-template") != TemplateAuto {
		t.Error("unknown template name should parse to auto")
	}
}

func TestCompletePathFillsGaps(t *testing.T) {
	g := Grid{Cols: 4, Rows: 4}
	partial := Path{{0, 0}, {3, 3}, {0, 0}, {9, 9}} // duplicate and out of bounds
	checkCoverage(t, g, completePath(g, partial))
}
