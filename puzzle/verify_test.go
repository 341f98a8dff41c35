package puzzle

import (
	"math/rand"
	"testing"
	"time"
)

// serpentineLayout builds a 6x6 layout with anchors 1..12 at serpentine
// path indexes 0,3,...,33 in visiting order and no walls.
func serpentineLayout() *Layout {
	g := Grid{Cols: 6, Rows: 6}
	path := serpentinePath(g)
	anchors := make(map[Cell]int, 12)
	for j := 0; j < 12; j++ {
		anchors[path[j*3]] = j + 1
	}
	return &Layout{
		Grid:    g,
		Anchors: anchors,
		Walls:   map[Wall]struct{}{},
		Start:   path[0],
		Goal:    path[33],
	}
}

func TestVerifySerpentineLayout(t *testing.T) {
	l := serpentineLayout()
	if !Verify(l, 2*time.Second) {
		t.Fatal("serpentine layout with in-order anchors must verify")
	}
}

func TestSolveTrailWins(t *testing.T) {
	l := serpentineLayout()
	trail, ok := Solve(l, 2*time.Second)
	if !ok {
		t.Fatal("Solve found no trail")
	}
	if !IsWin(l, trail) {
		t.Fatalf("Solve returned a non-winning trail:\n%v", trail)
	}
}

func TestVerifyRejectsStartWithoutCheckpointOne(t *testing.T) {
	l := serpentineLayout()
	// Renumber so the start cell bears 2 instead of 1.
	for c, n := range l.Anchors {
		switch n {
		case 1:
			l.Anchors[c] = 2
		case 2:
			l.Anchors[c] = 1
		}
	}
	if Verify(l, time.Second) {
		t.Fatal("layout whose start bears checkpoint 2 must be rejected")
	}
}

func TestVerifySingleAnchor(t *testing.T) {
	g := Grid{Cols: 3, Rows: 3}
	path := serpentinePath(g)
	l := &Layout{
		Grid:    g,
		Anchors: map[Cell]int{path[0]: 1},
		Walls:   map[Wall]struct{}{},
		Start:   path[0],
		Goal:    path[len(path)-1],
	}
	// K == 1 leaves only the coverage and goal conditions.
	if !Verify(l, time.Second) {
		t.Fatal("single-anchor layout must verify")
	}
}

func TestVerifyRespectsWalls(t *testing.T) {
	// 2x2 with both edges out of the start walled off: nothing is solvable.
	g := Grid{Cols: 2, Rows: 2}
	l := &Layout{
		Grid:    g,
		Anchors: map[Cell]int{{0, 0}: 1, {0, 1}: 2},
		Walls: map[Wall]struct{}{
			{From: Cell{0, 0}, Dir: DirRight}: {},
			{From: Cell{0, 0}, Dir: DirDown}:  {},
		},
		Start: Cell{0, 0},
		Goal:  Cell{0, 1},
	}
	if Verify(l, time.Second) {
		t.Fatal("boxed-in start must not verify")
	}
}

func TestVerifyZeroBudgetFindsNothing(t *testing.T) {
	// Timeout means "not found", even on a trivially solvable layout.
	if Verify(serpentineLayout(), 0) {
		t.Fatal("zero budget must report not found")
	}
}

func TestVerifyGeneratedLayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := Grid{Cols: 6, Rows: 6}
	for i := 0; i < 5; i++ {
		path := TransformPath(g, GeneratePath(g, TemplateAuto, rng), rng)
		anchors, start, goal := PlaceAnchors(path, 12, 3, rng)
		l := &Layout{Grid: g, Anchors: anchors, Walls: map[Wall]struct{}{}, Start: start, Goal: goal}
		trail, ok := Solve(l, 3*time.Second)
		if ok && !IsWin(l, trail) {
			t.Fatalf("round %d: accepting branch does not replay to a win", i)
		}
	}
}
