package puzzle

// Cell is a grid position. X is column, Y is row.
type Cell struct {
	X, Y int
}

// Grid describes the playing field dimensions. Adjacency is 4-directional
// (up/down/left/right); diagonals never count.
type Grid struct {
	Cols, Rows int
}

// CellCount returns the number of cells in the grid.
func (g Grid) CellCount() int {
	return g.Cols * g.Rows
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Index maps a cell to its row-major index.
func (g Grid) Index(c Cell) int {
	return c.Y*g.Cols + c.X
}

// CellAt is the inverse of Index.
func (g Grid) CellAt(i int) Cell {
	return Cell{X: i % g.Cols, Y: i / g.Cols}
}

// adjacent reports whether a and b share a grid edge.
func adjacent(a, b Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Direction selects which edge of a cell a wall sits on. Walls are stored
// canonically on the lower-indexed cell, so only right and down exist.
type Direction int

const (
	DirRight Direction = iota
	DirDown
)

// Wall blocks the edge between From and its right or down neighbor. The
// block applies from both sides.
type Wall struct {
	From Cell
	Dir  Direction
}

// wallBetween returns the canonical wall for the edge between two adjacent
// cells. ok is false if the cells are not adjacent.
func wallBetween(a, b Cell) (w Wall, ok bool) {
	if !adjacent(a, b) {
		return Wall{}, false
	}
	switch {
	case b.X == a.X+1:
		return Wall{From: a, Dir: DirRight}, true
	case a.X == b.X+1:
		return Wall{From: b, Dir: DirRight}, true
	case b.Y == a.Y+1:
		return Wall{From: a, Dir: DirDown}, true
	default:
		return Wall{From: b, Dir: DirDown}, true
	}
}

// Layout is a complete puzzle: the grid, numbered anchors, walls, and the
// start/goal cells (anchor 1 and anchor K). It is a pure value; the path
// that produced it is discarded during generation.
type Layout struct {
	ID      string
	Grid    Grid
	Anchors map[Cell]int
	Walls   map[Wall]struct{}
	Start   Cell
	Goal    Cell
}

// MaxAnchor returns the highest checkpoint number in the layout, or 0 if it
// has no anchors.
func (l *Layout) MaxAnchor() int {
	max := 0
	for _, n := range l.Anchors {
		if n > max {
			max = n
		}
	}
	return max
}

// Blocked reports whether a wall blocks the edge between a and b. Cells that
// are not adjacent are never considered blocked.
func (l *Layout) Blocked(a, b Cell) bool {
	w, ok := wallBetween(a, b)
	if !ok {
		return false
	}
	_, blocked := l.Walls[w]
	return blocked
}

// Neighbors returns the in-bounds, unblocked neighbors of c, up to four.
func (l *Layout) Neighbors(c Cell) []Cell {
	candidates := [4]Cell{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}
	out := make([]Cell, 0, 4)
	for _, n := range candidates {
		if l.Grid.Contains(n) && !l.Blocked(c, n) {
			out = append(out, n)
		}
	}
	return out
}
