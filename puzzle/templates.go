package puzzle

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// Path is an ordering of every cell in a grid. Generators aim for
// step-adjacent orderings (so the path doubles as a guaranteed solving
// route), but the hard invariant is coverage: length cols*rows with every
// cell appearing exactly once.
type Path []Cell

// Template names one of the fixed path generation strategies.
type Template int

const (
	TemplateAuto Template = iota
	TemplateDFS
	TemplateSerpentine
	TemplateSpiral
	TemplateColumn
	TemplateDiagonal
	TemplateCenter
	TemplateRings
	TemplateBlock
	TemplateTile
	TemplateCheckerboard
	TemplateChecker2
	TemplateSpokes
	TemplateTrueSpokes
	TemplateCorner
	TemplatePerimeter
	TemplateDiagStripes
	TemplateHilbert
)

var templateNames = map[Template]string{
	TemplateAuto:         "auto",
	TemplateDFS:          "dfs",
	TemplateSerpentine:   "serpentine",
	TemplateSpiral:       "spiral",
	TemplateColumn:       "column",
	TemplateDiagonal:     "diagonal",
	TemplateCenter:       "center",
	TemplateRings:        "rings",
	TemplateBlock:        "block",
	TemplateTile:         "tile",
	TemplateCheckerboard: "checkerboard",
	TemplateChecker2:     "checker2",
	TemplateSpokes:       "spokes",
	TemplateTrueSpokes:   "truespokes",
	TemplateCorner:       "corner",
	TemplatePerimeter:    "perimeter",
	TemplateDiagStripes:  "diagstripes",
	TemplateHilbert:      "hilbert",
}

func (t Template) String() string {
	if s, ok := templateNames[t]; ok {
		return s
	}
	return "auto"
}

// ParseTemplate maps a template name to its Template. Unknown names map to
// TemplateAuto, which in turn means "weighted random pick".
func ParseTemplate(name string) Template {
	for t, s := range templateNames {
		if s == name {
			return t
		}
	}
	return TemplateAuto
}

// TemplateNames lists every recognized template name in a stable order.
func TemplateNames() []string {
	names := make([]string, 0, len(templateNames))
	for t := TemplateAuto; t <= TemplateHilbert; t++ {
		names = append(names, t.String())
	}
	return names
}

// templateWeights drives the auto pick. The DFS search and the base
// serpentine carry the heaviest weight; the decorative templates share the
// rest.
var templateWeights = []struct {
	t Template
	w int
}{
	{TemplateDFS, 30},
	{TemplateSerpentine, 15},
	{TemplateSpiral, 6},
	{TemplateColumn, 6},
	{TemplateDiagonal, 4},
	{TemplateCenter, 4},
	{TemplateRings, 4},
	{TemplateBlock, 4},
	{TemplateTile, 4},
	{TemplateCheckerboard, 3},
	{TemplateChecker2, 3},
	{TemplateSpokes, 3},
	{TemplateTrueSpokes, 3},
	{TemplateCorner, 3},
	{TemplatePerimeter, 3},
	{TemplateDiagStripes, 3},
	{TemplateHilbert, 2},
}

func pickTemplate(rng *rand.Rand) Template {
	total := 0
	for _, tw := range templateWeights {
		total += tw.w
	}
	roll := rng.Intn(total)
	for _, tw := range templateWeights {
		roll -= tw.w
		if roll < 0 {
			return tw.t
		}
	}
	return TemplateSerpentine
}

// GeneratePath builds a full-coverage path for the grid using the given
// template. TemplateAuto performs the weighted pick. A failed DFS search
// falls back to the serpentine template for this call only.
func GeneratePath(g Grid, t Template, rng *rand.Rand) Path {
	if t == TemplateAuto {
		t = pickTemplate(rng)
	}
	var p Path
	switch t {
	case TemplateDFS:
		p = dfsPath(g, rng)
		if p == nil {
			Log.WithField("grid", g).Debug("dfs path search failed, falling back to serpentine")
			p = serpentinePath(g)
		}
	case TemplateSerpentine:
		p = serpentinePath(g)
	case TemplateSpiral:
		p = spiralPath(g)
	case TemplateColumn:
		p = columnPath(g)
	case TemplateDiagonal:
		p = diagonalPath(g)
	case TemplateCenter:
		p = centerPath(g)
	case TemplateRings:
		p = ringsPath(g)
	case TemplateBlock:
		p = blockPath(g)
	case TemplateTile:
		p = tilePath(g)
	case TemplateCheckerboard:
		p = checkerboardPath(g, 1)
	case TemplateChecker2:
		p = checkerboardPath(g, 2)
	case TemplateSpokes:
		p = spokesPath(g)
	case TemplateTrueSpokes:
		p = trueSpokesPath(g)
	case TemplateCorner:
		p = cornerPath(g, rng)
	case TemplatePerimeter:
		p = perimeterPath(g)
	case TemplateDiagStripes:
		p = diagStripesPath(g)
	case TemplateHilbert:
		p = hilbertPath(g)
	default:
		p = serpentinePath(g)
	}
	return completePath(g, p)
}

// completePath enforces the coverage invariant: drop out-of-bounds and
// repeated cells, then append whatever is missing in serpentine order. Most
// templates pass through untouched; the block/tile/checker/spoke families
// rely on this on awkward dimensions.
func completePath(g Grid, p Path) Path {
	seen := make([]bool, g.CellCount())
	out := make(Path, 0, g.CellCount())
	for _, c := range p {
		if !g.Contains(c) {
			continue
		}
		if i := g.Index(c); !seen[i] {
			seen[i] = true
			out = append(out, c)
		}
	}
	if len(out) < g.CellCount() {
		for _, c := range serpentinePath(g) {
			if i := g.Index(c); !seen[i] {
				seen[i] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// serpentinePath sweeps rows left-to-right and back. It is the canonical
// completion order as well as a template in its own right.
func serpentinePath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	for y := 0; y < g.Rows; y++ {
		if y%2 == 0 {
			for x := 0; x < g.Cols; x++ {
				p = append(p, Cell{X: x, Y: y})
			}
		} else {
			for x := g.Cols - 1; x >= 0; x-- {
				p = append(p, Cell{X: x, Y: y})
			}
		}
	}
	return p
}

// columnPath is the serpentine rotated onto columns.
func columnPath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	for x := 0; x < g.Cols; x++ {
		if x%2 == 0 {
			for y := 0; y < g.Rows; y++ {
				p = append(p, Cell{X: x, Y: y})
			}
		} else {
			for y := g.Rows - 1; y >= 0; y-- {
				p = append(p, Cell{X: x, Y: y})
			}
		}
	}
	return p
}

// spiralPath walks the grid clockwise from the top-left corner, shrinking
// the boundary as it goes.
func spiralPath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	left, right := 0, g.Cols-1
	top, bottom := 0, g.Rows-1
	for left <= right && top <= bottom {
		for x := left; x <= right; x++ {
			p = append(p, Cell{X: x, Y: top})
		}
		for y := top + 1; y <= bottom; y++ {
			p = append(p, Cell{X: right, Y: y})
		}
		if top < bottom {
			for x := right - 1; x >= left; x-- {
				p = append(p, Cell{X: x, Y: bottom})
			}
		}
		if left < right {
			for y := bottom - 1; y > top; y-- {
				p = append(p, Cell{X: left, Y: y})
			}
		}
		left++
		right--
		top++
		bottom--
	}
	return p
}

// centerPath is the spiral run inside-out.
func centerPath(g Grid) Path {
	p := spiralPath(g)
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// ringsPath visits each concentric ring in full, outermost first. Unlike the
// spiral it restarts every ring at its own top-left corner, so consecutive
// cells across ring boundaries need not be adjacent.
func ringsPath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	rings := (minInt(g.Cols, g.Rows) + 1) / 2
	for r := 0; r < rings; r++ {
		left, right := r, g.Cols-1-r
		top, bottom := r, g.Rows-1-r
		for x := left; x <= right; x++ {
			p = append(p, Cell{X: x, Y: top})
		}
		for y := top + 1; y <= bottom; y++ {
			p = append(p, Cell{X: right, Y: y})
		}
		if top < bottom {
			for x := right - 1; x >= left; x-- {
				p = append(p, Cell{X: x, Y: bottom})
			}
		}
		if left < right {
			for y := bottom - 1; y > top; y-- {
				p = append(p, Cell{X: left, Y: y})
			}
		}
	}
	return p
}

// diagonalPath sweeps anti-diagonals, alternating direction per diagonal.
func diagonalPath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	for d := 0; d < g.Cols+g.Rows-1; d++ {
		lo := maxInt(0, d-g.Rows+1)
		hi := minInt(d, g.Cols-1)
		if d%2 == 0 {
			for x := lo; x <= hi; x++ {
				p = append(p, Cell{X: x, Y: d - x})
			}
		} else {
			for x := hi; x >= lo; x-- {
				p = append(p, Cell{X: x, Y: d - x})
			}
		}
	}
	return p
}

// diagStripesPath groups pairs of anti-diagonals into stripes and sweeps
// each stripe in one direction.
func diagStripesPath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	stripes := (g.Cols + g.Rows) / 2
	for s := 0; s <= stripes; s++ {
		for _, d := range [2]int{2 * s, 2*s + 1} {
			if d > g.Cols+g.Rows-2 {
				continue
			}
			lo := maxInt(0, d-g.Rows+1)
			hi := minInt(d, g.Cols-1)
			if s%2 == 0 {
				for x := lo; x <= hi; x++ {
					p = append(p, Cell{X: x, Y: d - x})
				}
			} else {
				for x := hi; x >= lo; x-- {
					p = append(p, Cell{X: x, Y: d - x})
				}
			}
		}
	}
	return p
}

// blockPath runs the serpentine over 2-wide column blocks, emitting both
// cells of each block row together.
func blockPath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	block := 0
	for x := 0; x < g.Cols; x += 2 {
		if block%2 == 0 {
			for y := 0; y < g.Rows; y++ {
				p = append(p, Cell{X: x, Y: y})
				if x+1 < g.Cols {
					p = append(p, Cell{X: x + 1, Y: y})
				}
			}
		} else {
			for y := g.Rows - 1; y >= 0; y-- {
				if x+1 < g.Cols {
					p = append(p, Cell{X: x + 1, Y: y})
				}
				p = append(p, Cell{X: x, Y: y})
			}
		}
		block++
	}
	return p
}

// tilePath visits 2x2 tiles in serpentine tile order, emitting the four
// cells of each tile as a little loop. Odd dimensions leave partial tiles;
// completePath covers the stragglers.
func tilePath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	var starts []int
	for x := 0; x < g.Cols; x += 2 {
		starts = append(starts, x)
	}
	tileRow := 0
	for y := 0; y < g.Rows; y += 2 {
		if tileRow%2 == 0 {
			for _, x := range starts {
				p = appendTile(p, g, x, y)
			}
		} else {
			for i := len(starts) - 1; i >= 0; i-- {
				p = appendTile(p, g, starts[i], y)
			}
		}
		tileRow++
	}
	return p
}

func appendTile(p Path, g Grid, x, y int) Path {
	for _, c := range [4]Cell{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}} {
		if g.Contains(c) {
			p = append(p, c)
		}
	}
	return p
}

// checkerboardPath emits one parity class in serpentine order, then the
// other. size 1 gives the classic checkerboard; size 2 uses 2x2 squares.
func checkerboardPath(g Grid, size int) Path {
	p := make(Path, 0, g.CellCount())
	for parity := 0; parity < 2; parity++ {
		for _, c := range serpentinePath(g) {
			if ((c.X/size)+(c.Y/size))%2 == parity {
				p = append(p, c)
			}
		}
	}
	return p
}

// spokesPath approximates radial spokes by sorting cells into angular
// buckets around the grid center and walking each bucket outward.
func spokesPath(g Grid) Path {
	const buckets = 8
	cx := float64(g.Cols-1) / 2
	cy := float64(g.Rows-1) / 2
	p := make(Path, 0, g.CellCount())
	for i := 0; i < g.CellCount(); i++ {
		p = append(p, g.CellAt(i))
	}
	key := func(c Cell) (int, float64) {
		dx := float64(c.X) - cx
		dy := float64(c.Y) - cy
		ang := math.Atan2(dy, dx) + math.Pi
		b := int(ang / (2 * math.Pi / buckets))
		if b >= buckets {
			b = buckets - 1
		}
		return b, dx*dx + dy*dy
	}
	sort.SliceStable(p, func(i, j int) bool {
		bi, ri := key(p[i])
		bj, rj := key(p[j])
		if bi != bj {
			return bi < bj
		}
		return ri < rj
	})
	return p
}

// trueSpokesPath casts Bresenham rays from the center to every perimeter
// cell in boundary order, emitting cells the first time a ray crosses them.
func trueSpokesPath(g Grid) Path {
	center := Cell{X: g.Cols / 2, Y: g.Rows / 2}
	seen := make([]bool, g.CellCount())
	p := make(Path, 0, g.CellCount())
	emit := func(c Cell) {
		if i := g.Index(c); !seen[i] {
			seen[i] = true
			p = append(p, c)
		}
	}
	for _, target := range perimeterCells(g) {
		for _, c := range bresenham(center, target) {
			emit(c)
		}
	}
	return p
}

// perimeterCells lists the boundary cells clockwise from the top-left.
func perimeterCells(g Grid) []Cell {
	var cells []Cell
	for x := 0; x < g.Cols; x++ {
		cells = append(cells, Cell{X: x, Y: 0})
	}
	for y := 1; y < g.Rows; y++ {
		cells = append(cells, Cell{X: g.Cols - 1, Y: y})
	}
	if g.Rows > 1 {
		for x := g.Cols - 2; x >= 0; x-- {
			cells = append(cells, Cell{X: x, Y: g.Rows - 1})
		}
	}
	if g.Cols > 1 {
		for y := g.Rows - 2; y > 0; y-- {
			cells = append(cells, Cell{X: 0, Y: y})
		}
	}
	return cells
}

// bresenham returns the grid cells on the segment from a to b, inclusive.
func bresenham(a, b Cell) []Cell {
	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	var cells []Cell
	x, y := a.X, a.Y
	for {
		cells = append(cells, Cell{X: x, Y: y})
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// cornerPath walks greedily from a random corner, hugging the visited
// region and turning when blocked, like a spiral with a random handedness.
func cornerPath(g Grid, rng *rand.Rand) Path {
	corners := [4]Cell{
		{0, 0},
		{g.Cols - 1, 0},
		{g.Cols - 1, g.Rows - 1},
		{0, g.Rows - 1},
	}
	cur := corners[rng.Intn(4)]
	dirs := [4]Cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	di := rng.Intn(4)
	turn := 1
	if rng.Intn(2) == 0 {
		turn = 3 // counter-clockwise
	}
	seen := make([]bool, g.CellCount())
	p := make(Path, 0, g.CellCount())
	seen[g.Index(cur)] = true
	p = append(p, cur)
	for len(p) < g.CellCount() {
		moved := false
		for tries := 0; tries < 4; tries++ {
			next := Cell{X: cur.X + dirs[di].X, Y: cur.Y + dirs[di].Y}
			if g.Contains(next) && !seen[g.Index(next)] {
				cur = next
				seen[g.Index(cur)] = true
				p = append(p, cur)
				moved = true
				break
			}
			di = (di + turn) % 4
		}
		if !moved {
			break // dead end; completePath fills the rest
		}
	}
	return p
}

// perimeterPath traces the full boundary first, then serpentines through
// the interior.
func perimeterPath(g Grid) Path {
	p := Path(perimeterCells(g))
	for y := 1; y < g.Rows-1; y++ {
		if y%2 == 1 {
			for x := 1; x < g.Cols-1; x++ {
				p = append(p, Cell{X: x, Y: y})
			}
		} else {
			for x := g.Cols - 2; x >= 1; x-- {
				p = append(p, Cell{X: x, Y: y})
			}
		}
	}
	return p
}

// hilbertPath recursively splits the grid into slabs along its longer
// dimension and traverses the halves back to back. Not a true Hilbert
// curve, but it produces the same locality-heavy look on rectangles.
func hilbertPath(g Grid) Path {
	p := make(Path, 0, g.CellCount())
	var slab func(x0, y0, w, h int, flip bool)
	slab = func(x0, y0, w, h int, flip bool) {
		if w <= 2 || h <= 2 {
			sub := Grid{Cols: w, Rows: h}
			for _, c := range serpentinePath(sub) {
				cell := Cell{X: x0 + c.X, Y: y0 + c.Y}
				if flip {
					cell = Cell{X: x0 + w - 1 - c.X, Y: y0 + h - 1 - c.Y}
				}
				p = append(p, cell)
			}
			return
		}
		if w >= h {
			half := w / 2
			if flip {
				slab(x0+half, y0, w-half, h, true)
				slab(x0, y0, half, h, false)
			} else {
				slab(x0, y0, half, h, false)
				slab(x0+half, y0, w-half, h, true)
			}
		} else {
			half := h / 2
			if flip {
				slab(x0, y0+half, w, h-half, true)
				slab(x0, y0, w, half, false)
			} else {
				slab(x0, y0, w, half, false)
				slab(x0, y0+half, w, h-half, true)
			}
		}
	}
	slab(0, 0, g.Cols, g.Rows, false)
	return p
}

const (
	dfsAttempts = 3
	dfsBudget   = 60 * time.Millisecond
)

// dfsPath searches for a step-adjacent Hamiltonian path from a random start
// cell. Neighbors are explored in random order tie-broken by fewest onward
// moves, which steers the search away from dead ends. Returns nil if every
// attempt times out or bottoms out; the caller falls back to serpentine.
func dfsPath(g Grid, rng *rand.Rand) Path {
	total := g.CellCount()
	for attempt := 0; attempt < dfsAttempts; attempt++ {
		deadline := time.Now().Add(dfsBudget)
		visited := make([]bool, total)
		path := make(Path, 0, total)
		start := g.CellAt(rng.Intn(total))
		visited[g.Index(start)] = true
		path = append(path, start)
		if dfsExtend(g, rng, &path, visited, deadline) {
			return path
		}
	}
	return nil
}

func dfsExtend(g Grid, rng *rand.Rand, path *Path, visited []bool, deadline time.Time) bool {
	if len(*path) == len(visited) {
		return true
	}
	if time.Now().After(deadline) {
		return false
	}
	cur := (*path)[len(*path)-1]
	moves := openNeighbors(g, cur, visited)
	rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	sort.SliceStable(moves, func(i, j int) bool {
		return len(openNeighbors(g, moves[i], visited)) < len(openNeighbors(g, moves[j], visited))
	})
	for _, next := range moves {
		visited[g.Index(next)] = true
		*path = append(*path, next)
		if dfsExtend(g, rng, path, visited, deadline) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		visited[g.Index(next)] = false
	}
	return false
}

func openNeighbors(g Grid, c Cell, visited []bool) []Cell {
	candidates := [4]Cell{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}
	out := make([]Cell, 0, 4)
	for _, n := range candidates {
		if g.Contains(n) && !visited[g.Index(n)] {
			out = append(out, n)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
