package puzzle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The JSON form flattens the anchor and wall maps into slices so layouts
// survive a round trip through files and clipboards.

type anchorJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Number int `json:"n"`
}

type wallJSON struct {
	X   int    `json:"x"`
	Y   int    `json:"y"`
	Dir string `json:"dir"` // "right" or "down"
}

type layoutJSON struct {
	ID      string       `json:"id"`
	Cols    int          `json:"cols"`
	Rows    int          `json:"rows"`
	Anchors []anchorJSON `json:"anchors"`
	Walls   []wallJSON   `json:"walls"`
	Start   [2]int       `json:"start"`
	Goal    [2]int       `json:"goal"`
}

func (l *Layout) MarshalJSON() ([]byte, error) {
	out := layoutJSON{
		ID:    l.ID,
		Cols:  l.Grid.Cols,
		Rows:  l.Grid.Rows,
		Start: [2]int{l.Start.X, l.Start.Y},
		Goal:  [2]int{l.Goal.X, l.Goal.Y},
	}
	for c, n := range l.Anchors {
		out.Anchors = append(out.Anchors, anchorJSON{X: c.X, Y: c.Y, Number: n})
	}
	for w := range l.Walls {
		dir := "right"
		if w.Dir == DirDown {
			dir = "down"
		}
		out.Walls = append(out.Walls, wallJSON{X: w.From.X, Y: w.From.Y, Dir: dir})
	}
	return json.Marshal(out)
}

// UnmarshalJSON rejects layouts whose cells fall outside the declared grid.
// Layout files arrive from disk and clipboards, and the solver indexes cells
// without rechecking bounds, so a corrupt file must fail here, not there.
func (l *Layout) UnmarshalJSON(data []byte) error {
	var in layoutJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Cols <= 0 || in.Rows <= 0 {
		return fmt.Errorf("layout has invalid grid %dx%d", in.Cols, in.Rows)
	}
	grid := Grid{Cols: in.Cols, Rows: in.Rows}

	anchors := make(map[Cell]int, len(in.Anchors))
	for _, a := range in.Anchors {
		c := Cell{X: a.X, Y: a.Y}
		if !grid.Contains(c) {
			return fmt.Errorf("anchor %d at (%d,%d) outside the %dx%d grid", a.Number, a.X, a.Y, in.Cols, in.Rows)
		}
		anchors[c] = a.Number
	}

	walls := make(map[Wall]struct{}, len(in.Walls))
	for _, w := range in.Walls {
		from := Cell{X: w.X, Y: w.Y}
		dir := DirRight
		to := Cell{X: w.X + 1, Y: w.Y}
		switch w.Dir {
		case "right":
		case "down":
			dir = DirDown
			to = Cell{X: w.X, Y: w.Y + 1}
		default:
			return fmt.Errorf("wall at (%d,%d) has unknown direction %q", w.X, w.Y, w.Dir)
		}
		if !grid.Contains(from) || !grid.Contains(to) {
			return fmt.Errorf("wall at (%d,%d) %s crosses the %dx%d grid boundary", w.X, w.Y, w.Dir, in.Cols, in.Rows)
		}
		walls[Wall{From: from, Dir: dir}] = struct{}{}
	}

	start := Cell{X: in.Start[0], Y: in.Start[1]}
	goal := Cell{X: in.Goal[0], Y: in.Goal[1]}
	if !grid.Contains(start) {
		return fmt.Errorf("start (%d,%d) outside the %dx%d grid", start.X, start.Y, in.Cols, in.Rows)
	}
	if !grid.Contains(goal) {
		return fmt.Errorf("goal (%d,%d) outside the %dx%d grid", goal.X, goal.Y, in.Cols, in.Rows)
	}

	l.ID = in.ID
	l.Grid = grid
	l.Anchors = anchors
	l.Walls = walls
	l.Start = start
	l.Goal = goal
	return nil
}

// String renders the layout as ASCII: numbers in cells, | and - for walls.
// Handy for the CLI and for eyeballing failures in tests.
func (l *Layout) String() string {
	var b strings.Builder
	for y := 0; y < l.Grid.Rows; y++ {
		for x := 0; x < l.Grid.Cols; x++ {
			c := Cell{X: x, Y: y}
			if n, ok := l.Anchors[c]; ok {
				fmt.Fprintf(&b, "%2d", n)
			} else {
				b.WriteString(" .")
			}
			if _, walled := l.Walls[Wall{From: c, Dir: DirRight}]; walled {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
		if y+1 < l.Grid.Rows {
			for x := 0; x < l.Grid.Cols; x++ {
				c := Cell{X: x, Y: y}
				if _, walled := l.Walls[Wall{From: c, Dir: DirDown}]; walled {
					b.WriteString("-- ")
				} else {
					b.WriteString("   ")
				}
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
