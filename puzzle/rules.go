package puzzle

import "github.com/zyedidia/generic/mapset"

// CanMove reports whether a player may extend a trail from one cell to an
// adjacent, unblocked cell. Trail bookkeeping (no revisits, backdraw) is the
// front end's concern; this is only the board-legality half.
func (l *Layout) CanMove(from, to Cell) bool {
	return l.Grid.Contains(from) && l.Grid.Contains(to) &&
		adjacent(from, to) && !l.Blocked(from, to)
}

// IsWin reports whether a trail wins the puzzle: it covers every cell
// exactly once, visits the checkpoint numbers in order 1..K, and ends on
// the goal cell.
func IsWin(l *Layout, trail []Cell) bool {
	if len(trail) != l.Grid.CellCount() {
		return false
	}
	seen := mapset.New[Cell]()
	next := 1
	for _, c := range trail {
		if !l.Grid.Contains(c) || seen.Has(c) {
			return false
		}
		seen.Put(c)
		if num, ok := l.Anchors[c]; ok {
			if num != next {
				return false
			}
			next++
		}
	}
	if next != l.MaxAnchor()+1 {
		return false
	}
	return trail[len(trail)-1] == l.Goal
}
