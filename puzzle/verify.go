package puzzle

import (
	"time"
)

// searchState carries everything one verification call mutates. It is owned
// by exactly one call; nothing here is shared.
type searchState struct {
	layout       *Layout
	total        int
	visited      []bool
	visitedCount int
	nextRequired int // 0 once every checkpoint has been consumed
	maxNumber    int
	deadline     time.Time
	timedOut     bool

	// reachability scan scratch, stamped to avoid clearing between nodes
	reachStamp []int
	stamp      int
	queue      []int

	trail []Cell
}

// Verify reports whether the layout admits a winning trail: full coverage,
// checkpoints in ascending order, ending on the goal. The search is
// abandoned once budget elapses, in which case Verify returns false even
// though the layout might merely be slow to prove. That conservative bias
// is intentional; the generator simply retries with a fresh candidate.
func Verify(l *Layout, budget time.Duration) bool {
	_, ok := Solve(l, budget)
	return ok
}

// Solve is Verify but also returns the winning trail when one is found.
// The trail satisfies IsWin by construction.
func Solve(l *Layout, budget time.Duration) ([]Cell, bool) {
	total := l.Grid.CellCount()
	if total == 0 {
		return nil, false
	}
	maxNumber := l.MaxAnchor()
	// The start must be able to satisfy checkpoint 1 immediately.
	if n, numbered := l.Anchors[l.Start]; numbered && n != 1 {
		return nil, false
	}

	s := &searchState{
		layout:     l,
		total:      total,
		visited:    make([]bool, total),
		maxNumber:  maxNumber,
		deadline:   time.Now().Add(budget),
		reachStamp: make([]int, total),
		queue:      make([]int, 0, total),
		trail:      make([]Cell, 0, total),
	}
	if maxNumber >= 1 {
		s.nextRequired = 1
	}

	s.enter(l.Start)
	if s.search(l.Start) {
		out := make([]Cell, len(s.trail))
		copy(out, s.trail)
		return out, true
	}
	return nil, false
}

func (s *searchState) enter(c Cell) {
	s.visited[s.layout.Grid.Index(c)] = true
	s.visitedCount++
	s.trail = append(s.trail, c)
	if n, ok := s.layout.Anchors[c]; ok && n == s.nextRequired {
		s.nextRequired++
		if s.nextRequired > s.maxNumber {
			s.nextRequired = 0
		}
	}
}

func (s *searchState) leave(c Cell, savedRequired int) {
	s.visited[s.layout.Grid.Index(c)] = false
	s.visitedCount--
	s.trail = s.trail[:len(s.trail)-1]
	s.nextRequired = savedRequired
}

func (s *searchState) search(cur Cell) bool {
	if s.timedOut || time.Now().After(s.deadline) {
		s.timedOut = true
		return false
	}
	if s.visitedCount == s.total {
		return cur == s.layout.Goal && s.nextRequired == 0
	}
	if !s.canCoverRemaining(cur) {
		return false
	}

	neighbors := s.layout.Neighbors(cur)
	// Required checkpoints first; it shortens the average search without
	// changing what is reachable.
	ordered := make([]Cell, 0, len(neighbors))
	var deferred []Cell
	for _, n := range neighbors {
		if num, ok := s.layout.Anchors[n]; ok && num == s.nextRequired {
			ordered = append(ordered, n)
		} else {
			deferred = append(deferred, n)
		}
	}
	ordered = append(ordered, deferred...)

	for _, next := range ordered {
		if s.visited[s.layout.Grid.Index(next)] {
			continue
		}
		if num, ok := s.layout.Anchors[next]; ok && num != s.nextRequired {
			continue
		}
		saved := s.nextRequired
		s.enter(next)
		if s.search(next) {
			return true
		}
		s.leave(next, saved)
		if s.timedOut {
			return false
		}
	}
	return false
}

// canCoverRemaining runs a breadth-first scan from cur across unvisited
// cells. If fewer unvisited cells are reachable than remain to be covered,
// no extension of the current branch can reach full coverage.
func (s *searchState) canCoverRemaining(cur Cell) bool {
	remaining := s.total - s.visitedCount
	if remaining == 0 {
		return true
	}
	s.stamp++
	s.queue = s.queue[:0]
	g := s.layout.Grid

	start := g.Index(cur)
	s.reachStamp[start] = s.stamp
	s.queue = append(s.queue, start)
	reached := 0
	for head := 0; head < len(s.queue); head++ {
		c := g.CellAt(s.queue[head])
		for _, n := range s.layout.Neighbors(c) {
			i := g.Index(n)
			if s.reachStamp[i] == s.stamp || s.visited[i] {
				continue
			}
			s.reachStamp[i] = s.stamp
			s.queue = append(s.queue, i)
			reached++
			if reached >= remaining {
				return true
			}
		}
	}
	return reached >= remaining
}
