package puzzle

import (
	"math/rand"
	"sort"
)

// PickAnchorIndexes chooses k positions along a path of length n, keeping
// picks at least minGap apart in path-index distance where possible. The
// index pool is shuffled and indexes are accepted greedily; if spacing makes
// k picks impossible the remaining slots are filled from the shuffle order
// regardless of gap. Spacing is an aesthetic preference, never a hard
// requirement. The result is sorted ascending.
func PickAnchorIndexes(n, k, minGap int, rng *rand.Rand) []int {
	pool := rng.Perm(n)
	picks := make([]int, 0, k)
	for _, idx := range pool {
		if len(picks) == k {
			break
		}
		ok := true
		for _, p := range picks {
			if absInt(idx-p) < minGap {
				ok = false
				break
			}
		}
		if ok {
			picks = append(picks, idx)
		}
	}
	if len(picks) < k {
		taken := make(map[int]bool, len(picks))
		for _, p := range picks {
			taken[p] = true
		}
		for _, idx := range pool {
			if len(picks) == k {
				break
			}
			if !taken[idx] {
				picks = append(picks, idx)
			}
		}
	}
	sort.Ints(picks)
	return picks
}

// PlaceAnchors assigns checkpoint numbers 1..k to k spaced cells of the
// path. Numbering starts from a uniformly random pick and wraps, so the
// checkpoint order is a cyclic rotation of the path's visiting order rather
// than a copy of it. Returns the anchor map plus the cells carrying 1 and k
// (the start and goal).
func PlaceAnchors(p Path, k, minGap int, rng *rand.Rand) (anchors map[Cell]int, start, goal Cell) {
	picks := PickAnchorIndexes(len(p), k, minGap, rng)
	shift := rng.Intn(k)
	anchors = make(map[Cell]int, k)
	for j, idx := range picks {
		num := (j-shift+k)%k + 1
		anchors[p[idx]] = num
		switch num {
		case 1:
			start = p[idx]
		case k:
			goal = p[idx]
		}
	}
	if k == 1 {
		goal = start
	}
	return anchors, start, goal
}
