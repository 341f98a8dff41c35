package puzzle

import (
	"math/rand"
	"testing"
)

func TestPickAnchorIndexesSpacing(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	picks := PickAnchorIndexes(36, 10, 2, rng)
	if len(picks) != 10 {
		t.Fatalf("got %d picks, want 10", len(picks))
	}
	for i := 1; i < len(picks); i++ {
		if picks[i] <= picks[i-1] {
			t.Fatalf("picks not strictly ascending: %v", picks)
		}
		if picks[i]-picks[i-1] < 2 {
			t.Fatalf("gap %d below minGap: %v", picks[i]-picks[i-1], picks)
		}
	}
}

func TestPickAnchorIndexesGapFallback(t *testing.T) {
	// 12 picks with gap 7 cannot fit in 36 indexes; the fallback must still
	// deliver 12 unique indexes.
	rng := rand.New(rand.NewSource(11))
	picks := PickAnchorIndexes(36, 12, 7, rng)
	if len(picks) != 12 {
		t.Fatalf("got %d picks, want 12", len(picks))
	}
	seen := make(map[int]bool)
	for _, p := range picks {
		if p < 0 || p >= 36 {
			t.Fatalf("pick %d out of range", p)
		}
		if seen[p] {
			t.Fatalf("pick %d repeated: %v", p, picks)
		}
		seen[p] = true
	}
}

func TestPlaceAnchorsNumbering(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6}
	path := serpentinePath(g)
	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		anchors, start, goal := PlaceAnchors(path, 12, 3, rng)
		if len(anchors) != 12 {
			t.Fatalf("seed %d: %d anchors, want 12", seed, len(anchors))
		}
		nums := make(map[int]bool)
		for _, n := range anchors {
			if n < 1 || n > 12 {
				t.Fatalf("seed %d: number %d out of 1..12", seed, n)
			}
			if nums[n] {
				t.Fatalf("seed %d: number %d assigned twice", seed, n)
			}
			nums[n] = true
		}
		if anchors[start] != 1 {
			t.Fatalf("seed %d: start cell bears %d", seed, anchors[start])
		}
		if anchors[goal] != 12 {
			t.Fatalf("seed %d: goal cell bears %d", seed, anchors[goal])
		}
	}
}
