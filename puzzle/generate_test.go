package puzzle

import (
	"errors"
	"testing"
	"time"
)

func TestGeneratePresets(t *testing.T) {
	for _, preset := range Presets {
		preset := preset
		t.Run(preset.Name, func(t *testing.T) {
			cfg := preset.Config
			cfg.Seed = 4242
			layout, err := Generate(cfg)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			// Accepted layouts pass at both budgets, not just the long one.
			if !Verify(layout, quickBudget) {
				t.Error("accepted layout fails the quick budget")
			}
			if !Verify(layout, confirmBudget) {
				t.Error("accepted layout fails the confirmation budget")
			}
			if layout.Anchors[layout.Start] != 1 {
				t.Errorf("start bears %d, want 1", layout.Anchors[layout.Start])
			}
			if layout.Anchors[layout.Goal] != cfg.Anchors {
				t.Errorf("goal bears %d, want %d", layout.Anchors[layout.Goal], cfg.Anchors)
			}
		})
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	// A fixed template keeps the run clock-free; the DFS template's internal
	// deadline could make two runs diverge under load.
	cfg := Config{Cols: 6, Rows: 6, Anchors: 12, MinGap: 3, WallPct: 0.04, Template: TemplateSpiral, Seed: 99}
	a, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Start != b.Start || a.Goal != b.Goal {
		t.Fatal("same seed produced different start/goal")
	}
	if len(a.Anchors) != len(b.Anchors) || len(a.Walls) != len(b.Walls) {
		t.Fatal("same seed produced different anchor/wall counts")
	}
	for c, n := range a.Anchors {
		if b.Anchors[c] != n {
			t.Fatalf("same seed, anchor mismatch at %v", c)
		}
	}
	for w := range a.Walls {
		if _, ok := b.Walls[w]; !ok {
			t.Fatalf("same seed, wall mismatch at %v", w)
		}
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cases := []Config{
		{Cols: 6, Rows: 6, Anchors: 37},
		{Cols: 6, Rows: 6, Anchors: 0},
		{Cols: 0, Rows: 6, Anchors: 1},
		{Cols: 6, Rows: -1, Anchors: 1},
	}
	for _, cfg := range cases {
		if _, err := Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("config %+v: got %v, want ErrInvalidConfig", cfg, err)
		}
	}
}

func TestGenerateExhaustsOnHopelessConfig(t *testing.T) {
	// The checkerboard template's path jumps between non-adjacent cells, so
	// at wallPct 1.0 nearly every edge is eligible and the grid shatters.
	// The connectivity precheck rejects every candidate and the attempt cap
	// must end the run rather than loop forever.
	cfg := Config{
		Cols: 6, Rows: 6, Anchors: 4, MinGap: 2,
		WallPct: 1.0, Template: TemplateCheckerboard, Seed: 1,
	}
	done := make(chan error, 1)
	go func() {
		_, err := Generate(cfg)
		done <- err
	}()
	select {
	case err := <-done:
		if !errors.Is(err, ErrGenerationExhausted) {
			t.Fatalf("got %v, want ErrGenerationExhausted", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("generation did not terminate within the attempt cap")
	}
}

func TestGenerateStops(t *testing.T) {
	stop := make(chan struct{})
	close(stop)
	gen := NewGenerator(Config{Cols: 6, Rows: 6, Anchors: 12, MinGap: 3, Seed: 7})
	if _, err := gen.Generate(stop); !errors.Is(err, ErrStopped) {
		t.Fatalf("got %v, want ErrStopped", err)
	}
}

func TestShareCodeRoundTrip(t *testing.T) {
	cfg := Config{Cols: 6, Rows: 6, Anchors: 12, MinGap: 5, WallPct: 0.08, Template: TemplateSpiral, Seed: 314}
	got, err := ParseShareCode(cfg.ShareCode())
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Fatalf("round trip changed config: %+v -> %+v", cfg, got)
	}
	if _, err := ParseShareCode("not a code"); err == nil {
		t.Error("garbage share code must not parse")
	}
}

func TestConnectedDetectsSplit(t *testing.T) {
	g := Grid{Cols: 2, Rows: 2}
	l := &Layout{Grid: g, Anchors: map[Cell]int{}, Walls: map[Wall]struct{}{
		{From: Cell{0, 0}, Dir: DirRight}: {},
		{From: Cell{0, 1}, Dir: DirRight}: {},
	}}
	if connected(l) {
		t.Fatal("vertically split grid reported as connected")
	}
	delete(l.Walls, Wall{From: Cell{0, 1}, Dir: DirRight})
	if !connected(l) {
		t.Fatal("connected grid reported as split")
	}
}
