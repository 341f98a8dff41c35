package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spakin/disjoint"
)

// Log is the package logger. Callers may swap the level or output; the
// engine only ever logs, it never aborts the process.
var Log = logrus.New()

var (
	ErrInvalidConfig       = errors.New("invalid puzzle config")
	ErrGenerationExhausted = errors.New("no solvable layout within attempt budget")
	ErrStopped             = errors.New("generation stopped")
)

const (
	maxAttempts   = 40
	quickBudget   = 250 * time.Millisecond
	confirmBudget = 3 * time.Second
)

// Config describes one generation request.
type Config struct {
	Cols, Rows int
	Anchors    int     // checkpoint count K
	MinGap     int     // minimum path-index spacing between anchors
	WallPct    float64 // per-edge wall probability on eligible edges
	Template   Template
	Seed       int64 // 0 means time-seeded
}

// Validate checks the hard constraints that make a request unanswerable.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	}
	if c.Anchors < 1 || c.Anchors > c.Cols*c.Rows {
		return fmt.Errorf("%w: %d anchors on %d cells", ErrInvalidConfig, c.Anchors, c.Cols*c.Rows)
	}
	return nil
}

// ShareCode packs the config into a short text code that regenerates the
// identical layout on any machine.
func (c Config) ShareCode() string {
	return fmt.Sprintf("%d:%d:%d:%d:%g:%s:%d",
		c.Cols, c.Rows, c.Anchors, c.MinGap, c.WallPct, c.Template, c.Seed)
}

// ParseShareCode is the inverse of ShareCode.
func ParseShareCode(code string) (Config, error) {
	var c Config
	var tmpl string
	fields := strings.ReplaceAll(strings.TrimSpace(code), ":", " ")
	n, err := fmt.Sscanf(fields, "%d %d %d %d %g %s %d",
		&c.Cols, &c.Rows, &c.Anchors, &c.MinGap, &c.WallPct, &tmpl, &c.Seed)
	if n != 7 || err != nil {
		return Config{}, fmt.Errorf("invalid share code %q (n=%d, err=%v)", code, n, err)
	}
	c.Template = ParseTemplate(tmpl)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Preset is a named difficulty.
type Preset struct {
	Name   string
	Config Config
}

// Presets are the shipped difficulty levels, easiest first.
var Presets = []Preset{
	{"Relaxed", Config{Cols: 6, Rows: 6, Anchors: 10, MinGap: 2, WallPct: 0.00}},
	{"Casual", Config{Cols: 6, Rows: 6, Anchors: 12, MinGap: 3, WallPct: 0.04}},
	{"Tricky", Config{Cols: 6, Rows: 6, Anchors: 12, MinGap: 5, WallPct: 0.08}},
	{"Expert", Config{Cols: 6, Rows: 6, Anchors: 12, MinGap: 7, WallPct: 0.12}},
	{"Zip", Config{Cols: 6, Rows: 6, Anchors: 12, MinGap: 2, WallPct: 0.00}},
}

// Generator produces verified-solvable layouts for one config.
type Generator struct {
	cfg Config
	rng *rand.Rand

	// OnAttempt, when set, is called at the top of every generation
	// attempt. Useful for progress display; called from whichever
	// goroutine runs Generate.
	OnAttempt func(attempt int, t Template)
}

// NewGenerator seeds a generator for the config. Seed 0 picks the clock.
func NewGenerator(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		cfg.Seed = seed
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Config returns the generator's config, with the seed resolved.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds candidate layouts until one passes both verification
// passes or the attempt budget runs out. A candidate is built from a fresh
// template path, transform, anchor set and wall set every time; nothing is
// reused across attempts. Closing stop abandons the run between attempts.
func (g *Generator) Generate(stop <-chan struct{}) (*Layout, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	grid := Grid{Cols: g.cfg.Cols, Rows: g.cfg.Rows}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-stop:
			return nil, ErrStopped
		default:
		}

		tmpl := g.cfg.Template
		if tmpl == TemplateAuto {
			tmpl = pickTemplate(g.rng)
		}
		if g.OnAttempt != nil {
			g.OnAttempt(attempt, tmpl)
		}

		path := GeneratePath(grid, tmpl, g.rng)
		path = TransformPath(grid, path, g.rng)
		anchors, start, goal := PlaceAnchors(path, g.cfg.Anchors, g.cfg.MinGap, g.rng)
		walls := PlaceWalls(grid, path, g.cfg.WallPct, g.rng)

		layout := &Layout{
			ID:      uuid.NewString(),
			Grid:    grid,
			Anchors: anchors,
			Walls:   walls,
			Start:   start,
			Goal:    goal,
		}

		if !connected(layout) {
			Log.WithFields(logrus.Fields{
				"attempt": attempt, "template": tmpl.String(),
			}).Debug("walls disconnected the grid, retrying")
			continue
		}

		began := time.Now()
		if !Verify(layout, quickBudget) {
			Log.WithFields(logrus.Fields{
				"attempt": attempt, "template": tmpl.String(),
				"took": time.Since(began),
			}).Debug("quick check failed")
			continue
		}
		if !Verify(layout, confirmBudget) {
			// The quick pass can accept on a truncated search frontier;
			// the long pass is the guard against that.
			Log.WithFields(logrus.Fields{
				"attempt": attempt, "template": tmpl.String(),
				"took": time.Since(began),
			}).Debug("confirmation pass failed")
			continue
		}

		Log.WithFields(logrus.Fields{
			"layout":   layout.ID,
			"attempt":  attempt,
			"template": tmpl.String(),
			"walls":    len(walls),
			"took":     time.Since(began),
		}).Info("generated solvable layout")
		return layout, nil
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrGenerationExhausted, maxAttempts)
}

// Generate is the one-shot convenience wrapper around Generator.
func Generate(cfg Config) (*Layout, error) {
	return NewGenerator(cfg).Generate(nil)
}

// connected reports whether every cell can reach every other through
// unblocked edges. Full coverage is impossible on a disconnected grid, so
// this cheap union-find pass rejects hopeless candidates before any
// verifier budget is spent.
func connected(l *Layout) bool {
	elems := make([]*disjoint.Element, l.Grid.CellCount())
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	for y := 0; y < l.Grid.Rows; y++ {
		for x := 0; x < l.Grid.Cols; x++ {
			c := Cell{X: x, Y: y}
			for _, n := range l.Neighbors(c) {
				disjoint.Union(elems[l.Grid.Index(c)], elems[l.Grid.Index(n)])
			}
		}
	}
	root := elems[0].Find()
	for _, e := range elems[1:] {
		if e.Find() != root {
			return false
		}
	}
	return true
}
