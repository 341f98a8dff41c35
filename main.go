package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	"zippath/puzzle"

	"golang.design/x/clipboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"
)

const (
	gridCols      = 6
	gridRows      = 6
	tileSize      = 64
	wallThickness = 6
	gameAreaWidth = gridCols * tileSize
	screenWidth   = gameAreaWidth + panelWidth
	screenHeight  = gridRows * tileSize
)

// GameState defines the current state of the game interaction.
type GameState int

const (
	StateMenu GameState = iota
	StateGenerating
	StatePlaying
	StateWon
)

// Game implements ebiten.Game.
type Game struct {
	mu sync.Mutex

	gameState GameState
	status    string

	presetIdx int
	layout    *puzzle.Layout
	shareCode string

	trail    []puzzle.Cell
	dragging bool

	startTime   time.Time
	winDuration time.Duration

	// genStop doubles as the identity of the in-flight generation run; a
	// goroutine's result only counts while its own channel is still the
	// current one.
	genStop     chan struct{}
	genAttempt  int
	genTemplate string

	buttons []Button
}

// NewGame initializes a new game instance.
func NewGame() *Game {
	g := &Game{
		gameState: StateMenu,
		presetIdx: 0,
	}
	g.updateStatus()
	g.updateButtonsForState()
	return g
}

func (g *Game) preset() puzzle.Preset {
	return puzzle.Presets[g.presetIdx]
}

// updateStatus refreshes the panel text for the current state.
func (g *Game) updateStatus() {
	switch g.gameState {
	case StateMenu:
		g.status = fmt.Sprintf("Difficulty: %s\nK=%d gap=%d walls=%.0f%%\n\nPick New Puzzle to play.",
			g.preset().Name, g.preset().Config.Anchors, g.preset().Config.MinGap, g.preset().Config.WallPct*100)
	case StateGenerating:
		g.status = fmt.Sprintf("Generating %s...\nAttempt %d (%s)", g.preset().Name, g.genAttempt, g.genTemplate)
	case StatePlaying:
		g.status = fmt.Sprintf("%s  %s\nDrag from 1, hit numbers\nin order, cover every cell,\nend on the last number.\nCells: %d/%d",
			g.preset().Name, formatElapsed(time.Since(g.startTime)), len(g.trail), gridCols*gridRows)
	case StateWon:
		g.status = fmt.Sprintf("Solved in %s!", formatElapsed(g.winDuration))
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// startGeneration launches the orchestrator in a goroutine, cancellable via
// the stop channel.
func (g *Game) startGeneration(cfg puzzle.Config) {
	g.gameState = StateGenerating
	g.genAttempt = 0
	g.genTemplate = ""
	g.genStop = make(chan struct{})
	stop := g.genStop
	g.updateStatus()
	g.updateButtonsForState()

	gen := puzzle.NewGenerator(cfg)
	g.shareCode = gen.Config().ShareCode()
	gen.OnAttempt = func(attempt int, t puzzle.Template) {
		g.mu.Lock()
		if g.genStop == stop {
			g.genAttempt = attempt
			g.genTemplate = t.String()
			g.updateStatus()
		}
		g.mu.Unlock()
	}

	go func() {
		layout, err := gen.Generate(stop)

		g.mu.Lock()
		defer g.mu.Unlock()
		if g.genStop != stop {
			// An older run; a newer request or a cancel won the race.
			return
		}
		g.genStop = nil
		if err != nil {
			g.gameState = StateMenu
			g.status = fmt.Sprintf("Generation failed:\n%v", err)
			g.updateButtonsForState()
			return
		}
		g.layout = layout
		g.trail = nil
		g.dragging = false
		g.startTime = time.Now()
		g.gameState = StatePlaying
		g.updateStatus()
		g.updateButtonsForState()
	}()
}

// Update proceeds the game state. Called every tick.
func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mouseX, mouseY := ebiten.CursorPosition()
		clicked := image.Point{X: mouseX, Y: mouseY}
		for _, button := range g.buttons {
			if clicked.In(button.Rect) {
				button.OnClick(g)
				return nil
			}
		}
		if g.gameState == StatePlaying && mouseX >= panelWidth {
			cell, ok := g.cellAt(mouseX, mouseY)
			if ok && len(g.trail) == 0 && cell == g.layout.Start {
				g.trail = append(g.trail, cell)
				g.dragging = true
			} else if ok && len(g.trail) > 0 && cell == g.trail[len(g.trail)-1] {
				g.dragging = true // resume from the trail head
			}
		}
	}

	if g.gameState == StatePlaying && g.dragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			mouseX, mouseY := ebiten.CursorPosition()
			if cell, ok := g.cellAt(mouseX, mouseY); ok {
				g.extendTrail(cell)
			}
		} else {
			g.dragging = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch g.gameState {
		case StateGenerating:
			if g.genStop != nil {
				close(g.genStop)
				g.genStop = nil
			}
			g.gameState = StateMenu
			g.updateStatus()
			g.updateButtonsForState()
		case StatePlaying, StateWon:
			g.gameState = StateMenu
			g.updateStatus()
			g.updateButtonsForState()
		}
	}
	if g.gameState == StatePlaying {
		g.updateStatus() // keep the timer ticking
	}
	return nil
}

// cellAt maps a screen position inside the game area to a grid cell.
func (g *Game) cellAt(mouseX, mouseY int) (puzzle.Cell, bool) {
	if mouseX < panelWidth || g.layout == nil {
		return puzzle.Cell{}, false
	}
	c := puzzle.Cell{X: (mouseX - panelWidth) / tileSize, Y: mouseY / tileSize}
	if !g.layout.Grid.Contains(c) {
		return puzzle.Cell{}, false
	}
	return c, true
}

// extendTrail grows or retreats the trail towards cell. Re-entering the
// next-to-last trail cell is a backdraw and pops the head.
func (g *Game) extendTrail(cell puzzle.Cell) {
	if len(g.trail) == 0 {
		return
	}
	head := g.trail[len(g.trail)-1]
	if cell == head {
		return
	}
	if len(g.trail) >= 2 && cell == g.trail[len(g.trail)-2] {
		g.trail = g.trail[:len(g.trail)-1]
		return
	}
	if !g.layout.CanMove(head, cell) {
		return
	}
	for _, c := range g.trail {
		if c == cell {
			return
		}
	}
	g.trail = append(g.trail, cell)
	if len(g.trail) == g.layout.Grid.CellCount() && puzzle.IsWin(g.layout, g.trail) {
		g.winDuration = time.Since(g.startTime)
		g.gameState = StateWon
		g.updateStatus()
		g.updateButtonsForState()
	}
}

// restart keeps the layout and clears the trail: the in-memory restart
// snapshot. Nothing is persisted.
func (g *Game) restart() {
	g.trail = nil
	g.dragging = false
	g.startTime = time.Now()
	g.gameState = StatePlaying
	g.updateStatus()
	g.updateButtonsForState()
}

// copyShareCode puts the current puzzle's share code on the clipboard.
func (g *Game) copyShareCode() {
	if g.shareCode == "" {
		g.status = "No share code: layout was\nloaded from a file."
		return
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
		g.status = "Error: clipboard unavailable."
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.shareCode))
	g.status = fmt.Sprintf("Copied share code:\n%s", g.shareCode)
}

// pasteShareCode reads a share code from the clipboard and regenerates the
// puzzle it names.
func (g *Game) pasteShareCode() {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
		g.status = "Error: clipboard unavailable."
		return
	}
	raw := clipboard.Read(clipboard.FmtText)
	cfg, err := puzzle.ParseShareCode(string(raw))
	if err != nil {
		log.Printf("share code from clipboard: %v", err)
		g.status = "Error: clipboard holds no\nvalid share code."
		return
	}
	g.startGeneration(cfg)
}

// saveLayout writes the current layout as JSON via a native save dialog.
func (g *Game) saveLayout() {
	if g.layout == nil {
		return
	}
	path, err := dialog.File().Filter("Layout JSON", "json").Title("Save layout").Save()
	if err != nil {
		if err != dialog.Cancelled {
			log.Printf("save dialog: %v", err)
		}
		return
	}
	data, err := json.MarshalIndent(g.layout, "", "  ")
	if err != nil {
		log.Printf("encode layout: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("write layout: %v", err)
		g.status = "Error: could not save layout."
		return
	}
	g.status = "Layout saved."
}

// loadLayout reads a layout JSON file via a native open dialog.
func (g *Game) loadLayout() {
	path, err := dialog.File().Filter("Layout JSON", "json").Title("Load layout").Load()
	if err != nil {
		if err != dialog.Cancelled {
			log.Printf("open dialog: %v", err)
		}
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("read layout: %v", err)
		g.status = "Error: could not read file."
		return
	}
	var layout puzzle.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		log.Printf("decode layout: %v", err)
		g.status = "Error: not a layout file."
		return
	}
	g.layout = &layout
	g.shareCode = ""
	g.restart()
}

// Draw draws the game screen. Called every frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.drawPanel(screen)

	gameImage := ebiten.NewImage(gameAreaWidth, screenHeight)
	gameImage.Fill(color.RGBA{R: 28, G: 30, B: 36, A: 255})

	if g.layout != nil && (g.gameState == StatePlaying || g.gameState == StateWon) {
		g.drawBoard(gameImage)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(panelWidth), 0)
	screen.DrawImage(gameImage, op)
}

func (g *Game) drawBoard(dst *ebiten.Image) {
	l := g.layout

	for y := 0; y < l.Grid.Rows; y++ {
		for x := 0; x < l.Grid.Cols; x++ {
			tileColor := color.RGBA{R: 58, G: 62, B: 72, A: 255}
			if (x+y)%2 == 0 {
				tileColor = color.RGBA{R: 66, G: 70, B: 80, A: 255}
			}
			ebitenutil.DrawRect(dst, float64(x*tileSize)+1, float64(y*tileSize)+1,
				float64(tileSize)-2, float64(tileSize)-2, tileColor)
		}
	}

	// Trail underneath the anchors
	trailColor := color.RGBA{R: 255, G: 170, B: 40, A: 255}
	for i := 0; i+1 < len(g.trail); i++ {
		a, b := g.trail[i], g.trail[i+1]
		x1 := float64(a.X*tileSize) + tileSize/2
		y1 := float64(a.Y*tileSize) + tileSize/2
		x2 := float64(b.X*tileSize) + tileSize/2
		y2 := float64(b.Y*tileSize) + tileSize/2
		drawThickLine(dst, x1, y1, x2, y2, 10, trailColor)
	}
	for _, c := range g.trail {
		ebitenutil.DrawRect(dst, float64(c.X*tileSize)+tileSize/2-5, float64(c.Y*tileSize)+tileSize/2-5,
			10, 10, trailColor)
	}

	for c, n := range l.Anchors {
		cx := float64(c.X * tileSize)
		cy := float64(c.Y * tileSize)
		badge := color.RGBA{R: 20, G: 20, B: 24, A: 255}
		if c == l.Start {
			badge = color.RGBA{R: 30, G: 110, B: 50, A: 255}
		} else if c == l.Goal {
			badge = color.RGBA{R: 130, G: 40, B: 40, A: 255}
		}
		ebitenutil.DrawRect(dst, cx+tileSize/2-14, cy+tileSize/2-14, 28, 28, badge)
		drawCenteredNumber(dst, n, int(cx)+tileSize/2, int(cy)+tileSize/2)
	}

	// Walls on top of everything
	wallColor := color.RGBA{R: 230, G: 230, B: 235, A: 255}
	for w := range l.Walls {
		x := float64(w.From.X * tileSize)
		y := float64(w.From.Y * tileSize)
		if w.Dir == puzzle.DirRight {
			ebitenutil.DrawRect(dst, x+tileSize-wallThickness/2, y, wallThickness, tileSize, wallColor)
		} else {
			ebitenutil.DrawRect(dst, x, y+tileSize-wallThickness/2, tileSize, wallThickness, wallColor)
		}
	}
}

// drawThickLine draws an axis-aligned thick segment. Trail segments are
// always horizontal or vertical, so a rect is enough.
func drawThickLine(dst *ebiten.Image, x1, y1, x2, y2, thickness float64, clr color.Color) {
	if x1 == x2 {
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		ebitenutil.DrawRect(dst, x1-thickness/2, y1-thickness/2, thickness, y2-y1+thickness, clr)
	} else {
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		ebitenutil.DrawRect(dst, x1-thickness/2, y1-thickness/2, x2-x1+thickness, thickness, clr)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) updateButtonsForState() {
	g.buttons = nil
	minX := buttonMargin
	maxX := panelWidth - buttonMargin
	add := func(text string, onClick func(g *Game)) {
		g.buttons = append(g.buttons, Button{
			Rect:    image.Rect(minX, 0, maxX, 0), // Y assigned during draw
			Text:    text,
			OnClick: onClick,
		})
	}

	switch g.gameState {
	case StateMenu:
		add(fmt.Sprintf("Difficulty: %s", g.preset().Name), func(g *Game) {
			g.presetIdx = (g.presetIdx + 1) % len(puzzle.Presets)
			g.updateStatus()
			g.updateButtonsForState()
		})
		add("New Puzzle", func(g *Game) {
			g.startGeneration(g.preset().Config)
		})
		add("Puzzle From Clipboard Code", func(g *Game) {
			g.pasteShareCode()
		})
		add("Load Layout File", func(g *Game) {
			g.loadLayout()
		})
	case StateGenerating:
		add("Cancel Generation", func(g *Game) {
			if g.genStop != nil {
				close(g.genStop)
				g.genStop = nil
			}
			g.gameState = StateMenu
			g.updateStatus()
			g.updateButtonsForState()
		})
	case StatePlaying:
		add("Restart", func(g *Game) { g.restart() })
		add("New Puzzle", func(g *Game) {
			g.startGeneration(g.preset().Config) // fresh seed
		})
		add("Copy Share Code", func(g *Game) { g.copyShareCode() })
		add("Save Layout File", func(g *Game) { g.saveLayout() })
		add("Back To Menu", func(g *Game) {
			g.gameState = StateMenu
			g.updateStatus()
			g.updateButtonsForState()
		})
	case StateWon:
		add("Play Again (Same Puzzle)", func(g *Game) { g.restart() })
		add("New Puzzle", func(g *Game) {
			g.startGeneration(g.preset().Config)
		})
		add("Copy Share Code", func(g *Game) { g.copyShareCode() })
		add("Back To Menu", func(g *Game) {
			g.gameState = StateMenu
			g.updateStatus()
			g.updateButtonsForState()
		})
	}
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Zip Path")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
