package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// UI Button constants
const (
	panelWidth   = 240
	buttonHeight = 30
	buttonMargin = 10
	textOffsetY  = 5 // Small offset for text within buttons
)

// Button struct for UI elements
type Button struct {
	Rect    image.Rectangle
	Text    string
	OnClick func(g *Game) // Action to perform on click
}

// wrapText breaks long strings into lines that fit the panel.
func wrapText(input string, maxWidth int) []string {
	var lines []string
	var currentLine string
	currentLineWidth := 0

	charWidth := text.BoundString(basicfont.Face7x13, "0").Dx()
	if charWidth == 0 {
		charWidth = 7
	}

	for _, r := range input {
		if r == '\n' {
			lines = append(lines, currentLine)
			currentLine = ""
			currentLineWidth = 0
			continue
		}
		if currentLineWidth+charWidth > maxWidth {
			lines = append(lines, currentLine)
			currentLine = string(r)
			currentLineWidth = charWidth
		} else {
			currentLine += string(r)
			currentLineWidth += charWidth
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, currentLine)
	}
	return lines
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	panelBg := color.RGBA{R: 30, G: 30, B: 40, A: 255}
	ebitenutil.DrawRect(screen, 0, 0, panelWidth, screenHeight, panelBg)

	currentY := buttonMargin
	text.Draw(screen, "Zip Path", basicfont.Face7x13, buttonMargin, currentY+10, color.White)
	currentY += 20 + buttonMargin

	statusLines := wrapText(g.status, panelWidth-(2*buttonMargin))
	for _, line := range statusLines {
		text.Draw(screen, line, basicfont.Face7x13, buttonMargin, currentY+10, color.White)
		currentY += basicfont.Face7x13.Metrics().Height.Ceil()
	}
	currentY += buttonMargin

	buttonBg := color.RGBA{R: 70, G: 70, B: 90, A: 255}
	for i := range g.buttons {
		g.buttons[i].Rect.Min.Y = currentY
		g.buttons[i].Rect.Max.Y = currentY + buttonHeight

		ebitenutil.DrawRect(screen,
			float64(g.buttons[i].Rect.Min.X),
			float64(g.buttons[i].Rect.Min.Y),
			float64(g.buttons[i].Rect.Dx()),
			float64(g.buttons[i].Rect.Dy()),
			buttonBg,
		)

		textBounds := text.BoundString(basicfont.Face7x13, g.buttons[i].Text)
		textX := g.buttons[i].Rect.Min.X + (g.buttons[i].Rect.Dx()-textBounds.Dx())/2
		textY := g.buttons[i].Rect.Min.Y + (g.buttons[i].Rect.Dy()+textBounds.Dy())/2 - textOffsetY
		text.Draw(screen, g.buttons[i].Text, basicfont.Face7x13, textX, textY, color.White)

		currentY += buttonHeight + buttonMargin
	}

	fpsDisplayY := screenHeight - 15
	text.Draw(screen, fmt.Sprintf("TPS: %.0f FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		basicfont.Face7x13, buttonMargin, fpsDisplayY, color.White)
}

// drawCenteredNumber paints a checkpoint number centered on (cx, cy).
func drawCenteredNumber(dst *ebiten.Image, n, cx, cy int) {
	label := strconv.Itoa(n)
	bounds := text.BoundString(basicfont.Face7x13, label)
	text.Draw(dst, label, basicfont.Face7x13,
		cx-bounds.Dx()/2, cy+bounds.Dy()/2, color.White)
}
