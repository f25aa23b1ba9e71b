// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-tower-sim/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD prints the game snapshot in the top-left corner.
type HUD struct {
	X, Y       int
	LineHeight int
	Color      color.Color
	face       font.Face
}

func NewHUD(x, y, lineHeight int, clr color.Color) *HUD {
	return &HUD{X: x, Y: y, LineHeight: lineHeight, Color: clr, face: basicfont.Face7x13}
}

// Lines formats the snapshot the way it is drawn, one entry per line.
func (h *HUD) Lines(s app.Snapshot, speed int) []string {
	lines := []string{
		fmt.Sprintf("Wave %d/%d", s.Wave, s.Waves),
		fmt.Sprintf("Lives %d", s.Lives),
		fmt.Sprintf("Enemies %d  Kills %d  Escaped %d", s.Enemies, s.Kills, s.Escapes),
		fmt.Sprintf("Shots %d  Accuracy %.0f%%", s.Shots, s.Accuracy()*100),
		fmt.Sprintf("Speed x%d", speed),
	}
	if s.Lost {
		lines = append(lines, "GAME OVER")
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot, speed int) {
	for i, line := range h.Lines(s, speed) {
		text.Draw(screen, line, h.face, h.X, h.Y+(i+1)*h.LineHeight, h.Color)
	}
}

// DrawCentered draws a single line centred on the screen.
func DrawCentered(screen *ebiten.Image, msg string, clr color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	text.Draw(screen, msg, face, (w-bounds.Dx())/2, (h+bounds.Dy())/2, clr)
}
