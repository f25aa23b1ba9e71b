// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton shows two bars while running and a play triangle while paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color

	play *SpeedButton // reuses the triangle fill
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		play:       &SpeedButton{},
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		b.play.drawTriangle(screen,
			b.X-size, b.Y-size*1.2,
			b.X+size, b.Y,
			b.X-size, b.Y+size*1.2,
			b.PlayColor)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	left := b.X - width - spacing/2
	right := b.X + spacing/2
	top := b.Y - height/2
	vector.DrawFilledRect(screen, left, top, width, height, b.PauseColor, false)
	vector.StrokeRect(screen, left, top, width, height, 1, color.White, false)
	vector.DrawFilledRect(screen, right, top, width, height, b.PauseColor, false)
	vector.StrokeRect(screen, right, top, width, height, 1, color.White, false)
}

func (b *PauseButton) IsClicked(mx, my float32) bool {
	dx, dy := mx-b.X, my-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
