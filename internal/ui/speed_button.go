// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage *ebiten.Image

// SpeedButton cycles the simulation speed. Each state has its own colour and multiplier.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	Multipliers   []int
	CurrentState  int

	vs []ebiten.Vertex
	is []uint16
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color, multipliers []int) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Multipliers: multipliers,
	}
}

// Multiplier returns the number of ticks to run per frame.
func (b *SpeedButton) Multiplier() int {
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	height := size * 1.2
	width := size
	offset := width * 0.8
	c := b.StateColors[b.CurrentState]

	b.drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	b.drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

func (b *SpeedButton) drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.Color) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	r, g, bl, a := c.RGBA()
	b.vs, b.is = path.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
	for i := range b.vs {
		b.vs[i].SrcX, b.vs[i].SrcY = 1, 1
		b.vs[i].ColorR = float32(r) / 0xffff
		b.vs[i].ColorG = float32(g) / 0xffff
		b.vs[i].ColorB = float32(bl) / 0xffff
		b.vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(b.vs, b.is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeLine(screen, x1, y1, x2, y2, 1, color.White, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, 1, color.White, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, 1, color.White, true)
}

// IsClicked uses a circle around the button, the shape is too irregular for exact hits.
func (b *SpeedButton) IsClicked(mx, my float32) bool {
	dx, dy := mx-b.X, my-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}
