// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y  int
	Color color.Color
}

func NewWaveIndicator(x, y int, clr color.Color) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Color: clr}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label returns the text drawn for a wave.
func (i *WaveIndicator) Label(wave, total int) string {
	if total == 0 {
		return ""
	}
	return "Wave " + toRoman(wave) + " / " + toRoman(total)
}

// Draw right-aligns the label at X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	label := i.Label(wave, total)
	if label == "" {
		return
	}
	w := text.BoundString(basicfont.Face7x13, label).Dx()
	text.Draw(screen, label, basicfont.Face7x13, i.X-w, i.Y, i.Color)
}
