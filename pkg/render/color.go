// pkg/render/color.go
package render

import "image/color"

// MapColors holds the colours of the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GrassColor      color.RGBA
	PathColor       color.RGBA
	StartColor      color.RGBA
	EndColor        color.RGBA
	GridLineColor   color.RGBA
}

// EntityColors holds the colours of the moving layer.
type EntityColors struct {
	TowerColor       color.RGBA
	TowerStrokeColor color.RGBA
	RangeColor       color.RGBA
	EnemyColor       color.RGBA
	ProjectileColor  color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
