// pkg/render/tile_renderer.go
package render

import (
	"image/color"

	"go-tower-sim/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TileRenderer pre-renders the tile grid once and blits it every frame.
type TileRenderer struct {
	grid     tilemap.Grid
	markers  tilemap.Markers
	tileSize float64
	colors   MapColors
	path     []tilemap.Point
	mapImage *ebiten.Image
}

func NewTileRenderer(grid tilemap.Grid, markers tilemap.Markers, tileSize float64, colors MapColors) *TileRenderer {
	return &TileRenderer{
		grid:     grid,
		markers:  markers,
		tileSize: tileSize,
		colors:   colors,
	}
}

// SetPath overlays the planned path as a thin line on the next RenderMapImage.
func (r *TileRenderer) SetPath(path []tilemap.Point) {
	r.path = path
}

// RenderMapImage draws the grid into the cached background image.
func (r *TileRenderer) RenderMapImage() {
	rows, cols := r.grid.Dimensions()
	w, h := int(float64(cols)*r.tileSize), int(float64(rows)*r.tileSize)
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	size := float32(r.tileSize)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := float32(col)*size, float32(row)*size
			vector.DrawFilledRect(r.mapImage, x, y, size, size, r.tileColor(r.grid.TileAt(row, col)), false)
			vector.StrokeRect(r.mapImage, x, y, size, size, 1, r.colors.GridLineColor, false)
		}
	}

	lineColor := DarkenColor(r.colors.PathColor)
	for i := 1; i < len(r.path); i++ {
		a, b := r.path[i-1], r.path[i]
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, lineColor, true)
	}
}

func (r *TileRenderer) tileColor(id int) color.RGBA {
	switch {
	case r.markers.Start.Contains(id):
		return r.colors.StartColor
	case r.markers.End.Contains(id):
		return r.colors.EndColor
	case r.markers.Path.Contains(id):
		return r.colors.PathColor
	default:
		return r.colors.GrassColor
	}
}

// Draw blits the background, rendering it first if needed.
func (r *TileRenderer) Draw(screen *ebiten.Image) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)
}
