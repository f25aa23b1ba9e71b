// pkg/render/term_renderer.go
package render

import (
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
)

// cellsPerTile is the terminal width of one map tile; two columns keep tiles roughly square.
const cellsPerTile = 2

const rangeRingPoints = 48

var (
	grassStyle      = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	pathStyle       = tcell.StyleDefault.Foreground(tcell.ColorTan)
	startStyle      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	endStyle        = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	towerStyle      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	rangeStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	enemyStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	projectileStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	textStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// TermRenderer draws the map and entities as characters on a tcell screen.
// One tile maps to one row and cellsPerTile columns.
type TermRenderer struct {
	screen   tcell.Screen
	tileSize float64
}

var _ interfaces.Renderer = (*TermRenderer)(nil)

func NewTermRenderer(screen tcell.Screen, tileSize float64) *TermRenderer {
	return &TermRenderer{screen: screen, tileSize: tileSize}
}

// Cell converts a world position to a screen cell.
func (r *TermRenderer) Cell(pos component.Position) (x, y int) {
	col := int(math.Floor(pos.X / r.tileSize * cellsPerTile))
	row := int(math.Floor(pos.Y / r.tileSize))
	return col, row
}

// DrawGrid paints every tile of the grid.
func (r *TermRenderer) DrawGrid(grid tilemap.Grid, markers tilemap.Markers) {
	rows, cols := grid.Dimensions()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch, style := ' ', grassStyle
			id := grid.TileAt(row, col)
			switch {
			case markers.Start.Contains(id):
				ch, style = 'S', startStyle
			case markers.End.Contains(id):
				ch, style = 'E', endStyle
			case markers.Path.Contains(id):
				ch, style = '·', pathStyle
			default:
				ch = '"'
			}
			for i := 0; i < cellsPerTile; i++ {
				r.screen.SetContent(col*cellsPerTile+i, row, ch, nil, style)
			}
		}
	}
}

func (r *TermRenderer) DrawEntity(kind component.Kind, pos component.Position, overlayRadius float64) {
	x, y := r.Cell(pos)
	switch kind {
	case component.KindTower:
		if overlayRadius > 0 {
			r.drawRing(pos, overlayRadius)
		}
		r.screen.SetContent(x, y, 'T', nil, towerStyle)
	case component.KindEnemy:
		r.screen.SetContent(x, y, 'o', nil, enemyStyle)
	case component.KindProjectile:
		r.screen.SetContent(x, y, '*', nil, projectileStyle)
	}
}

func (r *TermRenderer) drawRing(center component.Position, radius float64) {
	for i := 0; i < rangeRingPoints; i++ {
		a := 2 * math.Pi * float64(i) / rangeRingPoints
		p := component.Position{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
		x, y := r.Cell(p)
		if x < 0 || y < 0 {
			continue
		}
		r.screen.SetContent(x, y, '.', nil, rangeStyle)
	}
}

// DrawText writes a line of text starting at column x, row y.
func (r *TermRenderer) DrawText(x, y int, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, textStyle)
		x++
	}
}
