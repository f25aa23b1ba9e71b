// pkg/tilemap/grid.go
package tilemap

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when tile data is empty or not rectangular.
var ErrInvalidGrid = errors.New("invalid tile grid")

// Grid is the read-only tile source the path planner walks over.
type Grid interface {
	TileAt(row, col int) int
	PixelCenter(row, col int) (x, y float64)
	Dimensions() (rows, cols int)
}

// TileGrid is an in-memory row-major Grid of square tiles.
type TileGrid struct {
	tiles    [][]int
	tileSize float64
	rows     int
	cols     int
}

var _ Grid = (*TileGrid)(nil)

// NewTileGrid copies tiles into a new grid. Every row must have the same length.
func NewTileGrid(tiles [][]int, tileSize float64) (*TileGrid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrInvalidGrid)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %v", ErrInvalidGrid, tileSize)
	}
	cols := len(tiles[0])
	copied := make([][]int, len(tiles))
	for r, row := range tiles {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidGrid, r, len(row), cols)
		}
		copied[r] = append([]int(nil), row...)
	}
	return &TileGrid{
		tiles:    copied,
		tileSize: tileSize,
		rows:     len(tiles),
		cols:     cols,
	}, nil
}

func (g *TileGrid) TileAt(row, col int) int {
	return g.tiles[row][col]
}

// PixelCenter returns the world-pixel centre of a cell, y growing downwards.
func (g *TileGrid) PixelCenter(row, col int) (x, y float64) {
	x = float64(col)*g.tileSize + g.tileSize/2
	y = float64(row)*g.tileSize + g.tileSize/2
	return
}

func (g *TileGrid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// TileSize returns the edge length of a tile in pixels.
func (g *TileGrid) TileSize() float64 {
	return g.tileSize
}

// PixelToCell converts world-pixel coordinates to the containing cell.
// ok is false when the point lies outside the grid.
func (g *TileGrid) PixelToCell(x, y float64) (cell Cell, ok bool) {
	if x < 0 || y < 0 {
		return Cell{}, false
	}
	cell = Cell{Row: int(y / g.tileSize), Col: int(x / g.tileSize)}
	if cell.Row >= g.rows || cell.Col >= g.cols {
		return Cell{}, false
	}
	return cell, true
}
