// pkg/tilemap/path.go
package tilemap

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStartFound means no cell carries a start identifier.
	ErrNoStartFound = errors.New("no path start tile found")
	// ErrPathBroken means the walk hit a dead end before reaching an end tile.
	ErrPathBroken = errors.New("path is broken")
)

// Point is a world-pixel coordinate.
type Point struct {
	X, Y float64
}

// FindStart returns the first start cell in row-major order.
func FindStart(g Grid, start TileSet) (Cell, error) {
	rows, cols := g.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if start.Contains(g.TileAt(r, c)) {
				return Cell{Row: r, Col: c}, nil
			}
		}
	}
	return Cell{}, ErrNoStartFound
}

// PlanCells walks the single path encoded in the grid from the start tile to an end tile.
// The grid is assumed to hold one simple path without branches; the fixed neighbour
// order makes the result deterministic.
func PlanCells(g Grid, m Markers) ([]Cell, error) {
	current, err := FindStart(g, m.Start)
	if err != nil {
		return nil, err
	}
	rows, cols := g.Dimensions()
	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, cols)
	}

	var cells []Cell
	for !m.End.Contains(g.TileAt(current.Row, current.Col)) {
		cells = append(cells, current)
		visited[current.Row][current.Col] = true

		next, found := nextCell(g, m, current, visited)
		if !found {
			return nil, fmt.Errorf("%w: dead end at row %d col %d after %d tiles",
				ErrPathBroken, current.Row, current.Col, len(cells))
		}
		current = next
	}
	return append(cells, current), nil
}

// PlanPath returns the pixel centres of the cells found by PlanCells.
func PlanPath(g Grid, m Markers) ([]Point, error) {
	cells, err := PlanCells(g, m)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(cells))
	for i, c := range cells {
		x, y := g.PixelCenter(c.Row, c.Col)
		points[i] = Point{X: x, Y: y}
	}
	return points, nil
}

func nextCell(g Grid, m Markers, from Cell, visited [][]bool) (Cell, bool) {
	rows, cols := g.Dimensions()
	for _, n := range from.Neighbors(rows, cols) {
		if visited[n.Row][n.Col] {
			continue
		}
		if m.walkable(g.TileAt(n.Row, n.Col)) {
			return n, true
		}
	}
	return Cell{}, false
}
