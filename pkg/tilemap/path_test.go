package tilemap

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, tiles [][]int) *TileGrid {
	t.Helper()
	g, err := NewTileGrid(tiles, 10)
	if err != nil {
		t.Fatalf("NewTileGrid: %v", err)
	}
	return g
}

func TestPlanPath_SnakeFromStartToEnd(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 2, 2, 1},
		{1, 1, 2, 1},
		{1, 2, 2, 1},
		{1, 4, 1, 1},
	})

	path, err := PlanPath(g, DefaultMarkers())
	if err != nil {
		t.Fatalf("PlanPath: %v", err)
	}
	if len(path) != 7 {
		t.Fatalf("expected 7 waypoints, got %d: %v", len(path), path)
	}
	if path[0] != (Point{X: 5, Y: 5}) {
		t.Errorf("expected first waypoint at start centre (5,5), got %v", path[0])
	}
	if last := path[len(path)-1]; last != (Point{X: 15, Y: 35}) {
		t.Errorf("expected last waypoint at end centre (15,35), got %v", last)
	}
}

func TestPlanCells_FollowsWalkOrder(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 2, 2, 1},
		{1, 1, 2, 1},
		{1, 2, 2, 1},
		{1, 4, 1, 1},
	})

	cells, err := PlanCells(g, DefaultMarkers())
	if err != nil {
		t.Fatalf("PlanCells: %v", err)
	}
	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {3, 1}}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d: %v", len(want), len(cells), cells)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], cells[i])
		}
	}
}

func TestPlanCells_UpBeatsDown(t *testing.T) {
	// Start has path tiles above and below; only the upper branch reaches the end.
	g := mustGrid(t, [][]int{
		{1, 2, 4},
		{1, 3, 1},
		{1, 2, 1},
	})

	cells, err := PlanCells(g, DefaultMarkers())
	if err != nil {
		t.Fatalf("expected the upward walk to succeed, got %v", err)
	}
	if len(cells) != 3 || cells[1] != (Cell{Row: 0, Col: 1}) {
		t.Fatalf("expected walk through (0,1), got %v", cells)
	}
}

func TestPlanPath_NoStart(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 4},
		{1, 1, 1},
	})

	_, err := PlanPath(g, DefaultMarkers())
	if !errors.Is(err, ErrNoStartFound) {
		t.Fatalf("expected ErrNoStartFound, got %v", err)
	}
}

func TestPlanPath_DeadEnd(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 2, 1, 4},
		{1, 1, 1, 1},
	})

	_, err := PlanPath(g, DefaultMarkers())
	if !errors.Is(err, ErrPathBroken) {
		t.Fatalf("expected ErrPathBroken, got %v", err)
	}
}

func TestPlanPath_DoesNotWalkOffGrid(t *testing.T) {
	// Path runs into the right edge without an end tile.
	g := mustGrid(t, [][]int{
		{3, 2, 2},
	})

	_, err := PlanPath(g, DefaultMarkers())
	if !errors.Is(err, ErrPathBroken) {
		t.Fatalf("expected ErrPathBroken at the grid edge, got %v", err)
	}
}

func TestPlanPath_StartIsEnd(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 7},
	})
	m := Markers{Start: NewTileSet(7), End: NewTileSet(7), Path: NewTileSet(7)}

	path, err := PlanPath(g, m)
	if err != nil {
		t.Fatalf("PlanPath: %v", err)
	}
	if len(path) != 1 || path[0] != (Point{X: 15, Y: 5}) {
		t.Fatalf("expected single waypoint (15,5), got %v", path)
	}
}

func TestPlanPath_EndNotInPathSetIsStillEnterable(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 2, 4},
	})
	m := Markers{Start: NewTileSet(3), End: NewTileSet(4), Path: NewTileSet(2, 3)}

	path, err := PlanPath(g, m)
	if err != nil {
		t.Fatalf("PlanPath: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("expected 3 waypoints, got %d", len(path))
	}
}

// offsetGrid exercises PlanPath through the Grid interface with a custom pixel mapping.
type offsetGrid struct {
	tiles [][]int
}

func (g offsetGrid) TileAt(row, col int) int { return g.tiles[row][col] }
func (g offsetGrid) PixelCenter(row, col int) (float64, float64) {
	return 100 + float64(col)*64, 200 + float64(row)*64
}
func (g offsetGrid) Dimensions() (int, int) { return len(g.tiles), len(g.tiles[0]) }

func TestPlanPath_UsesGridPixelCenters(t *testing.T) {
	g := offsetGrid{tiles: [][]int{{3}, {2}, {4}}}

	path, err := PlanPath(g, DefaultMarkers())
	if err != nil {
		t.Fatalf("PlanPath: %v", err)
	}
	want := []Point{{100, 200}, {100, 264}, {100, 328}}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("waypoint %d: expected %v, got %v", i, want[i], path[i])
		}
	}
}

func TestNewTileGrid_RejectsRaggedRows(t *testing.T) {
	_, err := NewTileGrid([][]int{{1, 2}, {1}}, 64)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestTileGrid_PixelToCell(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}, {1, 1}})

	cell, ok := g.PixelToCell(15, 5)
	if !ok || cell != (Cell{Row: 0, Col: 1}) {
		t.Fatalf("expected (0,1), got %v ok=%v", cell, ok)
	}
	if _, ok := g.PixelToCell(25, 5); ok {
		t.Fatal("expected point outside the grid to be rejected")
	}
}
