package render

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestTermRenderer_Cell(t *testing.T) {
	r := NewTermRenderer(newSimScreen(t), 64)

	x, y := r.Cell(component.Position{X: 3*64 + 40, Y: 2*64 + 10})
	if x != 7 || y != 2 {
		t.Fatalf("expected cell (7,2), got (%d,%d)", x, y)
	}
}

func TestTermRenderer_DrawsEntities(t *testing.T) {
	s := newSimScreen(t)
	r := NewTermRenderer(s, 64)

	r.DrawEntity(component.KindEnemy, component.Position{X: 32, Y: 32}, 0)
	r.DrawEntity(component.KindProjectile, component.Position{X: 96, Y: 32}, 0)
	r.DrawEntity(component.KindTower, component.Position{X: 5*64 + 32, Y: 3*64 + 32}, 128)

	if got := runeAt(s, 1, 0); got != 'o' {
		t.Errorf("expected enemy glyph at (1,0), got %q", got)
	}
	if got := runeAt(s, 3, 0); got != '*' {
		t.Errorf("expected projectile glyph at (3,0), got %q", got)
	}
	if got := runeAt(s, 11, 3); got != 'T' {
		t.Errorf("expected tower glyph at (11,3), got %q", got)
	}
	// two tiles to the right of the tower lies on the range ring
	if got := runeAt(s, 15, 3); got != '.' {
		t.Errorf("expected range ring at (15,3), got %q", got)
	}
}

func TestTermRenderer_DrawGrid(t *testing.T) {
	s := newSimScreen(t)
	r := NewTermRenderer(s, 64)
	g, err := tilemap.NewTileGrid([][]int{{3, 2, 4}, {1, 1, 1}}, 64)
	if err != nil {
		t.Fatalf("NewTileGrid: %v", err)
	}

	r.DrawGrid(g, tilemap.DefaultMarkers())
	want := []rune{'S', 'S', '·', '·', 'E', 'E'}
	for x, w := range want {
		if got := runeAt(s, x, 0); got != w {
			t.Errorf("column %d: expected %q, got %q", x, w, got)
		}
	}
	if got := runeAt(s, 0, 1); got != '"' {
		t.Errorf("expected grass glyph, got %q", got)
	}
}
