// internal/app/level.go
package app

import (
	"fmt"
	"log"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/pkg/tilemap"
)

// LoadLevel plans the enemy path and places the level's towers. Any planning or
// definition error aborts the load.
func LoadLevel(lvl *config.LevelConfig, lib *defs.Library) (*Game, error) {
	if err := lvl.ValidateAgainst(lib); err != nil {
		return nil, err
	}
	grid, err := tilemap.NewTileGrid(lvl.Tiles, lvl.TileSize)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
	}
	points, err := tilemap.PlanPath(grid, Markers(lvl.Markers))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	path := make([]component.Position, len(points))
	for i, p := range points {
		path[i] = component.Position{X: p.X, Y: p.Y}
	}

	g := NewGame(Setup{
		Grid:    grid,
		Path:    path,
		Enemies: lib.Enemies,
		Waves:   lvl.Waves,
		Lives:   lvl.Lives,
		Seed:    lvl.Seed,
	})

	for i, placement := range lvl.Towers {
		def, attacks, err := lib.TowerAttacks(placement.Tower)
		if err != nil {
			return nil, fmt.Errorf("level %q: tower %d: %w", lvl.Name, i, err)
		}
		x, y := grid.PixelCenter(placement.Row, placement.Col)
		t, err := entity.NewTower(def.Name, def.Description, placement.Level, def.Radius, attacks, component.Position{X: x, Y: y})
		if err != nil {
			return nil, fmt.Errorf("level %q: tower %d: %w", lvl.Name, i, err)
		}
		g.AddTower(t)
	}

	log.Printf("Level %q: path of %d waypoints, %d towers, %d waves", lvl.Name, len(path), len(lvl.Towers), len(lvl.Waves))
	return g, nil
}

// Markers converts the level's marker lists into tile sets.
func Markers(m config.MarkerConfig) tilemap.Markers {
	return tilemap.Markers{
		Start: tilemap.NewTileSet(m.Start...),
		End:   tilemap.NewTileSet(m.End...),
		Path:  tilemap.NewTileSet(m.Path...),
	}
}
