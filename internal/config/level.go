// internal/config/level.go
package config

import (
	"errors"
	"fmt"
	"os"

	"go-tower-sim/internal/defs"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevelConfig is returned when a level file is malformed.
var ErrInvalidLevelConfig = errors.New("invalid level config")

// MarkerConfig lists the tile identifiers that start, continue and end the enemy path.
type MarkerConfig struct {
	Start []int `yaml:"start"`
	End   []int `yaml:"end"`
	Path  []int `yaml:"path"`
}

// TowerPlacement puts a tower definition on a grid cell.
type TowerPlacement struct {
	Tower string `yaml:"tower"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Level int    `yaml:"level"`
}

// LevelConfig is the on-disk description of a level.
type LevelConfig struct {
	Name     string                `yaml:"name"`
	TileSize float64               `yaml:"tile_size"`
	Lives    int                   `yaml:"lives"`
	Seed     int64                 `yaml:"seed"`
	Markers  MarkerConfig          `yaml:"markers"`
	Tiles    [][]int               `yaml:"tiles"`
	Towers   []TowerPlacement      `yaml:"towers"`
	Waves    []defs.WaveDefinition `yaml:"waves"`
}

// LoadLevel reads and validates a level file.
func LoadLevel(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes a level, fills defaults and checks its shape.
func ParseLevel(data []byte) (*LevelConfig, error) {
	var lvl LevelConfig
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	lvl.applyDefaults()
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *LevelConfig) applyDefaults() {
	if l.TileSize == 0 {
		l.TileSize = DefaultTileSize
	}
	if l.Lives == 0 {
		l.Lives = DefaultLives
	}
	if len(l.Markers.Start) == 0 {
		l.Markers.Start = []int{TileStart}
	}
	if len(l.Markers.End) == 0 {
		l.Markers.End = []int{TileEnd}
	}
	if len(l.Markers.Path) == 0 {
		l.Markers.Path = []int{TilePath, TileStart, TileEnd}
	}
	for i := range l.Towers {
		if l.Towers[i].Level == 0 {
			l.Towers[i].Level = 1
		}
	}
}

// Validate checks the grid shape and tower placements.
func (l *LevelConfig) Validate() error {
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v", ErrInvalidLevelConfig, l.TileSize)
	}
	if l.Lives < 0 {
		return fmt.Errorf("%w: lives %d", ErrInvalidLevelConfig, l.Lives)
	}
	if len(l.Tiles) == 0 || len(l.Tiles[0]) == 0 {
		return fmt.Errorf("%w: no tiles", ErrInvalidLevelConfig)
	}
	cols := len(l.Tiles[0])
	for r, row := range l.Tiles {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLevelConfig, r, len(row), cols)
		}
	}
	for i, t := range l.Towers {
		if t.Row < 0 || t.Row >= len(l.Tiles) || t.Col < 0 || t.Col >= cols {
			return fmt.Errorf("%w: tower %d at row %d col %d is off the grid", ErrInvalidLevelConfig, i, t.Row, t.Col)
		}
		if t.Level < 1 {
			return fmt.Errorf("%w: tower %d: %w: level %d", ErrInvalidLevelConfig, i, defs.ErrInvalidLevel, t.Level)
		}
	}
	return nil
}

// ValidateAgainst checks that every tower and wave refers to loaded definitions.
func (l *LevelConfig) ValidateAgainst(lib *defs.Library) error {
	for i, t := range l.Towers {
		if _, ok := lib.Towers[t.Tower]; !ok {
			return fmt.Errorf("%w: tower %d: %w: %q", ErrInvalidLevelConfig, i, defs.ErrUnknownDefinition, t.Tower)
		}
	}
	for i, w := range l.Waves {
		if err := w.Validate(lib.Enemies); err != nil {
			return fmt.Errorf("%w: wave %d: %w", ErrInvalidLevelConfig, i+1, err)
		}
	}
	return nil
}
