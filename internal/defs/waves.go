// internal/defs/waves.go
package defs

import "fmt"

// SpawnWeight is one entry of a wave's weighted enemy table.
type SpawnWeight struct {
	Enemy  string `yaml:"enemy"`
	Weight int    `yaml:"weight"`
}

// WaveDefinition describes one wave of enemies.
type WaveDefinition struct {
	Count         int           `yaml:"count"`          // enemies in the wave
	IntervalTicks int           `yaml:"interval_ticks"` // ticks between spawns
	Enemies       []SpawnWeight `yaml:"enemies"`
}

// Validate checks the wave against the loaded enemy definitions.
func (w WaveDefinition) Validate(enemies map[string]EnemyDefinition) error {
	if w.Count <= 0 {
		return fmt.Errorf("wave: count %d must be positive", w.Count)
	}
	if w.IntervalTicks <= 0 {
		return fmt.Errorf("wave: interval %d must be positive", w.IntervalTicks)
	}
	if len(w.Enemies) == 0 {
		return fmt.Errorf("wave: no enemies")
	}
	for _, e := range w.Enemies {
		if _, ok := enemies[e.Enemy]; !ok {
			return fmt.Errorf("wave: %w: enemy %q", ErrUnknownDefinition, e.Enemy)
		}
		if e.Weight < 0 {
			return fmt.Errorf("wave: enemy %q has negative weight", e.Enemy)
		}
	}
	return nil
}
