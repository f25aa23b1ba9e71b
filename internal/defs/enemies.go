// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds all the static data for a kind of enemy.
type EnemyDefinition struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Health      int     `yaml:"health"`
	Speed       float64 `yaml:"speed"` // pixels per tick
}

func (d EnemyDefinition) validate() error {
	if d.Health <= 0 {
		return fmt.Errorf("enemy %q: health %d must be positive", d.ID, d.Health)
	}
	if d.Speed <= 0 {
		return fmt.Errorf("enemy %q: speed %v must be positive", d.ID, d.Speed)
	}
	return nil
}
