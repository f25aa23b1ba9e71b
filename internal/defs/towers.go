// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds all the static data for a kind of tower.
type TowerDefinition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Radius      float64  `yaml:"radius"`  // attack range in pixels
	Attacks     []string `yaml:"attacks"` // attack IDs
}

func (d TowerDefinition) validate(attacks map[string]AttackSpec) error {
	if d.Radius <= 0 {
		return fmt.Errorf("tower %q: radius %v must be positive", d.ID, d.Radius)
	}
	if len(d.Attacks) == 0 {
		return fmt.Errorf("tower %q: no attacks", d.ID)
	}
	for _, id := range d.Attacks {
		if _, ok := attacks[id]; !ok {
			return fmt.Errorf("tower %q: %w: attack %q", d.ID, ErrUnknownDefinition, id)
		}
	}
	return nil
}
