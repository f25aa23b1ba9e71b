// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Library holds every attack, tower and enemy definition, keyed by ID.
type Library struct {
	Attacks map[string]AttackSpec
	Towers  map[string]TowerDefinition
	Enemies map[string]EnemyDefinition
}

type libraryFile struct {
	Attacks []AttackSpec      `yaml:"attacks"`
	Towers  []TowerDefinition `yaml:"towers"`
	Enemies []EnemyDefinition `yaml:"enemies"`
}

// LoadLibrary reads a definitions file and validates it.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d attacks, %d towers, %d enemies from %s",
		len(lib.Attacks), len(lib.Towers), len(lib.Enemies), path)
	return lib, nil
}

// ParseLibrary decodes YAML definitions.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Attacks: make(map[string]AttackSpec, len(file.Attacks)),
		Towers:  make(map[string]TowerDefinition, len(file.Towers)),
		Enemies: make(map[string]EnemyDefinition, len(file.Enemies)),
	}
	for _, a := range file.Attacks {
		if a.ID == "" {
			a.ID = a.Name
		}
		lib.Attacks[a.ID] = a
	}
	for _, t := range file.Towers {
		lib.Towers[t.ID] = t
	}
	for _, e := range file.Enemies {
		lib.Enemies[e.ID] = e
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate checks every definition and the references between them.
func (l *Library) Validate() error {
	for _, a := range l.Attacks {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	for _, e := range l.Enemies {
		if err := e.validate(); err != nil {
			return err
		}
	}
	for _, t := range l.Towers {
		if err := t.validate(l.Attacks); err != nil {
			return err
		}
	}
	return nil
}

// TowerAttacks resolves a tower's attack IDs into specs.
func (l *Library) TowerAttacks(towerID string) (TowerDefinition, []AttackSpec, error) {
	def, ok := l.Towers[towerID]
	if !ok {
		return TowerDefinition{}, nil, fmt.Errorf("%w: tower %q", ErrUnknownDefinition, towerID)
	}
	attacks := make([]AttackSpec, 0, len(def.Attacks))
	for _, id := range def.Attacks {
		a, ok := l.Attacks[id]
		if !ok {
			return TowerDefinition{}, nil, fmt.Errorf("tower %q: %w: attack %q", towerID, ErrUnknownDefinition, id)
		}
		attacks = append(attacks, a)
	}
	return def, attacks, nil
}

// Enemy looks up an enemy definition.
func (l *Library) Enemy(id string) (EnemyDefinition, error) {
	def, ok := l.Enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: enemy %q", ErrUnknownDefinition, id)
	}
	return def, nil
}
